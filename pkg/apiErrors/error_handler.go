package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrUserLocked            = "AUTH_004" // Usuário bloqueado temporariamente
	ErrPasswordExpired       = "AUTH_005" // Senha expirada
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe
	ErrWeakPassword          = "AUTH_010" // Senha fora da política

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidSchedule     = "VAL_004" // Tabela de horários inválida
	ErrInvalidCoupon       = "VAL_005" // Regras de cupom inválidas

	// Erros de recursos
	ErrCompanyNotFound = "RES_001" // Empresa não encontrada
	ErrOfferNotFound   = "RES_002" // Oferta não encontrada
	ErrEventNotFound   = "RES_003" // Evento não encontrado

	// Erros de patrocínio
	ErrSponsorshipInvalid       = "SPN_001" // Pedido reprovado nas regras
	ErrSlotCapacityExhausted    = "SPN_002" // Sem slots disponíveis hoje
	ErrDateUnavailable          = "SPN_003" // Data escolhida indisponível
	ErrInventoryUnavailable     = "SPN_004" // Consulta de inventário falhou
	ErrInvalidStatusTransition  = "SPN_005" // Transição de status inválida
	ErrSponsorshipNotFound      = "SPN_006" // Pedido não encontrado
	ErrUnknownPlacement         = "SPN_007" // Tipo de destaque desconhecido
	ErrInsufficientTokenBalance = "SPN_008" // Saldo insuficiente

	// Erros de geração de texto
	ErrGenerationFailed = "GEN_001" // Falha na geração de texto
	ErrTooManyRequests  = "GEN_002" // Limite de requisições excedido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação

	// Erros de roteamento
	ErrRouteNotFound    = "RTE_001" // Rota não encontrada
	ErrMethodNotAllowed = "RTE_002" // Método não permitido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrUserLocked:            http.StatusForbidden,
	ErrPasswordExpired:       http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrWeakPassword:          http.StatusBadRequest,

	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidSchedule:     http.StatusBadRequest,
	ErrInvalidCoupon:       http.StatusBadRequest,

	ErrCompanyNotFound: http.StatusNotFound,
	ErrOfferNotFound:   http.StatusNotFound,
	ErrEventNotFound:   http.StatusNotFound,

	ErrSponsorshipInvalid:       http.StatusUnprocessableEntity,
	ErrSlotCapacityExhausted:    http.StatusConflict,
	ErrDateUnavailable:          http.StatusConflict,
	ErrInventoryUnavailable:     http.StatusServiceUnavailable,
	ErrInvalidStatusTransition:  http.StatusConflict,
	ErrSponsorshipNotFound:      http.StatusNotFound,
	ErrUnknownPlacement:         http.StatusBadRequest,
	ErrInsufficientTokenBalance: http.StatusUnprocessableEntity,

	ErrGenerationFailed: http.StatusBadGateway,
	ErrTooManyRequests:  http.StatusTooManyRequests,

	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
	ErrExternalService:   http.StatusBadGateway,
	ErrCommunication:     http.StatusServiceUnavailable,

	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
