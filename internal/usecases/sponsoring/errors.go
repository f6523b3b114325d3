package sponsoring

import (
	"errors"
	"fmt"
)

// Regras do pedido, cada uma reportada de forma independente
var (
	ErrMissingDestinationLink = errors.New("informe o link de destino")
	ErrMissingAsset           = errors.New("envie a imagem ou o vídeo do destaque")
	ErrMissingCampaignName    = errors.New("informe o nome da campanha")
	ErrInvalidTokenAmount     = errors.New("a quantidade de tokens deve ser maior que zero")
	ErrInsufficientBalance    = errors.New("saldo de tokens insuficiente")
	ErrInvalidLimitPerUser    = errors.New("o limite por usuário deve ser de pelo menos 1")
	ErrInvalidCouponCode      = errors.New("o código do cupom deve ter de 8 a 12 letras maiúsculas ou números")
	ErrInvalidDateRange       = errors.New("a data final deve ser posterior à data inicial")
)

// Disponibilidade de slots
var (
	ErrSlotCapacityExhausted = errors.New("não há slots disponíveis para hoje, escolha uma data futura")
	ErrDateUnavailable       = errors.New("a data escolhida não está disponível")
	ErrInventoryUnavailable  = errors.New("não foi possível verificar a disponibilidade, tente novamente")
)

var (
	ErrCompanyNotFound         = errors.New("empresa não encontrada")
	ErrSponsorshipNotFound     = errors.New("pedido de patrocínio não encontrado")
	ErrUnknownPlacement        = errors.New("tipo de destaque desconhecido")
	ErrInvalidStatusTransition = errors.New("transição de status inválida")
	ErrPastStartDate           = errors.New("a data de início não pode estar no passado")
	ErrBeyondHorizon           = errors.New("a data de início está além do período permitido para agendamento")
)

// SponsorshipError carrega o código de API e os detalhes para o handler
type SponsorshipError struct {
	Err     error
	Code    string
	Details any
}

func (e *SponsorshipError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SponsorshipError) Unwrap() error {
	return e.Err
}

func NewSponsorshipError(baseErr error, code string, details any) *SponsorshipError {
	return &SponsorshipError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
