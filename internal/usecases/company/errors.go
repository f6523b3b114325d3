package company

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyNotFound     = errors.New("empresa não encontrada")
	ErrInvalidProfile      = errors.New("dados do perfil inválidos")
	ErrInvalidAvailability = errors.New("status de disponibilidade inválido, use OPEN, CLOSED ou AUTO")
	ErrInvalidHours        = errors.New("tabela de horários inválida")
	ErrInvalidTokenCredit  = errors.New("a quantidade de tokens creditada deve ser maior que zero")
)

// CompanyError carrega o código de API e os detalhes para o handler
type CompanyError struct {
	Err     error
	Code    string
	Details any
}

func (e *CompanyError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyError(baseErr error, code string, details any) *CompanyError {
	return &CompanyError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
