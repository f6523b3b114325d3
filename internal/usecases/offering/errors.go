package offering

import (
	"errors"
	"fmt"
)

var (
	ErrOfferNotFound   = errors.New("oferta não encontrada")
	ErrEventNotFound   = errors.New("evento não encontrado")
	ErrCompanyNotFound = errors.New("empresa não encontrada")
	ErrInvalidOffer    = errors.New("dados da oferta inválidos")
	ErrInvalidEvent    = errors.New("dados do evento inválidos")
	ErrInvalidValidity = errors.New("a validade deve terminar depois do início")
	ErrUnknownValidity = errors.New("filtro de validade desconhecido")
)

// OfferingError carrega o código de API e as mensagens de validação
type OfferingError struct {
	Err     error
	Code    string
	Details any
}

func (e *OfferingError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OfferingError) Unwrap() error {
	return e.Err
}

func NewOfferingError(baseErr error, code string, details any) *OfferingError {
	return &OfferingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
