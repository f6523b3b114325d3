// Package sponsoring reúne as regras de compra de destaques pagos em tokens e
// o fluxo de pedidos de patrocínio.
package sponsoring

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

const (
	minCouponCodeLength = 8
	maxCouponCodeLength = 12
)

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ValidationErrors acumula as regras violadas por um pedido
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Has indica se target está entre as regras violadas
func (v ValidationErrors) Has(target error) bool {
	for _, err := range v {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (v ValidationErrors) Unwrap() []error {
	return v
}

// Messages devolve as mensagens exibidas ao usuário, na ordem das verificações
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return messages
}

// ComputeDuration devolve quantos dias inteiros de destaque os tokens compram
func ComputeDuration(tokensToSpend, dailyCost int) int {
	if tokensToSpend <= 0 || dailyCost <= 0 {
		return 0
	}
	return tokensToSpend / dailyCost
}

// NormalizeTokenInput ajusta o valor digitado para um múltiplo do custo diário,
// sempre para cima. Zero é mantido para não preencher o campo sozinho.
func NormalizeTokenInput(raw, dailyCost int) int {
	if raw == 0 || dailyCost <= 0 {
		return raw
	}

	if raw < dailyCost {
		return dailyCost
	}

	return ((raw + dailyCost - 1) / dailyCost) * dailyCost
}

// NormalizeForBalance arredonda como NormalizeTokenInput e, se o resultado
// ultrapassar o saldo, recua para o maior múltiplo do custo diário que o saldo
// cobre. Sem saldo para um dia inteiro, mantém o valor arredondado para que a
// falta de saldo seja reportada.
func NormalizeForBalance(raw, dailyCost, balance int) int {
	normalized := NormalizeTokenInput(raw, dailyCost)
	if dailyCost <= 0 || normalized <= balance {
		return normalized
	}

	if affordable := (balance / dailyCost) * dailyCost; affordable > 0 {
		return affordable
	}

	return normalized
}

func IsBalanceSufficient(tokensToSpend, balance int) bool {
	return tokensToSpend <= balance
}

func ValidateCouponCode(code string) error {
	if len(code) < minCouponCodeLength || len(code) > maxCouponCodeLength {
		return ErrInvalidCouponCode
	}
	if !couponCodePattern.MatchString(code) {
		return ErrInvalidCouponCode
	}
	return nil
}

// ValidateCouponTerms aplica as regras de cupom compartilhadas por pedidos e ofertas
func ValidateCouponTerms(terms domain.CouponTerms) ValidationErrors {
	var errs ValidationErrors

	if terms.LimitPerUser < 1 {
		errs = append(errs, ErrInvalidLimitPerUser)
	}

	if err := ValidateCouponCode(terms.Code); err != nil {
		errs = append(errs, err)
	}

	if !terms.EndDate.After(terms.StartDate) {
		errs = append(errs, ErrInvalidDateRange)
	}

	return errs
}

// ValidateOrder executa todas as verificações do pedido, sem interromper na primeira
func ValidateOrder(order domain.SponsorshipOrder) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(order.DestinationLink) == "" {
		errs = append(errs, ErrMissingDestinationLink)
	}

	if strings.TrimSpace(order.AssetURL) == "" {
		errs = append(errs, ErrMissingAsset)
	}

	if strings.TrimSpace(order.CampaignName) == "" {
		errs = append(errs, ErrMissingCampaignName)
	}

	if order.TokensToSpend <= 0 {
		errs = append(errs, ErrInvalidTokenAmount)
	}

	if !IsBalanceSufficient(order.TokensToSpend, order.CompanyTokenBalance) {
		errs = append(errs, ErrInsufficientBalance)
	}

	if order.Coupon != nil {
		errs = append(errs, ValidateCouponTerms(*order.Coupon)...)
	}

	return errs
}

func IsOrderValid(order domain.SponsorshipOrder) bool {
	return len(ValidateOrder(order)) == 0
}

// CheckPublishToday devolve as falhas de validação do pedido ou
// ErrSlotCapacityExhausted quando o pedido é válido mas o dia está lotado
func CheckPublishToday(order domain.SponsorshipOrder, occupiedSlotsToday, slotCapacity int) error {
	if errs := ValidateOrder(order); len(errs) > 0 {
		return errs
	}

	if occupiedSlotsToday >= slotCapacity {
		return ErrSlotCapacityExhausted
	}

	return nil
}

func CanPublishToday(order domain.SponsorshipOrder, occupiedSlotsToday, slotCapacity int) bool {
	return CheckPublishToday(order, occupiedSlotsToday, slotCapacity) == nil
}

// CheckScheduleDate valida o pedido e consulta isDateAvailable apenas se ele for válido
func CheckScheduleDate(order domain.SponsorshipOrder, date time.Time, isDateAvailable func(time.Time) bool) error {
	if errs := ValidateOrder(order); len(errs) > 0 {
		return errs
	}

	if !isDateAvailable(date) {
		return ErrDateUnavailable
	}

	return nil
}

func CanScheduleDate(order domain.SponsorshipOrder, date time.Time, isDateAvailable func(time.Time) bool) bool {
	return CheckScheduleDate(order, date, isDateAvailable) == nil
}
