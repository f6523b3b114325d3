// Package copywriting gera textos de apoio para o portal: bio da empresa,
// descrição de oferta, termos de busca e códigos de cupom.
package copywriting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
)

const (
	MaxTextLength  = 360
	MaxSearchTerms = 10
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrGenerationFailed     = errors.New("não foi possível gerar o texto agora, tente novamente")
	ErrInvalidGeneratedCode = errors.New("o código gerado não atende ao formato de cupom, tente novamente")
	ErrMissingInput         = errors.New("dados insuficientes para gerar o texto")
)

type Writer interface {
	GenerateBio(ctx context.Context, name, category string) (string, error)
	GenerateOfferDescription(ctx context.Context, title, discount string, start, end time.Time) (string, error)
	GenerateSearchTerms(ctx context.Context, name, category, description string) ([]string, error)
	GenerateCouponCode(ctx context.Context, title, discount string) (string, error)
}

type Service struct {
	generator TextGenerator
}

func NewService(generator TextGenerator) Writer {
	return &Service{
		generator: generator,
	}
}

type textOutput struct {
	Text string `json:"text"`
}

type termsOutput struct {
	Terms []string `json:"terms"`
}

type codeOutput struct {
	Code string `json:"code"`
}

func (s *Service) GenerateBio(ctx context.Context, name, category string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" {
		return "", ErrMissingInput
	}

	prompt := fmt.Sprintf(`Escreva uma bio curta e convidativa para a empresa "%s", do segmento "%s".
Use no máximo %d caracteres.
Responda APENAS com um JSON válido no formato {"text": "..."}.`, name, category, MaxTextLength)

	var out textOutput
	if err := s.generate(ctx, prompt, &out); err != nil {
		return "", err
	}

	return truncate(out.Text, MaxTextLength), nil
}

func (s *Service) GenerateOfferDescription(ctx context.Context, title, discount string, start, end time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingInput
	}

	prompt := fmt.Sprintf(`Escreva a descrição de uma oferta chamada "%s" com desconto "%s", válida de %s até %s.
Use no máximo %d caracteres.
Responda APENAS com um JSON válido no formato {"text": "..."}.`,
		title, discount, start.Format("02/01/2006"), end.Format("02/01/2006"), MaxTextLength)

	var out textOutput
	if err := s.generate(ctx, prompt, &out); err != nil {
		return "", err
	}

	return truncate(out.Text, MaxTextLength), nil
}

func (s *Service) GenerateSearchTerms(ctx context.Context, name, category, description string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingInput
	}

	prompt := fmt.Sprintf(`Sugira até %d termos de busca que clientes usariam para encontrar a empresa "%s" (%s).
Descrição: %s
Responda APENAS com um JSON válido no formato {"terms": ["termo1", "termo2"]}.`,
		MaxSearchTerms, name, category, description)

	var out termsOutput
	if err := s.generate(ctx, prompt, &out); err != nil {
		return nil, err
	}

	terms := make([]string, 0, MaxSearchTerms)
	seen := make(map[string]bool)
	for _, term := range out.Terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
		if len(terms) == MaxSearchTerms {
			break
		}
	}

	if len(terms) == 0 {
		return nil, ErrGenerationFailed
	}

	return terms, nil
}

func (s *Service) GenerateCouponCode(ctx context.Context, title, discount string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingInput
	}

	prompt := fmt.Sprintf(`Crie um código de cupom para a oferta "%s" (%s).
O código deve ter de 8 a 12 caracteres, apenas letras maiúsculas sem acento e números.
Responda APENAS com um JSON válido no formato {"code": "..."}.`, title, discount)

	var out codeOutput
	if err := s.generate(ctx, prompt, &out); err != nil {
		return "", err
	}

	code := strings.ToUpper(strings.TrimSpace(out.Code))
	if err := sponsoring.ValidateCouponCode(code); err != nil {
		logrus.WithField("code", code).Warn("Código de cupom gerado fora do formato")
		return "", ErrInvalidGeneratedCode
	}

	return code, nil
}

// generate chama o modelo uma vez e decodifica o JSON da resposta em out
func (s *Service) generate(ctx context.Context, prompt string, out any) error {
	content, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar texto")
		return ErrGenerationFailed
	}

	if err := decodeJSON(content, out); err != nil {
		logrus.WithError(err).Warn("Resposta do modelo fora do formato esperado")
		return ErrGenerationFailed
	}

	return nil
}

// decodeJSON aceita a resposta pura ou com texto ao redor do objeto
func decodeJSON(content string, out any) error {
	content = strings.TrimSpace(content)
	if err := json.Unmarshal([]byte(content), out); err == nil {
		return nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return errors.New("nenhum JSON encontrado na resposta")
	}

	return json.Unmarshal([]byte(content[start:end+1]), out)
}

func truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit]))
}
