package copywriting

import "context"

//go:generate mockgen -source=generator.go -destination=mocks/generator_mock.go -package=mocks

// TextGenerator é o serviço externo de geração de texto; cada chamada é única
// e pode falhar
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
