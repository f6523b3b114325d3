// Package openai gera textos curtos pela API de chat completions.
package openai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/config"
)

const (
	defaultModel     = goopenai.GPT4oMini
	defaultMaxTokens = 400
	temperature      = 0.7
	systemPrompt     = "Você escreve textos curtos de divulgação para pequenos negócios locais, sempre em português do Brasil."
)

var ErrEmptyCompletion = errors.New("resposta vazia do modelo")

type Client struct {
	client    *goopenai.Client
	model     string
	maxTokens int
}

func NewClient(cfg config.OpenAI) *Client {
	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		client:    goopenai.NewClientWithConfig(clientConfig),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Generate faz uma única chamada ao modelo, sem novas tentativas
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role:    goopenai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    goopenai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		logrus.WithError(err).WithField("model", c.model).Error("Erro ao gerar texto")
		return "", errors.Wrap(err, "falha na chamada ao modelo")
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	logrus.WithFields(logrus.Fields{
		"model":  c.model,
		"tokens": resp.Usage.TotalTokens,
	}).Debug("Texto gerado")

	return content, nil
}
