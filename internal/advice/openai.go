package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/greenlyfe/greenlyfe-backend/internal/catalog"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
)

const systemPromptTemplate = `Você é um assistente de nutrição da loja %s, especializada em produtos naturais e saudáveis.
Com base nas necessidades alimentares e preferências do cliente, recomende produtos do catálogo abaixo.
Responda em português, em tom acolhedor, e explique brevemente por que cada produto recomendado atende ao cliente.
Recomende apenas produtos que estão no catálogo.

Catálogo:
%s`

// OpenAIProvider generates advice through the chat completions API.
type OpenAIProvider struct {
	client       openai.Client
	model        string
	systemPrompt string
	log          *logger.Logger
}

// OpenAIOptions configures the provider. BaseURL is optional and exists for
// gateways and tests.
type OpenAIOptions struct {
	APIKey    string
	BaseURL   string
	Model     string
	StoreName string
	Logger    *logger.Logger
}

// NewOpenAIProvider builds a provider with the store catalog baked into the
// system prompt.
func NewOpenAIProvider(opts OpenAIOptions, cat *catalog.Catalog) (*OpenAIProvider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("model required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	return &OpenAIProvider{
		client:       openai.NewClient(clientOpts...),
		model:        opts.Model,
		systemPrompt: fmt.Sprintf(systemPromptTemplate, opts.StoreName, renderCatalog(cat)),
		log:          opts.Logger,
	}, nil
}

func renderCatalog(cat *catalog.Catalog) string {
	var b strings.Builder
	for _, p := range cat.All() {
		fmt.Fprintf(&b, "- %s (%s): %s\n", p.Name, p.Category, p.Description)
	}
	return b.String()
}

// Recommend asks the model for product advice. Any transport or model
// failure comes back as ADVICE_UNAVAILABLE so callers can show the fallback
// notice and retry.
func (p *OpenAIProvider) Recommend(ctx context.Context, req Request) (string, error) {
	userMessage := fmt.Sprintf("Necessidades alimentares: %s\nPreferências: %s", req.DietaryNeeds, req.Preferences)

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(p.systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
		MaxTokens:   openai.Int(1024),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		if p.log != nil {
			p.log.Warn(ctx, "advice completion failed: "+err.Error())
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeAdviceUnavailable, err, "advice completion failed")
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", pkgerrors.New(pkgerrors.CodeAdviceUnavailable, "advice model returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}
