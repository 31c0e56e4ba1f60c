package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/xaenox/email-triage/internal/models"
	"go.uber.org/zap"
)

type GPTResponse struct {
	Category string   `json:"category"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// chatCompleter is the slice of the OpenAI client the classifier uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// GPTClassifier routes classification through the OpenAI chat API. Any
// transport or parse failure, an empty completion, or a category outside
// the fixed set falls back to the rule classifier so the pipeline stays
// total.
type GPTClassifier struct {
	client      chatCompleter
	model       string
	maxTokens   int
	temperature float64
	fallback    *RuleClassifier
	logger      *zap.Logger
}

func NewGPTClassifier(apiKey string, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTClassifier {
	return &GPTClassifier{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    NewRuleClassifier(),
		logger:      logger,
	}
}

func (c *GPTClassifier) Classify(text string) models.Category {
	ctx := context.Background()

	prompt := fmt.Sprintf(`Classify the following customer email into exactly one of these categories:
- Product Support
- Billing
- General Inquiry

Return the response as a JSON object with this structure:
{
    "category": "one_of_the_three_categories",
    "summary": "brief_summary",
    "keywords": ["keyword1", "keyword2", ...]
}

Email: %s`, text)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)

	if err != nil {
		c.logger.Error("Failed to get GPT response", zap.Error(err))
		return c.fallback.Classify(text)
	}

	if len(resp.Choices) == 0 {
		c.logger.Error("GPT response contained no choices")
		return c.fallback.Classify(text)
	}

	var gptResponse GPTResponse
	response := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(response), &gptResponse); err != nil {
		c.logger.Error("Failed to parse GPT response",
			zap.Error(err),
			zap.String("response", response))
		return c.fallback.Classify(text)
	}

	category := models.Category(gptResponse.Category)
	if !category.Valid() {
		c.logger.Warn("GPT returned unknown category, falling back to rules",
			zap.String("category", gptResponse.Category))
		return c.fallback.Classify(text)
	}

	return category
}
