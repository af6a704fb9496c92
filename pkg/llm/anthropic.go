package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is the alternate model provider.
type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.Model("claude-haiku-4-5"),
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) ModelName() string {
	return c.modelName
}

func (c *AnthropicClient) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return resp.Content[0].Text, nil
}

func (c *AnthropicClient) Summarize(ctx context.Context, text string) (string, error) {
	return summarizeOp(ctx, c, text)
}

func (c *AnthropicClient) RateCredibility(ctx context.Context, source string) string {
	return rateCredibilityOp(ctx, c, source)
}

func (c *AnthropicClient) Synthesize(ctx context.Context, summaries []string) (string, error) {
	return synthesizeOp(ctx, c, summaries)
}

func (c *AnthropicClient) ExtractPerspectives(ctx context.Context, inputs []PerspectiveInput) []Perspective {
	return extractPerspectivesOp(ctx, c, inputs)
}

func (c *AnthropicClient) GenerateFollowups(ctx context.Context, summary string, n int, contextText string) []string {
	return generateFollowupsOp(ctx, c, summary, n, contextText)
}

func (c *AnthropicClient) AnswerFollowup(ctx context.Context, question, contextText string) (string, error) {
	return answerFollowupOp(ctx, c, question, contextText)
}

func (c *AnthropicClient) ExtractKeywords(ctx context.Context, text string) (string, error) {
	return extractKeywordsOp(ctx, c, text)
}
