package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to Groq's OpenAI-compatible chat completions API.
type GroqClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewGroqClient(apiKey string) *GroqClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqClient{
		client:    &client,
		model:     openai.ChatModel("llama-3.1-8b-instant"),
		modelName: "llama-3.1-8b-instant",
	}
}

func (c *GroqClient) ModelName() string {
	return c.modelName
}

func (c *GroqClient) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(user))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from groq")
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *GroqClient) Summarize(ctx context.Context, text string) (string, error) {
	return summarizeOp(ctx, c, text)
}

func (c *GroqClient) RateCredibility(ctx context.Context, source string) string {
	return rateCredibilityOp(ctx, c, source)
}

func (c *GroqClient) Synthesize(ctx context.Context, summaries []string) (string, error) {
	return synthesizeOp(ctx, c, summaries)
}

func (c *GroqClient) ExtractPerspectives(ctx context.Context, inputs []PerspectiveInput) []Perspective {
	return extractPerspectivesOp(ctx, c, inputs)
}

func (c *GroqClient) GenerateFollowups(ctx context.Context, summary string, n int, contextText string) []string {
	return generateFollowupsOp(ctx, c, summary, n, contextText)
}

func (c *GroqClient) AnswerFollowup(ctx context.Context, question, contextText string) (string, error) {
	return answerFollowupOp(ctx, c, question, contextText)
}

func (c *GroqClient) ExtractKeywords(ctx context.Context, text string) (string, error) {
	return extractKeywordsOp(ctx, c, text)
}
