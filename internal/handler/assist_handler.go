package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"newslens/pkg/extract"

	"github.com/gin-gonic/gin"
)

// AssistModel is the slice of the model client the assist endpoints use.
type AssistModel interface {
	AnswerFollowup(ctx context.Context, question, contextText string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
	ExtractKeywords(ctx context.Context, text string) (string, error)
}

type AssistHandler struct {
	model     AssistModel
	extractor extract.Extractor
}

func NewAssistHandler(model AssistModel, extractor extract.Extractor) *AssistHandler {
	return &AssistHandler{model: model, extractor: extractor}
}

// AnswerFollowup answers a user question against prior conversation
// context.
func (h *AssistHandler) AnswerFollowup(c *gin.Context) {
	var req FollowupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question must not be empty"})
		return
	}

	answer, err := h.model.AnswerFollowup(c.Request.Context(), req.Question, req.Context)
	if err != nil {
		slog.Error("error answering followup", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate answer"})
		return
	}

	c.JSON(http.StatusOK, FollowupResponse{Answer: answer})
}

// SummarizeURL extracts a page, summarizes it and pulls topic keywords,
// so a pasted link can seed a research conversation.
func (h *AssistHandler) SummarizeURL(c *gin.Context) {
	var req SummarizeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must not be empty"})
		return
	}

	content, err := h.extractor.Extract(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, extract.ErrNoContent) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No article content found at URL"})
			return
		}
		slog.Error("error extracting page", "url", req.URL, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch URL"})
		return
	}

	summary, err := h.model.Summarize(c.Request.Context(), content.Text)
	if err != nil {
		slog.Error("error summarizing page", "url", req.URL, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not summarize URL"})
		return
	}

	keywords, err := h.model.ExtractKeywords(c.Request.Context(), summary)
	if err != nil {
		slog.Warn("error extracting keywords", "url", req.URL, "error", err)
		keywords = ""
	}

	c.JSON(http.StatusOK, SummarizeURLResponse{
		URL:      req.URL,
		Summary:  summary,
		Keywords: keywords,
	})
}
