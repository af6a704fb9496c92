package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var numberedLine = regexp.MustCompile(`^\d+\.\s*`)

// parseQuestionList pulls questions out of a model response formatted as
// a numbered list, bullet list, or loose lines of text.
func parseQuestionList(text string) []string {
	var questions []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case numberedLine.MatchString(line):
			q := strings.TrimSpace(numberedLine.ReplaceAllString(line, ""))
			if len(q) > 5 {
				questions = append(questions, q)
			}
		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*"):
			q := strings.TrimSpace(strings.TrimLeft(line, "•-*"))
			if len(q) > 5 {
				questions = append(questions, q)
			}
		case strings.Contains(line, "?") && len(line) > 10:
			questions = append(questions, line)
		}
	}

	return questions
}

// cleanJSONArray strips markdown fences and surrounding prose, keeping
// the outermost JSON array.
func cleanJSONArray(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// parsePerspectives decodes the model's perspective array. When the
// response is not valid JSON the content is still kept: it becomes a
// single catch-all perspective attributed to every input URL.
func parsePerspectives(raw string, allURLs []string) []Perspective {
	content := cleanJSONArray(raw)

	var parsed []struct {
		Perspective     string   `json:"perspective"`
		Name            string   `json:"name"`
		Summary         string   `json:"summary"`
		InterestingFact string   `json:"interesting_fact"`
		Articles        []string `json:"articles"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return []Perspective{{
			Label:       "Analysis",
			Narrative:   strings.TrimSpace(raw),
			ArticleURLs: allURLs,
		}}
	}

	out := make([]Perspective, 0, len(parsed))
	for _, p := range parsed {
		label := p.Perspective
		if label == "" {
			label = p.Name
		}
		out = append(out, Perspective{
			Label:          label,
			Narrative:      p.Summary,
			SupportingFact: p.InterestingFact,
			ArticleURLs:    p.Articles,
		})
	}
	return out
}
