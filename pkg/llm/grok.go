package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/toyamabay/hotaruika-surge/models"
)

// classifyPrompt enumerates the six levels, their count thresholds, and the
// priority rules the model must apply. The comment is appended verbatim.
const classifyPrompt = `You classify Japanese firefly-squid sighting reports from a beach forum.
Read the comment and pick exactly one surge level:
- none: zero squid, or wording like いない / ゼロ / なし.
- few: roughly 1-10 squid, or wording like 数匹 / ちらほら.
- moderate: roughly 11-30 squid, or wording like そこそこ / まあまあ / 例年並み.
- many: roughly 31-70 squid, or wording like たくさん / いっぱい / 堪能.
- very-many: 71 or more squid, or wording like 大量 / 爆寄り / イカだらけ.
- unknown: no usable information, or an off-topic comment (weather, parking,
  questions, links).

Priority rules, strongest first: an explicit count wins over everything;
then negation wording; then question/weather/off-topic cues (unknown); then
intensity vocabulary. When several counts appear, use the largest.

Respond with a JSON object only, no other prose:
{"surge_level": "none|few|moderate|many|very-many|unknown", "reason": "short justification"}

Comment: %s`

// Grok classifies comments through an OpenAI-compatible chat-completions
// endpoint (api.x.ai wire format).
type Grok struct {
	cfg    models.LLMConfig
	client *http.Client
	policy Policy
	logger *slog.Logger
}

// NewGrok builds the configured remote adapter.
func NewGrok(cfg models.LLMConfig, client *http.Client, logger *slog.Logger) *Grok {
	return &Grok{
		cfg:    cfg,
		client: client,
		policy: Policy{MaxAttempts: cfg.MaxAttempts, Backoff: cfg.Backoff.Std()},
		logger: logger,
	}
}

func (g *Grok) Available() bool { return true }

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type classifyPayload struct {
	SurgeLevel string `json:"surge_level"`
	Reason     string `json:"reason"`
}

// Classify asks the remote model for a surge level. Malformed or invalid
// responses are retried under the policy; the final error surfaces to the
// caller, which falls back to the local result.
func (g *Grok) Classify(ctx context.Context, comment string) (Classification, error) {
	var result Classification

	err := g.policy.Do(ctx, func() error {
		c, err := g.classifyOnce(ctx, comment)
		if err != nil {
			g.logger.Warn("remote classification attempt failed", "error", err)
			return err
		}
		result = c
		return nil
	})
	if err != nil {
		return Classification{}, err
	}
	return result, nil
}

func (g *Grok) classifyOnce(ctx context.Context, comment string) (Classification, error) {
	reqBody := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a precise classification assistant."},
			{Role: "user", Content: fmt.Sprintf(classifyPrompt, comment)},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(g.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return Classification{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to call remote model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Classification{}, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Classification{}, fmt.Errorf("remote model returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return Classification{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return Classification{}, fmt.Errorf("response carried no choices")
	}

	return parsePayload(chat.Choices[0].Message.Content)
}

// parsePayload extracts the structured payload from the model's reply, which
// may wrap the JSON object in markdown fences or prose.
func parsePayload(content string) (Classification, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return Classification{}, fmt.Errorf("no payload object in reply: %q", content)
	}

	var payload classifyPayload
	if err := json.Unmarshal([]byte(content[start:end+1]), &payload); err != nil {
		return Classification{}, fmt.Errorf("failed to parse payload: %w", err)
	}

	level, err := models.ParseSurgeLevel(payload.SurgeLevel)
	if err != nil {
		return Classification{}, err
	}
	return Classification{Level: level, Reason: payload.Reason}, nil
}
