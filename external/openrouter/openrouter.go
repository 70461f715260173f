package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	DefaultURL   = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel = "upstage/solar-pro-3:free"

	appTitle       = "FluWatch - Surveilans Influenza Indonesia"
	temperature    = 0.3
	maxTokens      = 1024
	requestTimeout = 30 * time.Second
)

var (
	ErrEmptyKey      = fmt.Errorf("empty api key")
	ErrEmptyResponse = fmt.Errorf("no choices in response")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenRouter sends chat completions to an LLM behind the OpenRouter API
type OpenRouter interface {
	Configured() bool
	Complete(ctx context.Context, messages []Message) (string, error)
}

type openRouter struct {
	key     string
	url     string
	model   string
	referer string
	client  *http.Client
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (o *openRouter) Configured() bool {
	return o.key != ""
}

// Complete returns the content of the first choice
func (o *openRouter) Complete(ctx context.Context, messages []Message) (string, error) {
	if o.key == "" {
		return "", ErrEmptyKey
	}

	body, err := json.Marshal(completionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.key)
	req.Header.Set("HTTP-Referer", o.referer)
	req.Header.Set("X-Title", appTitle)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, o.url)
	}

	var r completionResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return "", err
	}

	if len(r.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return r.Choices[0].Message.Content, nil
}

func New(key, url, model, referer string) OpenRouter {
	u := DefaultURL
	if url != "" {
		u = url
	}

	m := DefaultModel
	if model != "" {
		m = model
	}

	return &openRouter{
		key:     key,
		url:     u,
		model:   m,
		referer: referer,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}
