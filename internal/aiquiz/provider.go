package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"google.golang.org/genai"
)

var ErrProviderUnavailable = errors.New("question drafting is not configured")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]Draft, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider reads GEMINI_API_KEY or GOOGLE_API_KEY from the
// environment.
func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]Draft, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(system+"\n\n"+user),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] raw model reply:\n%s", raw)

	drafts, err := parseDrafts(raw)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] could not decode model reply")
		return nil, err
	}
	log.Infof("[AIQUIZ] model drafted %d questions", len(drafts))
	return drafts, nil
}

func parseDrafts(raw string) ([]Draft, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil, errors.New("empty model reply")
	}

	var drafts []Draft
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}
	return drafts, nil
}

type unavailable struct{}

func (unavailable) SendPrompt(context.Context, string, string) ([]Draft, error) {
	return nil, ErrProviderUnavailable
}
