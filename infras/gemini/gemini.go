package gemini

//go:generate go run go.uber.org/mock/mockgen -source=./gemini.go -destination=./mocks/gemini_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"turnero/config"
	"turnero/infras/otel"
	"turnero/shared/constant"
)

var (
	// ErrDisabled means no API key is configured; the suggestion feature is off.
	ErrDisabled = errors.New("gemini suggestions disabled: no API key configured")
	// ErrUnavailable means the API could not be reached or answered non-200.
	ErrUnavailable = errors.New("gemini unavailable")
	// ErrBadPayload means the API answered but the content was not usable JSON.
	ErrBadPayload = errors.New("gemini returned an unusable payload")
)

// Gemini asks the Generative Language API for a weekly schedule suggestion
// for a given business description. The returned bytes are the raw JSON candidate;
// the caller is responsible for decoding and validating the shape.
type Gemini interface {
	GenerateSchedule(ctx context.Context, business string) ([]byte, error)
}

type clientImpl struct {
	config *config.Config
	http   *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Gemini {
	return &clientImpl{
		config: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.External.Gemini.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

const promptTemplate = `Suggest a weekly booking schedule for a %s. ` +
	`Answer with a single JSON object shaped as ` +
	`{"slot_duration": int, "days": [{"day": "Monday".."Sunday", "enabled": bool, ` +
	`"start_time": "HH:MM", "end_time": "HH:MM", "overbooking_rules": []}]} ` +
	`with exactly seven days starting on Monday.`

func (c *clientImpl) GenerateSchedule(ctx context.Context, business string) ([]byte, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gemini.GenerateSchedule")
	defer scope.End()

	if c.config.External.Gemini.APIKey == "" {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(promptTemplate, business)}}},
		},
		GenerationConfig: generationConfig{ResponseMimeType: constant.ContentTypeJSON},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.config.External.Gemini.Endpoint,
		c.config.External.Gemini.Model,
		c.config.External.Gemini.APIKey,
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.http.Do(request)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("gemini request failed")

		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("gemini answered with non-OK status")

		return nil, ErrUnavailable
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		scope.TraceError(err)

		return nil, ErrBadPayload
	}

	text := candidateText(decoded)
	if text == "" {
		return nil, ErrBadPayload
	}

	if !json.Valid([]byte(text)) {
		return nil, ErrBadPayload
	}

	return []byte(text), nil
}

// candidateText pulls the first text part out of the first candidate,
// stripping markdown code fences the model sometimes wraps JSON in.
func candidateText(resp generateResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
