// Package assistant talks to the Gemini API for estimator conversations.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/usecase/interfaces"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

var (
	ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyModelResponse  = errors.New("empty model response")
)

const defaultGeminiModel = "gemini-2.0-flash"

const replySystemPrompt = `You are a pool construction estimator assistant for a residential
pool builder. Gather the project parameters needed for a cost estimate:
pool size in square feet, pool type (concrete, fiberglass or vinyl),
location, desired features and timeline. Be concise and friendly. Once
you have enough detail, tell the customer they can request their estimate.`

const extractSystemPrompt = `Extract the pool project parameters from the conversation below.
Respond with a single JSON object and nothing else, using this shape:
{"project_type":"Pool Construction","size":{"sqft":0,"length":0,"width":0,"depth":0},
"pool_type":"concrete|fiberglass|vinyl","location":"","features":[],
"timeline":"","special_requirements":[]}
Leave fields you cannot determine at their zero values.`

// GeminiAssistant implements the conversational side of the estimator on the
// Gemini API. Construction fails when GEMINI_API_KEY is unset; callers treat
// that as "no assistant configured" and fall back to scripted replies.
type GeminiAssistant struct {
	cli   *genai.Client
	model string
	log   *zap.Logger
}

var _ interfaces.IAssistant = (*GeminiAssistant)(nil)

func NewGeminiAssistant(ctx context.Context, log *zap.Logger) (*GeminiAssistant, error) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	if log == nil {
		log = zap.NewNop()
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	log.Info("gemini assistant initialized", zap.String("model", model))

	return &GeminiAssistant{cli: cli, model: model, log: log}, nil
}

func (a *GeminiAssistant) Reply(ctx context.Context, messages []entities.Message) (string, error) {
	text, err := a.generate(ctx, replySystemPrompt+"\n\n"+transcript(messages), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (a *GeminiAssistant) ExtractProject(ctx context.Context, messages []entities.Message) (entities.ProjectDescription, error) {
	text, err := a.generate(ctx, extractSystemPrompt+"\n\n"+transcript(messages),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return entities.ProjectDescription{}, err
	}

	var project entities.ProjectDescription
	if err := json.Unmarshal([]byte(text), &project); err != nil {
		a.log.Warn("model returned invalid project JSON", zap.Error(err))
		return entities.ProjectDescription{}, err
	}
	project.Normalize()
	return project, nil
}

// generate calls the model with up to three attempts and exponential backoff.
func (a *GeminiAssistant) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		resp, err := a.cli.Models.GenerateContent(ctx, a.model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}, cfg)
		if err != nil {
			lastErr = err
		} else if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = ErrEmptyModelResponse
		} else {
			return resp.Candidates[0].Content.Parts[0].Text, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(300*(1<<attempt)) * time.Millisecond):
		}
	}
	return "", lastErr
}

func transcript(messages []entities.Message) string {
	var b strings.Builder
	b.WriteString("[CONVERSATION]\n")
	for _, m := range messages {
		b.WriteString(string(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return b.String()
}
