package classifier

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	json "github.com/goccy/go-json"
	"google.golang.org/api/option"

	"streakd/internal/models"
	"streakd/internal/providers"
	"streakd/internal/structures"
)

type ClassifierInterface interface {
	Classify(ctx context.Context, image []byte) models.Verdict
}

// instruction is the fixed prompt sent with every check-in photo. The
// model must answer with the bare verdict JSON and nothing else.
const instruction = `You are a gym equipment detector. Analyze this image and determine if it contains a dumbbell or other gym/workout equipment (barbell, kettlebell, weight plate, resistance band, bench press, cable machine, treadmill, etc.).

Respond ONLY with a JSON object in this exact format, no markdown, no code fences:
{"isGymEquipment": true/false, "label": "name of equipment or 'none'", "confidence": "high/medium/low"}`

// GeminiClassifier sends a single photo to the Gemini vision API and maps
// the reply onto a Verdict. One request/response round trip, no retries.
type GeminiClassifier struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  providers.Logger
}

func NewGeminiClassifier(conf *structures.Config, logger providers.Logger) (ClassifierInterface, error) {
	if strings.TrimSpace(conf.Classifier.APIKey) == "" {
		return nil, errors.New("classifier API key is empty")
	}
	return &GeminiClassifier{
		apiKey:  strings.TrimSpace(conf.Classifier.APIKey),
		model:   conf.Classifier.Model,
		timeout: conf.Classifier.Timeout,
		logger:  logger,
	}, nil
}

// Classify never fails past this boundary: every error collapses into the
// safe negative verdict, so an unreachable or misbehaving model can only
// cost the user a retry, never a wrongly credited streak.
func (g *GeminiClassifier) Classify(ctx context.Context, image []byte) models.Verdict {
	verdict, err := g.classify(ctx, image)
	if err != nil {
		g.logger.Errorf(providers.TypeApp, "Classification failed: %s", err)
		return models.ErrorVerdict()
	}
	g.logger.Infof(providers.TypeApp, "Classification result: equipment=%t label=%q confidence=%s", verdict.IsGymEquipment, verdict.Label, verdict.Confidence)
	return verdict
}

func (g *GeminiClassifier) classify(ctx context.Context, image []byte) (models.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return models.Verdict{}, err
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: sniffMIME(image), Data: image},
		genai.Text(instruction),
	)
	if err != nil {
		return models.Verdict{}, err
	}

	reply := firstText(resp)
	if reply == "" {
		return models.Verdict{}, errors.New("empty model reply")
	}

	return ParseVerdict(reply)
}

// ParseVerdict decodes the model's structured reply, tolerating the
// markdown fences some models wrap around JSON despite instructions.
func ParseVerdict(reply string) (models.Verdict, error) {
	cleaned := stripCodeFences(reply)

	var verdict models.Verdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return models.Verdict{}, err
	}

	switch strings.ToLower(strings.TrimSpace(verdict.Confidence)) {
	case models.ConfidenceHigh:
		verdict.Confidence = models.ConfidenceHigh
	case models.ConfidenceMedium:
		verdict.Confidence = models.ConfidenceMedium
	default:
		verdict.Confidence = models.ConfidenceLow
	}
	return verdict, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

func sniffMIME(image []byte) string {
	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		return "image/jpeg"
	}
	return mime
}

func ptrFloat32(v float32) *float32 { return &v }
