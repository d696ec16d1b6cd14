package classifier

import (
	"streakd/internal/models"
	"streakd/internal/structures"
	"streakd/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict_PlainJSON(t *testing.T) {
	verdict, err := ParseVerdict(`{"isGymEquipment": true, "label": "dumbbell", "confidence": "high"}`)
	require.NoError(t, err)
	assert.True(t, verdict.IsGymEquipment)
	assert.Equal(t, "dumbbell", verdict.Label)
	assert.Equal(t, models.ConfidenceHigh, verdict.Confidence)
}

func TestParseVerdict_FencedEqualsUnfenced(t *testing.T) {
	plain := `{"isGymEquipment": true, "label": "kettlebell", "confidence": "medium"}`
	fenced := "```json\n" + plain + "\n```"

	fromPlain, err := ParseVerdict(plain)
	require.NoError(t, err)
	fromFenced, err := ParseVerdict(fenced)
	require.NoError(t, err)

	assert.Equal(t, fromPlain, fromFenced)
}

func TestParseVerdict_BareFences(t *testing.T) {
	verdict, err := ParseVerdict("```\n{\"isGymEquipment\": false, \"label\": \"none\", \"confidence\": \"low\"}\n```")
	require.NoError(t, err)
	assert.False(t, verdict.IsGymEquipment)
	assert.Equal(t, "none", verdict.Label)
}

func TestParseVerdict_MalformedReply(t *testing.T) {
	_, err := ParseVerdict("I think this is a dumbbell.")
	assert.Error(t, err)
}

func TestParseVerdict_EmptyReply(t *testing.T) {
	_, err := ParseVerdict("")
	assert.Error(t, err)
}

func TestParseVerdict_UnknownConfidenceMapsToLow(t *testing.T) {
	verdict, err := ParseVerdict(`{"isGymEquipment": true, "label": "barbell", "confidence": "certain"}`)
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceLow, verdict.Confidence)
}

func TestParseVerdict_ConfidenceCaseInsensitive(t *testing.T) {
	verdict, err := ParseVerdict(`{"isGymEquipment": true, "label": "barbell", "confidence": "High"}`)
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceHigh, verdict.Confidence)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
	assert.Equal(t, "", stripCodeFences("``````"))
}

func TestSniffMIME(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	assert.Equal(t, "image/png", sniffMIME(png))

	// Non-image bytes fall back to jpeg, the camera default.
	assert.Equal(t, "image/jpeg", sniffMIME([]byte("not an image")))
}

func TestNewGeminiClassifier_MissingKey(t *testing.T) {
	_, err := NewGeminiClassifier(&structures.Config{
		Classifier: structures.ClassifierConfig{Model: "gemini-2.0-flash-lite", Timeout: time.Second},
	}, &testutil.MockLogger{})
	assert.Error(t, err)
}

func TestNewGeminiClassifier_TrimsKey(t *testing.T) {
	cl, err := NewGeminiClassifier(&structures.Config{
		Classifier: structures.ClassifierConfig{APIKey: "  key  ", Model: "gemini-2.0-flash-lite", Timeout: time.Second},
	}, &testutil.MockLogger{})
	require.NoError(t, err)

	gemini, ok := cl.(*GeminiClassifier)
	require.True(t, ok)
	assert.Equal(t, "key", gemini.apiKey)
}

func TestErrorVerdictShape(t *testing.T) {
	verdict := models.ErrorVerdict()
	assert.False(t, verdict.IsGymEquipment)
	assert.Equal(t, "error", verdict.Label)
	assert.Equal(t, models.ConfidenceLow, verdict.Confidence)
}
