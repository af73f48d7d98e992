package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/models"
)

func exportableInterview() *models.Interview {
	return &models.Interview{
		ID:           uuid.New(),
		Filename:     "stored.mp4",
		OriginalName: "call.mp4",
		FileSize:     5_000_000,
		Status:       models.StatusCompleted,
		Transcript: []models.TranscriptSegment{
			{Start: 0.0, End: 2.5, Text: "Hello, thank you for joining us."},
			{Start: 2.5, End: 5.0, Text: "Tell us about your background."},
		},
		Analysis: &models.Analysis{
			Summary:        "A short interview.",
			Sentiment:      "positive",
			SentimentScore: 0.78,
			Keywords:       []string{"React", "Go"},
		},
		Tags: []models.Tag{
			{ID: uuid.New(), Text: "Key moment", StartTime: 1.0, EndTime: 2.0, Color: "#3B82F6"},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestRender_RequiresCompleted(t *testing.T) {
	for _, status := range []models.Status{models.StatusUploaded, models.StatusProcessing, models.StatusFailed} {
		t.Run(string(status), func(t *testing.T) {
			iv := exportableInterview()
			iv.Status = status
			_, err := Render(iv, FormatJSON)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindNotReady))
		})
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(exportableInterview(), Format("xml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRender_JSONRoundTrip(t *testing.T) {
	iv := exportableInterview()

	data, err := Render(iv, FormatJSON)
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(data, &envelope))
	require.NotNil(t, envelope.Interview)

	assert.Equal(t, iv.ID, envelope.Interview.ID)
	assert.Len(t, envelope.Interview.Transcript, len(iv.Transcript))
	assert.Len(t, envelope.Interview.Tags, len(iv.Tags))
	require.NotNil(t, envelope.Interview.Analysis)
	assert.Equal(t, iv.Analysis.Summary, envelope.Interview.Analysis.Summary)
	assert.Equal(t, iv.Analysis.Sentiment, envelope.Interview.Analysis.Sentiment)
	assert.Equal(t, iv.Analysis.SentimentScore, envelope.Interview.Analysis.SentimentScore)
	assert.Equal(t, iv.Analysis.Keywords, envelope.Interview.Analysis.Keywords)
	assert.False(t, envelope.ExportedAt.IsZero())
}

func TestRender_TXT(t *testing.T) {
	iv := exportableInterview()

	data, err := Render(iv, FormatTXT)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "Interview: call.mp4\n"))
	assert.Contains(t, text, "Status: completed\n")
	assert.Contains(t, text, "SUMMARY:\nA short interview.\n")
	assert.Contains(t, text, "TRANSCRIPT:\n")
	assert.Contains(t, text, "[0.0s - 2.5s] Hello, thank you for joining us.\n")
	assert.Contains(t, text, "[2.5s - 5.0s] Tell us about your background.\n")
	assert.Contains(t, text, "TAGS:\n")
	assert.Contains(t, text, "[1.0s - 2.0s] Key moment\n")
}

func TestRender_TXTWithoutOptionalSections(t *testing.T) {
	iv := exportableInterview()
	iv.Tags = nil
	iv.Analysis.Summary = ""

	data, err := Render(iv, FormatTXT)
	require.NoError(t, err)
	text := string(data)

	assert.NotContains(t, text, "SUMMARY:")
	assert.NotContains(t, text, "TAGS:")
	assert.Contains(t, text, "TRANSCRIPT:")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType(FormatJSON))
	assert.Equal(t, "text/plain; charset=utf-8", ContentType(FormatTXT))
}
