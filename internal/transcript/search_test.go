package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/models"
)

func completedInterview() *models.Interview {
	return &models.Interview{
		Status: models.StatusCompleted,
		Transcript: []models.TranscriptSegment{
			{Start: 0.0, End: 2.5, Text: "Hello, thank you for joining us today for this interview."},
			{Start: 2.5, End: 5.0, Text: "Could you please tell us a bit about your background and experience?"},
			{Start: 5.0, End: 8.0, Text: "I have over 5 years of experience in software development."},
		},
		Analysis: &models.Analysis{
			Keywords:  []string{"React", "Node.js"},
			Questions: []models.QAPair{{Question: "Q?", Answer: "A.", StartTime: 2.5, EndTime: 8.0}},
			Topics:    []models.Topic{{Name: "Software Development", Confidence: 0.95}},
			SpeakerAnalysis: map[string]models.SpeakerStats{
				"speaker_1": {TalkTime: 8.5, Turns: 3},
			},
		},
	}
}

func TestSearch_EmptyQueryRejected(t *testing.T) {
	_, err := Search(completedInterview(), "", false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestSearch_NoTranscript(t *testing.T) {
	iv := &models.Interview{Status: models.StatusUploaded}
	_, err := Search(iv, "thank", false)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotReady))
}

func TestSearch_NoMatchesReturnsEmptyList(t *testing.T) {
	matches, err := Search(completedInterview(), "xyz-not-present", false)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearch_CaseInsensitiveByDefault(t *testing.T) {
	matches, err := Search(completedInterview(), "thank", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 0, m.SegmentIndex)
	assert.Equal(t, 0.0, m.StartTime)
	assert.Equal(t, 2.5, m.EndTime)
	assert.Equal(t, "thank", m.Text[m.MatchStart:m.MatchEnd])
	assert.Equal(t, 7, m.MatchStart)
	assert.Equal(t, 12, m.MatchEnd)
}

func TestSearch_CaseSensitive(t *testing.T) {
	matches, err := Search(completedInterview(), "Thank", true)
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = Search(completedInterview(), "thank", true)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestSearch_MultipleOccurrencesPerSegment(t *testing.T) {
	iv := &models.Interview{
		Status: models.StatusCompleted,
		Transcript: []models.TranscriptSegment{
			{Start: 0, End: 5, Text: "go and go and go"},
		},
	}
	matches, err := Search(iv, "go", false)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 0, matches[0].MatchStart)
	assert.Equal(t, 7, matches[1].MatchStart)
	assert.Equal(t, 14, matches[2].MatchStart)
}

func TestSearch_DoesNotMatchAcrossSegments(t *testing.T) {
	iv := &models.Interview{
		Status: models.StatusCompleted,
		Transcript: []models.TranscriptSegment{
			{Start: 0, End: 2, Text: "hello wor"},
			{Start: 2, End: 4, Text: "ld again"},
		},
	}
	matches, err := Search(iv, "world", false)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearch_ContextWindowClamps(t *testing.T) {
	iv := completedInterview()

	matches, err := Search(iv, "Hello", false)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	// Match at the segment head: context starts at the text start and is
	// capped at the configured width past the match.
	assert.Equal(t, "Hello, thank you for joining us today", matches[0].Context[:37])
	assert.LessOrEqual(t, len([]rune(matches[0].Context)), len("Hello")+contextRunes)
}

func TestProjections_RequireCompleted(t *testing.T) {
	notReady := []*models.Interview{
		{Status: models.StatusUploaded},
		{Status: models.StatusProcessing},
		{Status: models.StatusFailed},
	}

	for _, iv := range notReady {
		t.Run(string(iv.Status), func(t *testing.T) {
			_, err := Keywords(iv)
			assert.True(t, apperrors.IsKind(err, apperrors.KindNotReady))
			_, err = Questions(iv)
			assert.True(t, apperrors.IsKind(err, apperrors.KindNotReady))
			_, err = Topics(iv)
			assert.True(t, apperrors.IsKind(err, apperrors.KindNotReady))
			_, err = SpeakerAnalysis(iv)
			assert.True(t, apperrors.IsKind(err, apperrors.KindNotReady))
		})
	}
}

func TestProjections_ReturnAnalysisVerbatim(t *testing.T) {
	iv := completedInterview()

	keywords, err := Keywords(iv)
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Node.js"}, keywords)

	questions, err := Questions(iv)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 2.5, questions[0].StartTime)

	topics, err := Topics(iv)
	require.NoError(t, err)
	assert.Equal(t, "Software Development", topics[0].Name)

	speakers, err := SpeakerAnalysis(iv)
	require.NoError(t, err)
	assert.Equal(t, 3, speakers["speaker_1"].Turns)
}
