package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/models"
)

func newStore() *store.Store {
	return store.New(store.UploadPolicy{
		MaxFileSize:       1 << 30,
		AllowedExtensions: []string{"mp4"},
	})
}

func create(t *testing.T, s *store.Store, size int64) *models.Interview {
	t.Helper()
	iv, err := s.Create(store.NewInterviewParams{
		Filename:     "stored.mp4",
		OriginalName: "call.mp4",
		FileSize:     size,
		FilePath:     "./uploads/stored.mp4",
	})
	require.NoError(t, err)
	return iv
}

func complete(t *testing.T, s *store.Store, iv *models.Interview, duration float64) {
	t.Helper()
	_, err := s.Update(iv.ID, func(rec *models.Interview) error {
		if err := rec.BeginProcessing(); err != nil {
			return err
		}
		return rec.Complete([]models.TranscriptSegment{
			{Start: 0, End: duration, Text: "hello"},
		}, models.Analysis{})
	})
	require.NoError(t, err)
}

func TestCollect_EmptyStore(t *testing.T) {
	summary := Collect(newStore())

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.AverageFileSize)
	assert.Equal(t, 0.0, summary.AverageDuration)
	assert.Equal(t, 0.0, summary.TotalDurationMinutes)
	assert.Equal(t, 0, summary.ByStatus[models.StatusCompleted])
}

func TestCollect_CountsAndAverages(t *testing.T) {
	s := newStore()

	a := create(t, s, 1000)
	b := create(t, s, 3000)
	create(t, s, 2000) // stays uploaded

	complete(t, s, a, 60.0)
	complete(t, s, b, 120.0)

	summary := Collect(s)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.ByStatus[models.StatusUploaded])
	assert.Equal(t, 2, summary.ByStatus[models.StatusCompleted])
	assert.Equal(t, 0, summary.ByStatus[models.StatusProcessing])
	assert.Equal(t, 0, summary.ByStatus[models.StatusFailed])

	assert.InDelta(t, 2000.0, summary.AverageFileSize, 1e-9)
	// Average over completed interviews only.
	assert.InDelta(t, 90.0, summary.AverageDuration, 1e-9)
	assert.InDelta(t, 3.0, summary.TotalDurationMinutes, 1e-9)
}

func TestCollect_TotalMatchesUnfilteredList(t *testing.T) {
	s := newStore()
	for i := 0; i < 5; i++ {
		create(t, s, 1000)
	}

	_, total := s.List(store.Filter{}, 100, 0)
	summary := Collect(s)
	assert.Equal(t, total, summary.Total)
}

func TestCollect_RecomputesOnEveryCall(t *testing.T) {
	s := newStore()
	first := Collect(s)
	assert.Equal(t, 0, first.Total)

	iv := create(t, s, 1000)
	second := Collect(s)
	assert.Equal(t, 1, second.Total)

	_, err := s.Delete(iv.ID)
	require.NoError(t, err)
	third := Collect(s)
	assert.Equal(t, 0, third.Total)
}
