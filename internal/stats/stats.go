package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"interviewhub/api-gateway/internal/store"
	"interviewhub/api-gateway/models"
)

// Summary is the cross-interview aggregate, recomputed from the live store
// on every call.
type Summary struct {
	Total                int                   `json:"total"`
	ByStatus             map[models.Status]int `json:"by_status"`
	AverageFileSize      float64               `json:"average_file_size"`
	AverageDuration      float64               `json:"average_duration"`
	TotalDurationMinutes float64               `json:"total_duration_minutes"`
}

// Collect derives counts and averages from a snapshot of the store.
// Durations come from each completed interview's last segment end; the
// averages are 0 when their input sets are empty.
func Collect(s *store.Store) Summary {
	all := s.Snapshot()

	summary := Summary{
		Total: len(all),
		ByStatus: map[models.Status]int{
			models.StatusUploaded:   0,
			models.StatusProcessing: 0,
			models.StatusCompleted:  0,
			models.StatusFailed:     0,
		},
	}

	sizes := make([]float64, 0, len(all))
	durations := make([]float64, 0, len(all))
	totalDuration := 0.0
	for _, iv := range all {
		summary.ByStatus[iv.Status]++
		sizes = append(sizes, float64(iv.FileSize))
		if iv.Status == models.StatusCompleted {
			d := iv.Duration()
			durations = append(durations, d)
			totalDuration += d
		}
	}

	summary.AverageFileSize = meanOrZero(sizes)
	summary.AverageDuration = meanOrZero(durations)
	summary.TotalDurationMinutes = round2(totalDuration / 60)

	return summary
}

func meanOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean, err := mstats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
