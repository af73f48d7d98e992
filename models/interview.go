package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the processing lifecycle state of an interview.
type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusUploaded, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Interview represents one uploaded recording and everything derived from it.
type Interview struct {
	ID             uuid.UUID           `json:"id"`
	Filename       string              `json:"filename"`
	OriginalName   string              `json:"original_name"`
	FileSize       int64               `json:"file_size"`
	FilePath       string              `json:"file_path"`
	RemoteURL      *string             `json:"remote_url,omitempty"`
	RemotePublicID *string             `json:"remote_public_id,omitempty"`
	Status         Status              `json:"status"`
	Transcript     []TranscriptSegment `json:"transcript,omitempty"`
	Analysis       *Analysis           `json:"analysis,omitempty"`
	Tags           []Tag               `json:"tags"`
	ErrorReason    *string             `json:"error_reason,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// BeginProcessing moves the interview from uploaded to processing.
// Transitions are monotonic; any other starting state is rejected.
func (iv *Interview) BeginProcessing() error {
	if iv.Status != StatusUploaded {
		return fmt.Errorf("cannot start processing from status %q", iv.Status)
	}
	iv.Status = StatusProcessing
	return nil
}

// Complete populates transcript and analysis and moves the interview to
// completed. Both fields are set together so no caller ever observes a
// completed interview with one of them missing.
func (iv *Interview) Complete(transcript []TranscriptSegment, analysis Analysis) error {
	if iv.Status != StatusProcessing {
		return fmt.Errorf("cannot complete from status %q", iv.Status)
	}
	for i, seg := range transcript {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("transcript segment %d: %w", i, err)
		}
	}
	analysis.Keywords = dedupeKeywords(analysis.Keywords)
	iv.Transcript = transcript
	iv.Analysis = &analysis
	iv.Status = StatusCompleted
	return nil
}

// Fail records the collaborator's error and moves the interview to failed.
func (iv *Interview) Fail(reason string) error {
	if iv.Status != StatusProcessing {
		return fmt.Errorf("cannot fail from status %q", iv.Status)
	}
	iv.Status = StatusFailed
	iv.ErrorReason = &reason
	return nil
}

// MaxTimestamp returns the end of the last transcript segment, or 0 when no
// transcript is present. Segments are ordered by start time.
func (iv *Interview) MaxTimestamp() float64 {
	max := 0.0
	for _, seg := range iv.Transcript {
		if seg.End > max {
			max = seg.End
		}
	}
	return max
}

// Duration is the interview's spoken length in seconds.
func (iv *Interview) Duration() float64 {
	return iv.MaxTimestamp()
}

// Clone returns a deep copy of the interview so callers can never alias
// store-owned slices or maps.
func (iv *Interview) Clone() *Interview {
	cp := *iv
	if iv.Transcript != nil {
		cp.Transcript = append([]TranscriptSegment(nil), iv.Transcript...)
	}
	if iv.Tags != nil {
		cp.Tags = append([]Tag(nil), iv.Tags...)
	}
	if iv.Analysis != nil {
		a := *iv.Analysis
		a.Keywords = append([]string(nil), iv.Analysis.Keywords...)
		a.Questions = append([]QAPair(nil), iv.Analysis.Questions...)
		a.Topics = append([]Topic(nil), iv.Analysis.Topics...)
		if iv.Analysis.SpeakerAnalysis != nil {
			a.SpeakerAnalysis = make(map[string]SpeakerStats, len(iv.Analysis.SpeakerAnalysis))
			for k, v := range iv.Analysis.SpeakerAnalysis {
				a.SpeakerAnalysis[k] = v
			}
		}
		cp.Analysis = &a
	}
	return &cp
}

// TranscriptSegment is a single timestamped unit of transcript text.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Validate checks the segment's time range and text.
func (s TranscriptSegment) Validate() error {
	if s.Start < 0 {
		return fmt.Errorf("segment start %.2f is negative", s.Start)
	}
	if s.Start >= s.End {
		return fmt.Errorf("segment start %.2f is not before end %.2f", s.Start, s.End)
	}
	if s.Text == "" {
		return fmt.Errorf("segment text is empty")
	}
	return nil
}

func dedupeKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return keywords
	}
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
