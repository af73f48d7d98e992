package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/models"
)

// Format is a supported export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// Envelope is the JSON export payload.
type Envelope struct {
	Interview  *models.Interview `json:"interview"`
	ExportedAt time.Time         `json:"exported_at"`
}

// Render serializes a completed interview in the requested format.
// ContentType reports the matching MIME type for the bytes.
func Render(iv *models.Interview, format Format) ([]byte, error) {
	if iv.Status != models.StatusCompleted {
		return nil, apperrors.NotReady("interview %s is %s, export requires a completed interview", iv.ID, iv.Status)
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(Envelope{Interview: iv, ExportedAt: time.Now().UTC()}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal export: %w", err)
		}
		return data, nil
	case FormatTXT:
		return []byte(renderText(iv)), nil
	default:
		return nil, apperrors.Validation("unsupported export format %q, supported formats: json, txt", format)
	}
}

// ContentType returns the MIME type for a supported format.
func ContentType(format Format) string {
	if format == FormatTXT {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

func renderText(iv *models.Interview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Interview: %s\n", iv.OriginalName)
	fmt.Fprintf(&b, "Upload Date: %s\n", iv.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Status: %s\n\n", iv.Status)

	if iv.Analysis != nil && iv.Analysis.Summary != "" {
		fmt.Fprintf(&b, "SUMMARY:\n%s\n\n", iv.Analysis.Summary)
	}

	if len(iv.Transcript) > 0 {
		b.WriteString("TRANSCRIPT:\n")
		for _, seg := range iv.Transcript {
			fmt.Fprintf(&b, "[%.1fs - %.1fs] %s\n", seg.Start, seg.End, seg.Text)
		}
	}

	if len(iv.Tags) > 0 {
		b.WriteString("\nTAGS:\n")
		for _, tag := range iv.Tags {
			fmt.Fprintf(&b, "[%.1fs - %.1fs] %s\n", tag.StartTime, tag.EndTime, tag.Text)
		}
	}

	return b.String()
}
