package transcript

import (
	"unicode"

	"interviewhub/api-gateway/internal/apperrors"
	"interviewhub/api-gateway/models"
)

// contextRunes is the number of characters kept on each side of a match.
const contextRunes = 40

// Match is one located occurrence of a query inside a transcript segment.
// Offsets are character (rune) positions within the segment text.
type Match struct {
	SegmentIndex int     `json:"segment_index"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Text         string  `json:"text"`
	MatchStart   int     `json:"match_start"`
	MatchEnd     int     `json:"match_end"`
	Context      string  `json:"context"`
}

// Search scans each transcript segment independently for literal occurrences
// of query. A query spanning a segment boundary does not match. No matches
// is a successful empty result, not an error.
func Search(iv *models.Interview, query string, caseSensitive bool) ([]Match, error) {
	if query == "" {
		return nil, apperrors.Validation("search query must not be empty")
	}
	if len(iv.Transcript) == 0 {
		return nil, apperrors.NotReady("transcript not available for interview %s", iv.ID)
	}

	matches := []Match{}
	for i, seg := range iv.Transcript {
		runes := []rune(seg.Text)
		for _, span := range findAll(runes, []rune(query), caseSensitive) {
			lo := span[0] - contextRunes
			if lo < 0 {
				lo = 0
			}
			hi := span[1] + contextRunes
			if hi > len(runes) {
				hi = len(runes)
			}
			matches = append(matches, Match{
				SegmentIndex: i,
				StartTime:    seg.Start,
				EndTime:      seg.End,
				Text:         seg.Text,
				MatchStart:   span[0],
				MatchEnd:     span[1],
				Context:      string(runes[lo:hi]),
			})
		}
	}
	return matches, nil
}

// findAll returns [start,end) rune spans of every occurrence of query in
// text, including overlapping ones starting at successive positions.
func findAll(text, query []rune, caseSensitive bool) [][2]int {
	if len(query) == 0 || len(query) > len(text) {
		return nil
	}
	var spans [][2]int
	for i := 0; i+len(query) <= len(text); i++ {
		if runesEqual(text[i:i+len(query)], query, caseSensitive) {
			spans = append(spans, [2]int{i, i + len(query)})
		}
	}
	return spans
}

func runesEqual(a, b []rune, caseSensitive bool) bool {
	for i := range b {
		x, y := a[i], b[i]
		if !caseSensitive {
			x, y = unicode.ToLower(x), unicode.ToLower(y)
		}
		if x != y {
			return false
		}
	}
	return true
}
