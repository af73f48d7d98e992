package models

// Analysis holds the derived summary data for a completed interview.
type Analysis struct {
	Summary         string                  `json:"summary"`
	Sentiment       string                  `json:"sentiment"`
	SentimentScore  float64                 `json:"sentiment_score"`
	Keywords        []string                `json:"keywords"`
	Questions       []QAPair                `json:"questions"`
	Topics          []Topic                 `json:"topics"`
	SpeakerAnalysis map[string]SpeakerStats `json:"speaker_analysis"`
}

// QAPair is one detected question and its answer, bound to the time range
// the exchange occupies in the recording.
type QAPair struct {
	Question  string  `json:"question"`
	Answer    string  `json:"answer"`
	Category  string  `json:"category"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Topic is a detected subject with the model's confidence in [0,1].
type Topic struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Mentions   int     `json:"mentions"`
}

// SpeakerStats aggregates one speaker's participation.
type SpeakerStats struct {
	TalkTime float64 `json:"talk_time"`
	Turns    int     `json:"turns"`
}
