package processing

import (
	"context"
	"time"

	"interviewhub/api-gateway/models"
)

// Result is the output contract of the transcription and analysis
// collaborator: a time-indexed transcript plus its derived analysis.
type Result struct {
	Transcript []models.TranscriptSegment
	Analysis   models.Analysis
}

// Transcriber produces a transcript and analysis for a stored recording.
// Implementations own their deadlines and report failure through the
// returned error; the state machine records it on the interview.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (Result, error)
}

// Simulated is a Transcriber that returns fixed sample data after a short
// delay, standing in for the real speech-to-text and NLP services.
type Simulated struct {
	Delay time.Duration
}

// Transcribe waits for the configured delay and returns the sample result.
func (s Simulated) Transcribe(ctx context.Context, filePath string) (Result, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	return SampleResult(), nil
}

// SampleResult returns the canned transcript and analysis used by the
// simulated collaborator. Callers receive fresh slices on every call.
func SampleResult() Result {
	return Result{
		Transcript: []models.TranscriptSegment{
			{Start: 0.0, End: 2.5, Text: "Hello, thank you for joining us today for this interview."},
			{Start: 2.5, End: 5.0, Text: "Could you please tell us a bit about your background and experience?"},
			{Start: 5.0, End: 8.0, Text: "I have over 5 years of experience in software development, primarily working with React and Node.js."},
			{Start: 8.0, End: 12.0, Text: "That's great! Can you walk us through a challenging project you've worked on recently?"},
			{Start: 12.0, End: 18.0, Text: "Recently, I led a team of 4 developers to build a real-time collaboration platform using WebSockets and React."},
		},
		Analysis: models.Analysis{
			Summary:        "A comprehensive interview covering the candidate's background, technical experience, and project management skills.",
			Sentiment:      "positive",
			SentimentScore: 0.78,
			Keywords:       []string{"React", "Node.js", "WebSockets", "team leadership", "collaboration"},
			Questions: []models.QAPair{
				{
					Question:  "Could you please tell us a bit about your background and experience?",
					Answer:    "I have over 5 years of experience in software development, primarily working with React and Node.js.",
					Category:  "background",
					StartTime: 2.5,
					EndTime:   8.0,
				},
				{
					Question:  "Can you walk us through a challenging project you've worked on recently?",
					Answer:    "Recently, I led a team of 4 developers to build a real-time collaboration platform using WebSockets and React.",
					Category:  "technical",
					StartTime: 8.0,
					EndTime:   18.0,
				},
			},
			Topics: []models.Topic{
				{Name: "Software Development", Confidence: 0.95, Mentions: 3},
				{Name: "Team Leadership", Confidence: 0.88, Mentions: 2},
				{Name: "React", Confidence: 0.92, Mentions: 2},
			},
			SpeakerAnalysis: map[string]models.SpeakerStats{
				"speaker_1": {TalkTime: 8.5, Turns: 3},
				"speaker_2": {TalkTime: 9.5, Turns: 2},
			},
		},
	}
}
