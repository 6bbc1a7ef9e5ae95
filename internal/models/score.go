package models

// ScoreResult holds the outcome of a heuristic prompt-quality evaluation.
// Strengths and Improvements are ordered by check, not sorted.
type ScoreResult struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}
