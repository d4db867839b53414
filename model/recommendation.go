package model

// Recommendation is a scored candidate book with human-readable reasons.
// Produced fresh on every scoring call, never persisted. The same shape is
// returned by the external recommendation service.
type Recommendation struct {
	Book    Book     `json:"book"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

type RecommendationRequest struct {
	BookIDs []int `json:"book_ids"`
}
