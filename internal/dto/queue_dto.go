package dto

// GenerateRequest asks the answer service for a candidate response and
// enqueues it for review.
type GenerateRequest struct {
	Intent    string            `json:"intent" validate:"required"`
	QueryText string            `json:"query_text" validate:"required"`
	Slots     map[string]string `json:"slots" validate:"required"`
}

// NextResponse wraps the empty-queue condition explicitly: Found=false is the
// expected exhausted state, not an error.
type NextResponse struct {
	Found bool               `json:"found"`
	Item  *QueueItemResponse `json:"item,omitempty"`
}
