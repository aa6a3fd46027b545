package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Segment is one addressable unit of generated answer text.
type Segment struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type ResponseQueue struct {
	Id                        uuid.UUID
	Intent                    string
	QueryText                 string
	Slots                     map[string]string
	Segments                  []Segment
	SourceReferences          json.RawMessage
	GeneratedAt               time.Time
	GeneratedByServiceVersion *string
	Status                    string
	AssignedTo                *uuid.UUID
	CreatedAt                 time.Time
	LastModified              time.Time
}

// SegmentText returns the original generated text for a segment id.
func (q *ResponseQueue) SegmentText(segmentId string) (string, bool) {
	for _, s := range q.Segments {
		if s.Id == segmentId {
			return s.Text, true
		}
	}
	return "", false
}
