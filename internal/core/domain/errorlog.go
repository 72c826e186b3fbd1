package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ErrorLogEntry is a failed external call kept for operator visibility.
type ErrorLogEntry struct {
	ID         uuid.UUID
	CampaignID *int64
	Endpoint   string
	Method     string
	Payload    string
	Message    string
	RetryCount int
	Resolved   bool
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// MaxPayloadSummary caps the stored payload summary.
const MaxPayloadSummary = 512

// SummarizePayload trims a request payload for storage. The cut never
// splits a UTF-8 sequence.
func SummarizePayload(b []byte) string {
	if len(b) <= MaxPayloadSummary {
		return string(b)
	}
	n := MaxPayloadSummary
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "...(truncated)"
}
