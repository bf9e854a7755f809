package entity

import (
	"github.com/google/uuid"

	"github.com/kaiyo-foods/receiptlines/constants"
)

// Receipt is the unit of pipeline work: the ordered raw OCR lines of one
// scanned receipt plus the vendor tag attached at ingestion. The vendor tag
// is set once and read-only thereafter.
type Receipt struct {
	ID     uuid.UUID
	Vendor constants.Vendor
	Source string // originating file path, informational
	Lines  []string
}
