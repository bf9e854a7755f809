package entity

import "github.com/google/uuid"

// ItemRecord is one parsed receipt line item. Records are produced by a
// LineParser, mutated in place by the tail stitcher, and immutable once
// handed to downstream product-mapping collaborators.
type ItemRecord struct {
	ID uuid.UUID

	UPC        string
	ItemNumber string

	// Name fields; any subset may be present.
	DisplayName   string
	CanonicalName string
	ProductName   string
	RawName       string // name as parsed, before alias/whitespace repair

	Description string
	Size        string
	UOM         string

	Quantity   float64
	UnitPrice  float64
	TotalPrice float64

	RawLine string

	IsFee     bool
	IsSummary bool
}

// BestName returns the best-available name field in preference order:
// display name, canonical name, raw product name.
func (it *ItemRecord) BestName() string {
	if it.DisplayName != "" {
		return it.DisplayName
	}
	if it.CanonicalName != "" {
		return it.CanonicalName
	}
	return it.ProductName
}
