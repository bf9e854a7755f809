package constants

import "strings"

// Vendor is the canonical vendor tag attached to a receipt at ingestion.
type Vendor string

// Stable values (store these exact strings downstream).
const (
	VendorRD        Vendor = "RD"         // Restaurant Depot style OCR receipts
	VendorUniMousse Vendor = "UNI_Mousse" // mousse bakery invoices
	VendorCostco    Vendor = "COSTCO"
	VendorInstacart Vendor = "INSTACART"
	VendorUnknown   Vendor = "UNKNOWN"
)

// ParseVendor maps a free-form tag to a known Vendor. Unrecognized tags are
// kept verbatim so vendor-conditional stages can still match on markers.
func ParseVendor(tag string) Vendor {
	s := strings.TrimSpace(tag)
	switch strings.ToUpper(s) {
	case "RD", "RESTAURANT DEPOT", "RESTAURANT_DEPOT":
		return VendorRD
	case "UNI_MOUSSE":
		return VendorUniMousse
	case "COSTCO":
		return VendorCostco
	case "INSTACART":
		return VendorInstacart
	case "":
		return VendorUnknown
	}
	if strings.Contains(strings.ToUpper(s), "MOUSSE") {
		return VendorUniMousse
	}
	return Vendor(s)
}

// IsMousse reports whether the tag belongs to the mousse vendor family,
// either the exact tag or a case-insensitive MOUSSE marker substring.
func (v Vendor) IsMousse() bool {
	return v == VendorUniMousse || strings.Contains(strings.ToUpper(string(v)), "MOUSSE")
}
