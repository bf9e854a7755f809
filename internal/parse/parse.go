// Package parse turns one cleaned receipt line into a structured item
// record. It is the downstream collaborator of the line reconstruction
// pipeline and deliberately small: one vendor-neutral line shape plus
// digit-count disambiguation of the leading number pair.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kaiyo-foods/receiptlines/internal/entity"
)

// LineParser converts a cleaned line into an item record. ok is false for
// lines that do not parse; they are skipped, never errors.
type LineParser interface {
	ParseLine(line string) (*entity.ItemRecord, bool)
}

const (
	upcMinDigits     = 10
	upcMaxDigits     = 14
	itemNumMinDigits = 5
	itemNumMaxDigits = 10
)

var (
	// full form: UPC ITEM# DESCRIPTION UNIT_PRICE QTY [U|C [(T)]] EXT_AMOUNT
	reItemFull = regexp.MustCompile(`^(\d{5,14})\s+(\d{5,14})\s+(.+?)\s+(\d+\.\d{1,2})\s+(\d+(?:\.\d+)?)\s*(?:[UC]\s*\(?T\)?)?\s+(\d+\.\d{1,2})$`)
	// short form: UPC ITEM# DESCRIPTION QTY TOTAL
	reItemShort = regexp.MustCompile(`^(\d{5,14})\s+(\d{5,14})\s+(.+?)\s+(\d+(?:\.\d+)?)\s+(\d+\.\d{1,2})$`)

	reSizeSpaced = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:\.\d+)?)\s*(LB|LBS|OZ|OZS|CT|PACK|PK|QT|QTS|GAL|GALS|EA|EACH|KG)$`)
)

var uomMap = map[string]string{
	"LB": "LB", "LBS": "LB",
	"OZ": "OZ", "OZS": "OZ",
	"CT": "CT", "PACK": "CT", "PK": "CT",
	"QT": "QT", "QTS": "QT",
	"GAL": "GAL", "GALS": "GAL",
	"EA": "EACH", "EACH": "EACH",
	"KG": "KG",
}

// ItemLineParser parses the RD-style single-line item shape.
type ItemLineParser struct{}

func NewItemLineParser() *ItemLineParser {
	return &ItemLineParser{}
}

// ParseLine parses one cleaned line into an item record.
func (p *ItemLineParser) ParseLine(line string) (*entity.ItemRecord, bool) {
	line = strings.TrimSpace(line)

	if m := reItemFull.FindStringSubmatch(line); m != nil {
		unitPrice, _ := strconv.ParseFloat(m[4], 64)
		qty, _ := strconv.ParseFloat(m[5], 64)
		ext, _ := strconv.ParseFloat(m[6], 64)
		return p.build(line, m[1], m[2], m[3], unitPrice, qty, ext), true
	}
	if m := reItemShort.FindStringSubmatch(line); m != nil {
		qty, _ := strconv.ParseFloat(m[4], 64)
		total, _ := strconv.ParseFloat(m[5], 64)
		unit := total
		if qty > 0 {
			unit = total / qty
		}
		return p.build(line, m[1], m[2], m[3], unit, qty, total), true
	}
	return nil, false
}

func (p *ItemLineParser) build(line, first, second, desc string, unitPrice, qty, total float64) *entity.ItemRecord {
	upc, itemNumber := classifyNumberPair(first, second)
	name, size, uom := splitDescription(strings.TrimSpace(desc))
	return &entity.ItemRecord{
		ID:          uuid.New(),
		UPC:         upc,
		ItemNumber:  itemNumber,
		ProductName: name,
		Description: desc,
		Size:        size,
		UOM:         uom,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		TotalPrice:  total,
		RawLine:     line,
	}
}

// classifyNumberPair decides which of the two leading digit runs is the UPC
// (10-14 digits) and which the vendor item number (5-10 digits).
func classifyNumberPair(first, second string) (upc, itemNumber string) {
	fl, sl := len(first), len(second)
	switch {
	case fl >= upcMinDigits && fl <= upcMaxDigits:
		upc = first
		if sl >= itemNumMinDigits && sl <= itemNumMaxDigits {
			itemNumber = second
		}
	case fl >= itemNumMinDigits && fl <= itemNumMaxDigits:
		itemNumber = first
		if sl >= upcMinDigits && sl <= upcMaxDigits {
			upc = second
		}
	case sl >= upcMinDigits && sl <= upcMaxDigits:
		upc = second
	default:
		itemNumber = first
	}
	return upc, itemNumber
}

// splitDescription peels a trailing size + unit off the description and
// normalizes the unit. Without one the whole description is the product
// name, sold by EACH.
func splitDescription(desc string) (name, size, uom string) {
	if m := reSizeSpaced.FindStringSubmatch(desc); m != nil {
		return strings.TrimSpace(m[1]), m[2], uomMap[strings.ToUpper(m[3])]
	}
	return desc, "", "EACH"
}
