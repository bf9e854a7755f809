package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineFullForm(t *testing.T) {
	p := NewItemLineParser()
	rec, ok := p.ParseLine("032239601451 600145 SOY SAUCE 5GAL 32.15 1 U (T) 32.15")
	require.True(t, ok)
	assert.Equal(t, "032239601451", rec.UPC)
	assert.Equal(t, "600145", rec.ItemNumber)
	assert.Equal(t, "SOY SAUCE", rec.ProductName)
	assert.Equal(t, "5", rec.Size)
	assert.Equal(t, "GAL", rec.UOM)
	assert.InDelta(t, 32.15, rec.UnitPrice, 1e-9)
	assert.InDelta(t, 1, rec.Quantity, 1e-9)
	assert.InDelta(t, 32.15, rec.TotalPrice, 1e-9)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "032239601451 600145 SOY SAUCE 5GAL 32.15 1 U (T) 32.15", rec.RawLine)
}

func TestParseLineShortForm(t *testing.T) {
	p := NewItemLineParser()
	rec, ok := p.ParseLine("1234567890123 12345 BANANAS 2 1.99")
	require.True(t, ok)
	assert.Equal(t, "1234567890123", rec.UPC)
	assert.Equal(t, "12345", rec.ItemNumber)
	assert.Equal(t, "BANANAS", rec.ProductName)
	assert.Equal(t, "EACH", rec.UOM)
	assert.InDelta(t, 2, rec.Quantity, 1e-9)
	assert.InDelta(t, 1.99, rec.TotalPrice, 1e-9)
	assert.InDelta(t, 0.995, rec.UnitPrice, 1e-9)
}

func TestParseLineSwappedNumberPair(t *testing.T) {
	p := NewItemLineParser()
	rec, ok := p.ParseLine("600145 032239601451 FLOUR 25LB 12.80 1 12.80")
	require.True(t, ok)
	assert.Equal(t, "032239601451", rec.UPC)
	assert.Equal(t, "600145", rec.ItemNumber)
	assert.Equal(t, "FLOUR", rec.ProductName)
	assert.Equal(t, "25", rec.Size)
	assert.Equal(t, "LB", rec.UOM)
}

func TestParseLineRejectsNonItemShapes(t *testing.T) {
	p := NewItemLineParser()
	for _, line := range []string{
		"",
		"ORGANIC BANANAS",
		"SUBTOTAL 45.23",
		"1234567890123 wrapped description with no price",
	} {
		_, ok := p.ParseLine(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestSplitDescriptionUOMNormalization(t *testing.T) {
	tests := []struct {
		desc string
		name string
		size string
		uom  string
	}{
		{"CHICKEN LEG QUARTERS 40LBS", "CHICKEN LEG QUARTERS", "40", "LB"},
		{"PAPER TOWEL 12 PK", "PAPER TOWEL", "12", "CT"},
		{"MILK 1 GALS", "MILK", "1", "GAL"},
		{"EGG ROLL WRAPPERS", "EGG ROLL WRAPPERS", "", "EACH"},
	}
	for _, tt := range tests {
		name, size, uom := splitDescription(tt.desc)
		assert.Equal(t, tt.name, name, tt.desc)
		assert.Equal(t, tt.size, size, tt.desc)
		assert.Equal(t, tt.uom, uom, tt.desc)
	}
}
