package lineclean

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaiyo-foods/receiptlines/constants"
	"github.com/kaiyo-foods/receiptlines/internal/rules"
)

func rdCleaner() *Cleaner {
	return NewCleaner(rules.DefaultRegistry().ForVendor(constants.VendorRD))
}

func TestRepairColonDecimals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"price colon", "FLOUR 25LB 32:15 1 U", "FLOUR 25LB 32.15 1 U"},
		{"mid-line colon", "A 7:5 B 10:99 C", "A 7.5 B 10.99 C"},
		{"three digits after colon untouched", "LOT 10:300", "LOT 10:300"},
		{"colon without leading digit untouched", "TIME: 12", "TIME: 12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairColonDecimals(tt.in))
		})
	}
}

func TestDropGarbageTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single token before unit", "SOY SAUCE 32.15 cP 1 U (T)", "SOY SAUCE 32.15 1 U (T)"},
		{"run of tokens", "SOY SAUCE 32.15 cP aE 1 U (T)", "SOY SAUCE 32.15 1 U (T)"},
		{"token before bare qty", "NOODLES 8.99 PAS 2", "NOODLES 8.99 2"},
		{"case-insensitive", "RICE 14.50 pas 3", "RICE 14.50 3"},
		{"no amount context untouched", "PAS DE DEUX BRAND 2", "PAS DE DEUX BRAND 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DropGarbageTokens(tt.in))
		})
	}
}

func TestStripPipes(t *testing.T) {
	assert.Equal(t, "123 FOO", StripPipes("| 123 FOO |"))
	assert.Equal(t, "EGGS 12CT 4.29", StripPipes("EGGS | 12CT 4.29"))
	assert.Equal(t, "A|B", StripPipes("A|B")) // no surrounding spaces, left alone
}

func TestTrimTrailingJunk(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"junk after amount", "CHICKEN 45.23 qT", "CHICKEN 45.23"},
		{"junk glued to amount", "CHICKEN 1.99qT", "CHICKEN 1.99"},
		{"protected compact marker kept", "TOFU 4.50 UT", "TOFU 4.50 UT"},
		{"protected spaced marker kept", "TOFU 4.50 C T", "TOFU 4.50 C T"},
		{"paren marker untouched", "TOFU 32.15 1 U (T)", "TOFU 32.15 1 U (T)"},
		{"no amount untouched", "JUST WORDS abc", "JUST WORDS abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimTrailingJunk(tt.in))
		})
	}
}

func TestCleanLinesDiscardsNonItemLines(t *testing.T) {
	c := rdCleaner()
	got := c.CleanLines([]string{
		"SUBTOTAL 45.23",
		"1234567890123 12345 BANANAS 2 1.99",
		"TRANSACTION TOTAL 45.23",
		"VISA 1234",
		"APPROVAL #98765",
		"UPC Item Description Unit Price",
	})
	assert.Equal(t, []string{"1234567890123 12345 BANANAS 2 1.99"}, got)
}

func TestCleanLinesRepairsAndJoins(t *testing.T) {
	c := rdCleaner()
	got := c.CleanLines([]string{
		"| 1234567890123 12345 ORGANIC",
		"BANANAS 2 1:99",
		"9876543210987 54321 FLOUR 25LB 32:15 cP 1 U (T)",
	})
	assert.Equal(t, []string{
		"1234567890123 12345 ORGANIC BANANAS 2 1.99",
		"9876543210987 54321 FLOUR 25LB 32.15 1 U (T)",
	}, got)
}

func TestCleanLinesDropsEmptiedFragments(t *testing.T) {
	c := rdCleaner()
	got := c.CleanLines([]string{"|", "   ", "1234567890123 12345 RICE 9.99"})
	assert.Equal(t, []string{"1234567890123 12345 RICE 9.99"}, got)
}

func TestCleanLineIsTotal(t *testing.T) {
	c := rdCleaner()
	assert.Equal(t, "", c.CleanLine("|"))
	assert.Equal(t, "", c.CleanLine("   "))
}
