package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kaiyo-foods/receiptlines/internal/entity"
)

func TestItemsXLSX(t *testing.T) {
	items := []*entity.ItemRecord{
		{
			UPC:           "1234567890123",
			ItemNumber:    "12345",
			DisplayName:   "Swiss Roll Cake",
			CanonicalName: "Swiss Roll Cake",
			UOM:           "EACH",
			Quantity:      1,
			UnitPrice:     12,
			TotalPrice:    12,
			RawLine:       "1 Swiss Roll $12.00",
		},
	}

	b, err := ItemsXLSX(items, nil)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Items", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Swiss Roll Cake", got)

	head, err := f.GetCellValue("Items", "A1")
	require.NoError(t, err)
	assert.Equal(t, "UPC", head)
}

func TestItemsXLSXEmpty(t *testing.T) {
	b, err := ItemsXLSX(nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
