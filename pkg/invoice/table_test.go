package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableMixedItems(t *testing.T) {
	rows := BuildTable([]string{
		"Item: Ring | Gross: 5g | Wastage: 2% | Net: 4.9g | Gold Rate: Rs.6000 | Lab Rate: Rs.200 | Amount: Rs.29600",
		"garbage",
	})

	require.Len(t, rows, 3)
	assert.Equal(t, TableHeader, rows[0])
	assert.Equal(t, []string{"#1", "Ring", "5", "2", "4.9", "6000", "200", "29600"}, rows[1])
	assert.Equal(t, []string{"#2", "garbage", "-", "-", "-", "-", "-", "-"}, rows[2])
}

func TestBuildTableEmptyInput(t *testing.T) {
	rows := BuildTable(nil)
	require.Len(t, rows, 1)
	assert.Equal(t, TableHeader, rows[0])
}

func TestBuildTableBlankItemFallsBack(t *testing.T) {
	rows := BuildTable([]string{"   "})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "   ", "-", "-", "-", "-", "-", "-"}, rows[1])
}

func TestBuildTablePartialItemRendersEmptyFields(t *testing.T) {
	rows := BuildTable([]string{"Item: Ring"})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "Ring", "", "", "", "", "", ""}, rows[1])
}

func TestBuildTablePositionsAreStable(t *testing.T) {
	rows := BuildTable([]string{"junk", "Item: Chain", "more junk"})
	require.Len(t, rows, 4)
	assert.Equal(t, "#1", rows[1][0])
	assert.Equal(t, "#2", rows[2][0])
	assert.Equal(t, "Chain", rows[2][1])
	assert.Equal(t, "#3", rows[3][0])
}
