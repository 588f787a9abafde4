package invoice

import (
	"fmt"
	"strings"

	"github.com/rkjewellers/billing-api/pkg/lineitem"
)

// TableHeader is the fixed header row of the itemized invoice table.
var TableHeader = []string{
	"Sr. No.", "Item Name", "Gross Wt. (g)", "Wastage (%)", "Net Wt. (g)",
	"Gold Rate (Rs./g)", "Lab Rate (Rs.)", "Amount (Rs.)",
}

// BuildTable maps raw item strings into the invoice table rows, header first.
// Rows keep the 1-indexed display position of their source item.
//
// Items that are empty after trimming or that lack the "Item: " lead segment
// are never decoded; they degrade to a fallback row carrying the raw string in
// the name column and "-" in every value column. Decode failures degrade the
// same way, so a single bad item can never block the invoice. Missing fields
// inside a well-formed item are not failures; they simply render empty.
//
// The table carries no computed subtotal: paid/due are independent stored
// fields on the visit and are deliberately not reconciled against item rows.
func BuildTable(rawItems []string) [][]string {
	rows := make([][]string, 0, len(rawItems)+1)
	rows = append(rows, TableHeader)

	for i, raw := range rawItems {
		sr := fmt.Sprintf("#%d", i+1)

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || !strings.HasPrefix(trimmed, "Item: ") {
			rows = append(rows, fallbackRow(sr, raw))
			continue
		}

		it, err := lineitem.Decode(raw)
		if err != nil {
			rows = append(rows, fallbackRow(sr, raw))
			continue
		}

		rows = append(rows, []string{
			sr, it.Name, it.GrossWeight, it.WastagePercent, it.NetWeight,
			it.GoldRate, it.LabRate, it.Amount,
		})
	}
	return rows
}

func fallbackRow(sr, raw string) []string {
	return []string{sr, raw, "-", "-", "-", "-", "-", "-"}
}
