package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetails() Details {
	return Details{
		Shop: Shop{
			Name:      "RK JEWELLERS",
			BillTitle: "ESTIMATION BILL",
			Address:   "Address: MAIN ROAD, OLD BAZAR, ACHAMPET, 509375",
			Contacts:  []string{"+91 9440370408", "+91 9490324969"},
		},
		CustomerName:    "Asha",
		CustomerContact: "9876543210",
		Date:            time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Items:           []string{"Item: Ring | Gross: 5g"},
		PaidAmount:      1000,
		DueAmount:       250.5,
	}
}

func TestBuildDocumentBlockOrder(t *testing.T) {
	doc := Build(sampleDetails())

	kinds := make([]BlockKind, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind)
	}

	assert.Equal(t, []BlockKind{
		BlockTitle, BlockTitle,
		BlockText, BlockText, BlockText,
		BlockSpacer,
		BlockText, BlockText, BlockText,
		BlockSpacer,
		BlockTable,
		BlockSpacer,
		BlockText, BlockText,
		BlockSpacer,
		BlockSignature,
	}, kinds)
}

func TestBuildDocumentMetadataAndTotals(t *testing.T) {
	doc := Build(sampleDetails())

	texts := make([]string, 0)
	for _, b := range doc.Blocks {
		if b.Kind == BlockText || b.Kind == BlockTitle {
			texts = append(texts, b.Text)
		}
	}

	assert.Contains(t, texts, "RK JEWELLERS")
	assert.Contains(t, texts, "ESTIMATION BILL")
	assert.Contains(t, texts, "Contact: +91 9440370408")
	assert.Contains(t, texts, "         +91 9490324969")
	assert.Contains(t, texts, "Customer Name: Asha")
	assert.Contains(t, texts, "Date: 2026-03-14")
	assert.Contains(t, texts, "Paid Amount: Rs.1000.00")
	assert.Contains(t, texts, "Due Amount: Rs.250.50")
}

func TestBuildDocumentSignatureBlock(t *testing.T) {
	doc := Build(sampleDetails())

	sig := doc.Blocks[len(doc.Blocks)-1]
	require.Equal(t, BlockSignature, sig.Kind)
	assert.Equal(t, []float64{4, 1, 4}, sig.Widths)
	require.Len(t, sig.Table, 2)
	assert.Equal(t, []string{"Customer Signature", "", "Authorized Signature"}, sig.Table[0])
}

func TestBuildDocumentEmptyVisitHasHeaderOnlyTable(t *testing.T) {
	d := sampleDetails()
	d.Items = nil

	doc := Build(d)
	for _, b := range doc.Blocks {
		if b.Kind == BlockTable {
			require.Len(t, b.Table, 1)
			assert.Equal(t, TableHeader, b.Table[0])
			return
		}
	}
	t.Fatal("document has no table block")
}
