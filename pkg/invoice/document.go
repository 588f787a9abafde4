package invoice

import (
	"fmt"
	"time"
)

// BlockKind identifies the layout role of a document block.
type BlockKind int

const (
	// BlockTitle is a bold, centered title line.
	BlockTitle BlockKind = iota
	// BlockText is a normal left-aligned paragraph line.
	BlockText
	// BlockSpacer is a vertical gap of Height points.
	BlockSpacer
	// BlockTable is a bordered data table, first row treated as header.
	BlockTable
	// BlockSignature is a borderless table laid out with the relative column
	// widths in Widths.
	BlockSignature
)

// Block is one renderable element of an invoice document.
type Block struct {
	Kind   BlockKind
	Text   string
	Height float64
	Table  [][]string
	Widths []float64
}

// Document is the ordered block list handed to a Renderer.
type Document struct {
	Blocks []Block
}

// Renderer lays a document onto a fixed page size and returns the resulting
// byte stream, typically a PDF delivered as a file attachment.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
}

// Shop is the fixed letterhead block printed at the top of every bill.
type Shop struct {
	Name      string
	BillTitle string
	Address   string
	Contacts  []string
}

// Details carries everything needed to assemble one invoice document.
type Details struct {
	Shop            Shop
	CustomerName    string
	CustomerContact string
	Date            time.Time
	Items           []string
	PaidAmount      float64
	DueAmount       float64
}

// Build assembles the invoice document: letterhead, customer and visit
// metadata, the itemized table, paid/due totals (rounded to two decimals here
// and nowhere else), and the signature block.
func Build(d Details) *Document {
	doc := &Document{}

	doc.add(Block{Kind: BlockTitle, Text: d.Shop.Name})
	doc.add(Block{Kind: BlockTitle, Text: d.Shop.BillTitle})
	doc.add(Block{Kind: BlockText, Text: d.Shop.Address})
	for i, contact := range d.Shop.Contacts {
		line := "         " + contact
		if i == 0 {
			line = "Contact: " + contact
		}
		doc.add(Block{Kind: BlockText, Text: line})
	}
	doc.add(Block{Kind: BlockSpacer, Height: 10})

	doc.add(Block{Kind: BlockText, Text: "Customer Name: " + d.CustomerName})
	doc.add(Block{Kind: BlockText, Text: "Contact: " + d.CustomerContact})
	doc.add(Block{Kind: BlockText, Text: "Date: " + d.Date.Format("2006-01-02")})
	doc.add(Block{Kind: BlockSpacer, Height: 10})

	doc.add(Block{Kind: BlockTable, Table: BuildTable(d.Items)})
	doc.add(Block{Kind: BlockSpacer, Height: 10})

	doc.add(Block{Kind: BlockText, Text: fmt.Sprintf("Paid Amount: Rs.%.2f", d.PaidAmount)})
	doc.add(Block{Kind: BlockText, Text: fmt.Sprintf("Due Amount: Rs.%.2f", d.DueAmount)})
	doc.add(Block{Kind: BlockSpacer, Height: 40})

	doc.add(Block{
		Kind: BlockSignature,
		Table: [][]string{
			{"Customer Signature", "", "Authorized Signature"},
			{"_________________________", "", "_________________________"},
		},
		Widths: []float64{4, 1, 4},
	})

	return doc
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}
