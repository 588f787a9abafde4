// Package pdfrender renders invoice documents onto A4 pages using fpdf.
package pdfrender

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rkjewellers/billing-api/pkg/invoice"
)

const (
	titleFontSize = 16
	bodyFontSize  = 10
	titleLineH    = 9
	bodyLineH     = 5.5
	tableLineH    = 8
	// pointToMM converts the spacer heights carried by the document (points,
	// ReportLab convention) into the millimetre unit fpdf pages use.
	pointToMM = 25.4 / 72.0
)

// Renderer implements invoice.Renderer on top of fpdf.
type Renderer struct{}

// New creates a PDF renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render lays the document blocks onto an A4 portrait page and returns the
// PDF byte stream.
func (r *Renderer) Render(doc *invoice.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	for _, b := range doc.Blocks {
		switch b.Kind {
		case invoice.BlockTitle:
			pdf.SetFont("Helvetica", "B", titleFontSize)
			pdf.CellFormat(0, titleLineH, b.Text, "", 1, "C", false, 0, "")
		case invoice.BlockText:
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.CellFormat(0, bodyLineH, b.Text, "", 1, "L", false, 0, "")
		case invoice.BlockSpacer:
			pdf.Ln(b.Height * pointToMM)
		case invoice.BlockTable:
			r.renderTable(pdf, b.Table)
		case invoice.BlockSignature:
			r.renderSignature(pdf, b)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfrender: %w", err)
	}
	return buf.Bytes(), nil
}

// renderTable draws a full-grid table: grey header with white bold text,
// beige body rows, all cells centered.
func (r *Renderer) renderTable(pdf *fpdf.Fpdf, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := columnWidths(pdf, len(rows[0]))

	pdf.SetFont("Helvetica", "B", bodyFontSize)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, cell := range rows[0] {
		pdf.CellFormat(widths[i], tableLineH, cell, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows[1:] {
		for i, cell := range row {
			pdf.CellFormat(widths[i], tableLineH, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSignature draws a borderless bold table using the block's relative
// column widths.
func (r *Renderer) renderSignature(pdf *fpdf.Fpdf, b invoice.Block) {
	usable := usableWidth(pdf)

	var total float64
	for _, w := range b.Widths {
		total += w
	}
	if total == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", bodyFontSize)
	for _, row := range b.Table {
		for i, cell := range row {
			w := usable / float64(len(row))
			if i < len(b.Widths) {
				w = usable * b.Widths[i] / total
			}
			pdf.CellFormat(w, bodyLineH, cell, "", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// columnWidths spreads the usable page width over n columns, giving the item
// name column twice the share of the others.
func columnWidths(pdf *fpdf.Fpdf, n int) []float64 {
	usable := usableWidth(pdf)

	widths := make([]float64, n)
	unit := usable / float64(n+1)
	for i := range widths {
		widths[i] = unit
	}
	if n > 1 {
		widths[1] = 2 * unit
	}
	return widths
}

func usableWidth(pdf *fpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return pageW - left - right
}
