// Package mirror implements the append-only tabular export behind the
// MirrorSink interface. Each workbook is reopened, extended by one row and
// saved in full per append; with two small sheets that cost is acceptable and
// the interface keeps it swappable for a true append-oriented format.
package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rkjewellers/billing-api/internal/domain/entity"
)

const (
	customersFile = "customers.xlsx"
	visitsFile    = "visits.xlsx"

	dateLayout = "2006-01-02 15:04:05"
)

var (
	customerHeaders = []interface{}{"ID", "Name", "Contact"}
	visitHeaders    = []interface{}{"Customer ID", "Date", "Purchased Items", "Paid Amount", "Due Amount"}
)

// ExcelSink mirrors customers and visits into xlsx workbooks in dir.
type ExcelSink struct {
	dir string
}

// NewExcelSink creates an xlsx-backed mirror sink writing into dir.
func NewExcelSink(dir string) *ExcelSink {
	return &ExcelSink{dir: dir}
}

// AppendCustomer appends one customer row to customers.xlsx.
func (s *ExcelSink) AppendCustomer(_ context.Context, customer *entity.Customer) error {
	return s.appendRow(customersFile, customerHeaders, []interface{}{
		customer.ID, customer.Name, customer.Contact,
	})
}

// AppendVisit appends one visit row to visits.xlsx.
func (s *ExcelSink) AppendVisit(_ context.Context, visit *entity.Visit) error {
	return s.appendRow(visitsFile, visitHeaders, []interface{}{
		visit.CustomerID,
		visit.Date.Format(dateLayout),
		visit.PurchasedItems,
		visit.PaidAmount,
		visit.DueAmount,
	})
}

func (s *ExcelSink) appendRow(name string, headers, row []interface{}) error {
	path := filepath.Join(s.dir, name)

	f, next, err := openWorkbook(path, headers)
	if err != nil {
		return err
	}
	defer f.Close()

	cell, err := excelize.CoordinatesToCellName(1, next)
	if err != nil {
		return fmt.Errorf("mirror: %w", err)
	}
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("mirror: append row to %s: %w", name, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("mirror: save %s: %w", name, err)
	}
	return nil
}

// openWorkbook opens an existing workbook or creates one with the header row,
// returning the file and the 1-based index of the next free row.
func openWorkbook(path string, headers []interface{}) (*excelize.File, int, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, 0, fmt.Errorf("mirror: open %s: %w", path, err)
		}
		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("mirror: read %s: %w", path, err)
		}
		return f, len(rows) + 1, nil
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("mirror: write headers to %s: %w", path, err)
	}
	return f, 2, nil
}
