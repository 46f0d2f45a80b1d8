package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/reporting"
)

const exportSheet = "Transactions"

var exportHeaders = []interface{}{"Date", "Type", "Category", "Description", "Amount", "Notes"}

// exportService renders transactions as an xlsx workbook.
type exportService struct {
	transactions TransactionServicer
}

// NewExportService creates a new ExportServicer.
func NewExportService(transactions TransactionServicer) ExportServicer {
	return &exportService{transactions: transactions}
}

// ExportTransactions writes every transaction matching filter to w as an
// xlsx workbook and returns the number of data rows written.
func (s *exportService) ExportTransactions(ctx context.Context, userID string, filter TransactionFilter, w io.Writer) (int, error) {
	transactions, err := s.transactions.ListTransactions(ctx, userID, filter)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i, t := range transactions {
		category := reporting.UncategorizedLabel
		if t.Category != nil {
			category = t.Category.Name
		}
		row := []interface{}{
			t.Date.Format(reporting.DateLayout),
			string(t.Type),
			category,
			t.Description,
			t.Amount.InexactFloat64(),
			t.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 12); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := f.SetColWidth(exportSheet, "D", "D", 40); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("write workbook: %w", err))
	}
	return len(transactions), nil
}
