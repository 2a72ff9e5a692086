package parsers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/security/validation"
)

var ErrParsingFailed = errors.New("statement parsing failed")

// ExcelParser reads XLSX bank statements. Column positions come from
// the import config's header-substring mapping; malformed rows are
// skipped, not fatal.
type ExcelParser struct{}

func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

type columnIndices struct {
	date         int
	amount       int
	currency     int
	counterparty int
	account      int
	description  int // -1 when not configured
	amountSign   int // -1 when not configured
}

func (p *ExcelParser) Parse(file io.Reader, config *models.ImportConfig) ([]models.ParsedPayment, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening workbook: %v", ErrParsingFailed, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParsingFailed)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: error reading sheet %q: %v", ErrParsingFailed, sheets[0], err)
	}

	if len(rows) < config.HeaderRow {
		return nil, fmt.Errorf("%w: file has fewer rows than the configured header row %d", ErrParsingFailed, config.HeaderRow)
	}

	headers := rows[config.HeaderRow-1]
	indices, err := mapColumns(headers, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}

	payments := []models.ParsedPayment{}
	for i := config.DataStartRow - 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		payment, err := parseRow(row, indices, config)
		if err != nil {
			logger.L.Warn("Skipping unparseable statement row", "row", i+1, "error", err)
			continue
		}
		if payment == nil {
			continue
		}
		if config.FilterIncoming && !payment.IsIncoming {
			continue
		}
		payments = append(payments, *payment)
	}

	return payments, nil
}

// mapColumns resolves configured column names against the header row.
// Matching is case-insensitive on substring, the way bank exports
// vary their header spelling.
func mapColumns(headers []string, config *models.ImportConfig) (columnIndices, error) {
	indices := columnIndices{description: -1, amountSign: -1}

	find := func(columnName string) (int, error) {
		lowered := strings.ToLower(columnName)
		for i, header := range headers {
			if header != "" && strings.Contains(strings.ToLower(header), lowered) {
				return i, nil
			}
		}
		return -1, fmt.Errorf("column not found: %s", columnName)
	}

	var err error
	if indices.date, err = find(config.ColumnMapping.DateColumn); err != nil {
		return indices, err
	}
	if indices.amount, err = find(config.ColumnMapping.AmountColumn); err != nil {
		return indices, err
	}
	if indices.currency, err = find(config.ColumnMapping.CurrencyColumn); err != nil {
		return indices, err
	}
	if indices.counterparty, err = find(config.ColumnMapping.CounterpartyColumn); err != nil {
		return indices, err
	}
	if indices.account, err = find(config.ColumnMapping.AccountColumn); err != nil {
		return indices, err
	}
	if config.ColumnMapping.DescriptionColumn != "" {
		if indices.description, err = find(config.ColumnMapping.DescriptionColumn); err != nil {
			return indices, err
		}
	}
	if config.AmountSignColumn != "" {
		if indices.amountSign, err = find(config.AmountSignColumn); err != nil {
			return indices, err
		}
	}
	return indices, nil
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseRow converts one data row into a payment. Returns (nil, nil)
// for rows with no payment content (empty trailers etc.).
func parseRow(row []string, indices columnIndices, config *models.ImportConfig) (*models.ParsedPayment, error) {
	dateValue := cellAt(row, indices.date)
	amountValue := cellAt(row, indices.amount)
	counterpartyValue := cellAt(row, indices.counterparty)

	if dateValue == "" || amountValue == "" || counterpartyValue == "" {
		return nil, nil
	}

	date, err := parseCellDate(dateValue, config.DateFormat)
	if err != nil {
		return nil, err
	}

	amount, err := ParseAmount(amountValue)
	if err != nil {
		return nil, err
	}

	isIncoming := amount > 0
	if signValue := cellAt(row, indices.amountSign); signValue != "" {
		// Client-bank statements mark credits with "К" (or latin "K").
		sign := strings.ToLower(signValue)
		isIncoming = sign == "к" || sign == "k"
	}
	if amount < 0 {
		amount = -amount
	}

	// Free-text cells go back out in exports; neutralize formula
	// prefixes and control characters here.
	sanitize := func(s string) string {
		return validation.SanitizeForFormulaInjection(validation.StripUnprintable(s))
	}

	return &models.ParsedPayment{
		Date:                date,
		Amount:              amount,
		CurrencyCode:        NormalizeCurrency(cellAt(row, indices.currency)),
		Counterparty:        sanitize(counterpartyValue),
		CounterpartyAccount: cellAt(row, indices.account),
		Description:         sanitize(cellAt(row, indices.description)),
		IsIncoming:          isIncoming,
	}, nil
}
