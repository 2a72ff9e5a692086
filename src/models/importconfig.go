package models

// ImportColumnMapping names the spreadsheet columns (by header
// substring, case-insensitive) the importer reads a payment from.
type ImportColumnMapping struct {
	DateColumn         string `json:"dateColumn"`
	AmountColumn       string `json:"amountColumn"`
	CurrencyColumn     string `json:"currencyColumn"`
	CounterpartyColumn string `json:"counterpartyColumn"`
	AccountColumn      string `json:"accountColumn"`
	DescriptionColumn  string `json:"descriptionColumn,omitempty"`
}

// ImportConfig describes one bank's statement layout.
type ImportConfig struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	HeaderRow      int                 `json:"headerRow"`    // 1-based
	DataStartRow   int                 `json:"dataStartRow"` // 1-based
	ColumnMapping  ImportColumnMapping `json:"columnMapping"`
	DateFormat     string              `json:"dateFormat"`
	FilterIncoming bool                `json:"filterIncoming"`

	// Optional column carrying the debit/credit marker; when present
	// it overrides the amount sign for direction detection.
	AmountSignColumn string `json:"amountSignColumn,omitempty"`
}

// DefaultImportConfigID is the ID of the built-in client-bank layout,
// which cannot be deleted.
const DefaultImportConfigID = "default-config"

// NewDefaultImportConfig returns the built-in layout for a standard
// Ukrainian client-bank statement export.
func NewDefaultImportConfig() *ImportConfig {
	return &ImportConfig{
		ID:           DefaultImportConfigID,
		Name:         "Клієнт-банк (стандартний)",
		HeaderRow:    2,
		DataStartRow: 3,
		ColumnMapping: ImportColumnMapping{
			DateColumn:         "Дата документа",
			AmountColumn:       "Сума",
			CurrencyColumn:     "Валюта",
			CounterpartyColumn: "Найменування кореспондента",
			AccountColumn:      "Рахунок кореспондента",
			DescriptionColumn:  "Призн.платежу",
		},
		DateFormat:       "02.01.2006",
		FilterIncoming:   true,
		AmountSignColumn: "Тип",
	}
}
