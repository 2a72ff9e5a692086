package parsers

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func buildStatement(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf))
	return &buf
}

func statementRows(dataRows ...[]interface{}) [][]interface{} {
	rows := [][]interface{}{
		{"Виписка за рахунком"},
		{"Дата документа", "Тип", "Сума", "Валюта", "Найменування кореспондента", "Рахунок кореспондента", "Призн.платежу"},
	}
	return append(rows, dataRows...)
}

func TestExcelParserParsesIncomingPayments(t *testing.T) {
	file := buildStatement(t, statementRows(
		[]interface{}{"15.01.2025", "К", "10000,50", "ГРН", "ТОВ Замовник", "UA1234", "Оплата за послуги"},
		[]interface{}{"20.02.2025", "К", "1000", "Долар США", "Acme Inc", "UA5678", "Payment for services"},
	))

	parser := NewExcelParser()
	payments, err := parser.Parse(file, models.NewDefaultImportConfig())
	require.NoError(t, err)
	require.Len(t, payments, 2)

	first := payments[0]
	assert.Equal(t, 2025, first.Date.Year())
	assert.Equal(t, 15, first.Date.Day())
	assert.InDelta(t, 10000.50, first.Amount, 1e-9)
	assert.Equal(t, "UAH", first.CurrencyCode)
	assert.Equal(t, "ТОВ Замовник", first.Counterparty)
	assert.Equal(t, "UA1234", first.CounterpartyAccount)
	assert.Equal(t, "Оплата за послуги", first.Description)
	assert.True(t, first.IsIncoming)

	second := payments[1]
	assert.Equal(t, "USD", second.CurrencyCode)
	assert.InDelta(t, 1000, second.Amount, 1e-9)
}

func TestExcelParserFiltersOutgoing(t *testing.T) {
	file := buildStatement(t, statementRows(
		[]interface{}{"15.01.2025", "К", "10000", "ГРН", "ТОВ Замовник", "UA1234", ""},
		[]interface{}{"16.01.2025", "Д", "2500", "ГРН", "Постачальник", "UA9999", "Оренда"},
	))

	parser := NewExcelParser()
	payments, err := parser.Parse(file, models.NewDefaultImportConfig())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "ТОВ Замовник", payments[0].Counterparty)
}

func TestExcelParserSkipsMalformedRows(t *testing.T) {
	file := buildStatement(t, statementRows(
		[]interface{}{"not a date", "К", "100", "ГРН", "ТОВ Замовник", "UA1234", ""},
		[]interface{}{"15.01.2025", "К", "100x", "ГРН", "ТОВ Замовник", "UA1234", ""},
		[]interface{}{"", "", "", "", "", "", ""},
		[]interface{}{"15.01.2025", "К", "100", "ГРН", "ТОВ Замовник", "UA1234", ""},
	))

	parser := NewExcelParser()
	payments, err := parser.Parse(file, models.NewDefaultImportConfig())
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.InDelta(t, 100, payments[0].Amount, 1e-9)
}

func TestExcelParserMissingColumnFails(t *testing.T) {
	file := buildStatement(t, statementRows())
	config := models.NewDefaultImportConfig()
	config.ColumnMapping.AmountColumn = "Немає такої колонки"

	parser := NewExcelParser()
	_, err := parser.Parse(file, config)
	assert.ErrorIs(t, err, ErrParsingFailed)
}

func TestExcelParserSignFallsBackToAmountSign(t *testing.T) {
	config := models.NewDefaultImportConfig()
	config.AmountSignColumn = ""

	file := buildStatement(t, statementRows(
		[]interface{}{"15.01.2025", "", "5000", "ГРН", "ТОВ Замовник", "UA1234", ""},
		[]interface{}{"16.01.2025", "", "-2500", "ГРН", "Постачальник", "UA9999", ""},
	))

	parser := NewExcelParser()
	payments, err := parser.Parse(file, config)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, payments[0].IsIncoming)
	assert.InDelta(t, 5000, payments[0].Amount, 1e-9)
}
