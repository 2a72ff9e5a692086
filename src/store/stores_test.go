package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fopzvit/src/database"
	"github.com/username/fopzvit/src/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	database.InitDB(filepath.Join(t.TempDir(), "test.db"))
}

func TestAccumulatedDataStoreLoadMissingYearIsZero(t *testing.T) {
	initTestDB(t)
	store := NewAccumulatedDataStore(database.DB)

	data, err := store.Load(2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, data.Year)
	for q := 1; q <= 4; q++ {
		assert.Zero(t, data.QuarterlyIncomeUAH.Quarter(q))
		assert.Zero(t, data.Taxes.SingleTax.Quarter(q))
	}
}

func TestAccumulatedDataStoreSaveReplaces(t *testing.T) {
	initTestDB(t)
	store := NewAccumulatedDataStore(database.DB)

	data := models.NewAccumulatedData(2025)
	data.QuarterlyIncomeUAH.Set(1, 50000)
	data.Taxes.SingleTax.Set(1, 2500)
	require.NoError(t, store.Save(data))

	loaded, err := store.Load(2025)
	require.NoError(t, err)
	assert.InDelta(t, 50000, loaded.QuarterlyIncomeUAH.Quarter(1), 1e-9)

	data.QuarterlyIncomeUAH.Set(1, 10000)
	require.NoError(t, store.Save(data))

	loaded, err = store.Load(2025)
	require.NoError(t, err)
	assert.InDelta(t, 10000, loaded.QuarterlyIncomeUAH.Quarter(1), 1e-9)
}

func TestProfileStoreRoundTrip(t *testing.T) {
	initTestDB(t)
	store := NewProfileStore(database.DB)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrProfileNotFound)

	profile := models.NewDefaultFOPProfile()
	profile.FullName = "Шевченко Тарас Григорович"
	profile.TIN = "1234567890"
	require.NoError(t, store.Save(profile))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Шевченко Тарас Григорович", loaded.FullName)
	assert.Equal(t, 3, loaded.TaxGroup)
	assert.InDelta(t, 0.05, loaded.SingleTaxRate, 1e-9)

	profile.FullName = "Франко Іван Якович"
	require.NoError(t, store.Save(profile))
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Франко Іван Якович", loaded.FullName)
}

func TestESVSettingsStoreRoundTrip(t *testing.T) {
	initTestDB(t)
	store := NewESVSettingsStore(database.DB)

	settings, err := store.Load(2025)
	require.NoError(t, err)
	assert.Nil(t, settings)

	toSave := &models.ESVSettings{Year: 2025}
	for month := 1; month <= 12; month++ {
		toSave.MonthlySettings = append(toSave.MonthlySettings, models.MonthESVSettings{
			Month: month, IncomeBase: 8000, ContributionRate: 22,
		})
	}
	require.NoError(t, store.Save(toSave))

	loaded, err := store.Load(2025)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Len(t, loaded.MonthlySettings, 12)
	assert.InDelta(t, 8000, loaded.MonthlySettings[0].IncomeBase, 1e-9)
}

func TestImportConfigStoreSeedsDefault(t *testing.T) {
	initTestDB(t)
	store := NewImportConfigStore(database.DB)

	configs, err := store.List()
	require.NoError(t, err)
	require.NotEmpty(t, configs)

	defaultConfig, err := store.Get(models.DefaultImportConfigID)
	require.NoError(t, err)
	assert.Equal(t, "Дата документа", defaultConfig.ColumnMapping.DateColumn)
	assert.True(t, defaultConfig.FilterIncoming)
}

func TestImportConfigStoreCustomConfigLifecycle(t *testing.T) {
	initTestDB(t)
	store := NewImportConfigStore(database.DB)

	custom := models.NewDefaultImportConfig()
	custom.ID = "my-bank"
	custom.Name = "Мій банк"
	require.NoError(t, store.Save(custom))

	loaded, err := store.Get("my-bank")
	require.NoError(t, err)
	assert.Equal(t, "Мій банк", loaded.Name)

	require.NoError(t, store.Delete("my-bank"))
	_, err = store.Get("my-bank")
	assert.ErrorIs(t, err, ErrImportConfigNotFound)
}

func TestImportConfigStoreDefaultIsProtected(t *testing.T) {
	initTestDB(t)
	store := NewImportConfigStore(database.DB)

	err := store.Delete(models.DefaultImportConfigID)
	assert.ErrorIs(t, err, ErrDefaultConfigReadOnly)
}
