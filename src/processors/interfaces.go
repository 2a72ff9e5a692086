package processors

import "github.com/username/fopzvit/src/models"

// AccumulatedDataStore is the persistence contract the accumulation
// engine needs: load the prior aggregate for a year, save the rebuilt
// one. Satisfied by store.AccumulatedDataStore.
type AccumulatedDataStore interface {
	Load(year int) (*models.AccumulatedData, error)
	Save(data *models.AccumulatedData) error
}
