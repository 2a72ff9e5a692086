package services

import (
	"github.com/patrickmn/go-cache"

	"github.com/username/fopzvit/src/logger"
	"github.com/username/fopzvit/src/models"
	"github.com/username/fopzvit/src/store"
)

type profileServiceImpl struct {
	profiles  *store.ProfileStore
	calcCache *cache.Cache
}

func NewProfileService(profiles *store.ProfileStore, calcCache *cache.Cache) ProfileService {
	return &profileServiceImpl{
		profiles:  profiles,
		calcCache: calcCache,
	}
}

func (s *profileServiceImpl) Load() (*models.FOPProfile, error) {
	return s.profiles.Load()
}

// Save persists the profile and flushes the whole calculation cache.
// Rate or limit changes apply to every year, so a per-year invalidation
// would leave stale entries behind.
func (s *profileServiceImpl) Save(profile *models.FOPProfile) error {
	if err := s.profiles.Save(profile); err != nil {
		return err
	}
	s.calcCache.Flush()
	logger.L.Debug("Calculation cache flushed after profile update")
	return nil
}
