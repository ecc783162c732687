package service

import (
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// CatalogService содержит логику чтения каталогов направлений и активностей.
type CatalogService struct {
	destinationRepo *repository.DestinationRepository
	activityRepo    *repository.ActivityRepository
}

// NewCatalogService создает новый сервис каталогов.
func NewCatalogService(destinationRepo *repository.DestinationRepository, activityRepo *repository.ActivityRepository) *CatalogService {
	return &CatalogService{destinationRepo: destinationRepo, activityRepo: activityRepo}
}

// ListDestinations возвращает все направления каталога.
func (s *CatalogService) ListDestinations() ([]model.Destination, error) {
	return s.destinationRepo.FindAll()
}

// GetDestination возвращает направление вместе с достопримечательностями.
func (s *CatalogService) GetDestination(id string) (*model.Destination, []model.Attraction, error) {
	destination, err := s.destinationRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	attractions, err := s.destinationRepo.GetAttractions(id)
	if err != nil {
		return destination, nil, err
	}
	return destination, attractions, nil
}

// SearchActivities выполняет поиск по библиотеке активностей.
func (s *CatalogService) SearchActivities(category, keyword string) ([]model.Activity, error) {
	if category == "" && keyword == "" {
		return s.activityRepo.FindAll()
	}
	return s.activityRepo.Search(category, keyword)
}
