package services

import (
	"time"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/repository"
)

// CatalogService is the read-only collaborator for restaurant, menu and
// campaign records. The core never mutates catalog data.
type CatalogService struct {
	Restaurants *repository.RestaurantRepository
	Menus       *repository.MenuRepository
	Campaigns   *repository.CampaignRepository
}

func NewCatalogService(rr *repository.RestaurantRepository, mr *repository.MenuRepository, cr *repository.CampaignRepository) *CatalogService {
	return &CatalogService{Restaurants: rr, Menus: mr, Campaigns: cr}
}

// ListRestaurants loads the catalog and runs it through the filter/sort
// engine. The engine is a pure function; this is the one place that calls
// it for the listing view.
func (s *CatalogService) ListRestaurants(cr FilterCriteria) ([]entity.Restaurant, error) {
	all, err := s.Restaurants.FindAll()
	if err != nil {
		return nil, err
	}
	return ApplyFilter(all, cr), nil
}

func (s *CatalogService) Restaurant(id uint) (*entity.Restaurant, error) {
	return s.Restaurants.FindByID(id)
}

func (s *CatalogService) Menu(id uint) (*entity.Menu, error) {
	return s.Menus.FindByID(id)
}

func (s *CatalogService) MenusOf(restID uint) ([]entity.Menu, error) {
	return s.Menus.FindByRestaurant(restID)
}

func (s *CatalogService) ActiveCampaigns() ([]entity.Campaign, error) {
	return s.Campaigns.FindActive(time.Now())
}
