package repository

import (
	"github.com/yunusinal/lezzetlimani-sub001/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindAll returns the catalog in its curated "recommended" order (insertion
// order), which the popular sort key preserves.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Preload("DiscountRule").
		Order("restaurants.id").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Preload("DiscountRule").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
