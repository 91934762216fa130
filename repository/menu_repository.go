package repository

import (
	"github.com/yunusinal/lezzetlimani-sub001/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) FindByRestaurant(restID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("restaurant_id = ?", restID).Order("id").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
