package repository

import (
	"time"

	"github.com/yunusinal/lezzetlimani-sub001/entity"

	"gorm.io/gorm"
)

type CampaignRepository struct{ DB *gorm.DB }

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

// FindActive returns campaigns whose window covers now. Open-ended bounds
// are nil.
func (r *CampaignRepository) FindActive(now time.Time) ([]entity.Campaign, error) {
	var camps []entity.Campaign
	err := r.DB.
		Preload("DiscountRule").
		Where("(start_at IS NULL OR start_at <= ?) AND (end_at IS NULL OR end_at >= ?)", now, now).
		Order("id").
		Find(&camps).Error
	return camps, err
}
