package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/pkg/resp"
	"github.com/yunusinal/lezzetlimani-sub001/services"
)

type CampaignController struct {
	Catalog *services.CatalogService
}

func NewCampaignController(catalog *services.CatalogService) *CampaignController {
	return &CampaignController{Catalog: catalog}
}

type CampaignResponse struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Detail        string `json:"detail"`
	Picture       string `json:"picture"`
	DiscountLabel string `json:"discountLabel,omitempty"`
}

// GET /campaigns
func (h *CampaignController) List(c *gin.Context) {
	camps, err := h.Catalog.ActiveCampaigns()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]CampaignResponse, 0, len(camps))
	for i := range camps {
		items = append(items, mapToCampaignResponse(&camps[i]))
	}
	resp.OK(c, gin.H{"items": items})
}

func mapToCampaignResponse(cp *entity.Campaign) CampaignResponse {
	out := CampaignResponse{
		ID:      cp.ID,
		Title:   cp.Title,
		Detail:  cp.Detail,
		Picture: cp.Picture,
	}
	if cp.DiscountRule != nil {
		out.DiscountLabel = cp.DiscountRule.Label
	}
	return out
}
