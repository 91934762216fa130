package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yunusinal/lezzetlimani-sub001/pkg/resp"
	"github.com/yunusinal/lezzetlimani-sub001/services"
	"github.com/yunusinal/lezzetlimani-sub001/utils"
)

type FavoriteController struct {
	Favorites *services.FavoriteService
	Catalog   CartCatalog
}

func NewFavoriteController(svc *services.FavoriteService, catalog CartCatalog) *FavoriteController {
	return &FavoriteController{Favorites: svc, Catalog: catalog}
}

// GET /favorites
func (h *FavoriteController) List(c *gin.Context) {
	ids, err := h.Favorites.List(c.Request.Context(), utils.CurrentSession(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if ids == nil {
		ids = []uint{}
	}
	resp.OK(c, gin.H{"ids": ids})
}

// PUT /favorites/:id — a flip, not an idempotent set; two calls cancel.
func (h *FavoriteController) Toggle(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := h.Catalog.Restaurant(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	fav, err := h.Favorites.Toggle(c.Request.Context(), utils.CurrentSession(c), rest)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": rest.ID, "favorite": fav})
}
