package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yunusinal/lezzetlimani-sub001/configs"
	"github.com/yunusinal/lezzetlimani-sub001/controllers"
	"github.com/yunusinal/lezzetlimani-sub001/middlewares"
	"github.com/yunusinal/lezzetlimani-sub001/repository"
	"github.com/yunusinal/lezzetlimani-sub001/services"
	"github.com/yunusinal/lezzetlimani-sub001/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, kv repository.KV, hub *ws.SyncHub, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	campRepo := repository.NewCampaignRepository(db)
	cartRepo := repository.NewCartRepository(kv)
	favRepo := repository.NewFavoriteRepository(kv)

	// Services
	catalog := services.NewCatalogService(restRepo, menuRepo, campRepo)
	carts := services.NewCartService(cartRepo, hub)
	favorites := services.NewFavoriteService(favRepo, hub)

	// Controllers
	restCtrl := controllers.NewRestaurantController(catalog)
	campCtrl := controllers.NewCampaignController(catalog)
	cartCtrl := controllers.NewCartController(carts, catalog)
	favCtrl := controllers.NewFavoriteController(favorites, catalog)

	// Every route runs under a session: user when a valid token is sent,
	// guest otherwise.
	s := r.Group("/", middlewares.SessionMiddleware(cfg.JWTSecret))
	{
		// Catalog (public, read-only)
		s.GET("/restaurants", restCtrl.List)
		s.GET("/restaurants/:id", restCtrl.Detail)
		s.GET("/campaigns", campCtrl.List)

		// Cart
		s.GET("/cart", cartCtrl.Get)
		s.GET("/cart/summary", cartCtrl.Summary)
		s.POST("/cart/items", cartCtrl.Add)
		s.PATCH("/cart/items/:lineId", cartCtrl.UpdateQty)
		s.DELETE("/cart/items/:lineId", cartCtrl.RemoveItem)
		s.DELETE("/cart", cartCtrl.Clear)

		// Favorites
		s.GET("/favorites", favCtrl.List)
		s.PUT("/favorites/:id", favCtrl.Toggle)

		// Checkout handoff is deferred until login.
		s.POST("/checkout", middlewares.RequireUser(), cartCtrl.Checkout)

		// Cross-tab sync notifications
		s.GET("/ws/sync", hub.Handle)
	}
}
