package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/yunusinal/lezzetlimani-sub001/configs"
	"github.com/yunusinal/lezzetlimani-sub001/repository"
	"github.com/yunusinal/lezzetlimani-sub001/routes"
	"github.com/yunusinal/lezzetlimani-sub001/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// Catalog DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// Session state store (cart / favorites blobs)
	kv := repository.NewRedisKV(configs.NewRedisClient(cfg))

	// Cross-tab sync hub
	hub := ws.NewSyncHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), kv, hub, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
