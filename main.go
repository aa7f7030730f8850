package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcode-github/property_listing_app/cache"
	"github.com/dcode-github/property_listing_app/config"
	"github.com/dcode-github/property_listing_app/controllers"
	"github.com/dcode-github/property_listing_app/repository"
	"github.com/dcode-github/property_listing_app/routes"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/dcode-github/property_listing_app/views"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupRouter(cfg config.Config, client *mongo.Client, store cache.Store) (*mux.Router, error) {
	templates, err := views.New()
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.DBName)
	deps := &controllers.Deps{
		Users:          repository.NewUserRepository(db),
		Properties:     repository.NewCachedPropertyRepository(repository.NewPropertyRepository(db), store, cfg.CacheTTL),
		Types:          repository.NewCachedTypeRepository(repository.NewTypeRepository(db), store, cfg.CacheTTL),
		Views:          templates,
		EditOwnership:  controllers.ParseOwnershipPolicy(cfg.EditOwnership),
		StrictListings: cfg.StrictListings,
	}

	router := mux.NewRouter()
	routes.Routes(router, deps, utils.NewSessionStore(cfg.SecretKey, cfg.SecureCookies))
	return router, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	config.EnsureIndexes(context.Background(), client.Database(cfg.DBName))

	redisClient := config.InitRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router, err := setupRouter(cfg, client, cache.New(redisClient))
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
