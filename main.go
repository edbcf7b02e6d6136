package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"giftwise/api/router"
	"giftwise/auth"
	"giftwise/config"
	"giftwise/db"
	_ "giftwise/docs" // swag will generate this package
	"giftwise/eventbus"
	"giftwise/logger"
	"giftwise/productsearch"
	"giftwise/quota"
	"giftwise/repositories"
	"giftwise/suggest"
)

// @title           Giftwise API
// @version         1.0
// @description     AI gift suggestions with history-aware deduplication
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	store := repositories.NewStore(db.Database())

	engineCfg := suggest.EngineConfig{
		Store:               store,
		Generator:           suggest.NewGenaiGenerator(cfg.LLM.ModelName),
		Products:            productsearch.New(),
		Quota:               quota.NewGenerationQuotaLimiterFromConfig(cfg),
		ModelName:           cfg.LLM.ModelName,
		PlaceholderPatterns: cfg.Suggestions.PlaceholderPatterns,
	}

	bus, err := eventbus.NewFromEnv()
	if err != nil {
		log.Fatal("failed to initialize Kafka producer:", err)
	}
	if bus != nil {
		defer bus.Close()
		engineCfg.Events = bus
	}

	engine := suggest.NewEngine(engineCfg)

	r := router.New(router.Deps{
		Store:      store,
		Engine:     engine,
		JWTManager: jwtManager,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
	}).Handler(r)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
