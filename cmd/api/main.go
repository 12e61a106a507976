package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/SahanaNagaraju/news-agent/internal/config"
	"github.com/SahanaNagaraju/news-agent/internal/handler"
	"github.com/SahanaNagaraju/news-agent/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	cfg.Validate()

	slog.Info("starting service", "service", handler.ServiceName, "version", handler.ServiceVersion, "env", cfg.Env)

	client := news.NewNewsdataClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.ProviderTimeout)
	newsHandler := handler.NewNewsHandler(client, cfg)

	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)

	r.Use(cors.New(corsConfig))

	r.GET("/", newsHandler.GetRoot)
	r.GET("/health", newsHandler.GetHealth)
	r.GET("/api/news", newsHandler.GetNews)
	r.GET("/api/headlines", newsHandler.GetHeadlines)
	r.GET("/api/search/:topic", newsHandler.SearchByTopic)
	r.POST("/api/news/query", newsHandler.QueryNews)
	r.NoRoute(newsHandler.NotFound)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
