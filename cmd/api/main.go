package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"gamevault/internal/cache"
	"gamevault/internal/config"
	"gamevault/internal/database"
	"gamevault/internal/middleware"
	"gamevault/internal/modules/auth"
	"gamevault/internal/modules/favorite"
	"gamevault/internal/modules/games"
	"gamevault/internal/modules/rating"
	jwtsvc "gamevault/internal/pkg/jwt"
	"gamevault/internal/rawg"
	"gamevault/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	catalogCache := cache.New(time.Minute)
	defer catalogCache.Close()

	catalogClient := rawg.NewClient(rawg.Config{
		BaseURL: cfg.RawgBaseURL,
		APIKey:  cfg.RawgAPIKey,
		Timeout: cfg.RawgTimeout,
	})

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	gamesService := games.NewService(catalogClient, catalogCache, gameRepo, cfg.CacheTTL)
	gamesHandler := games.NewHandler(gamesService)

	favoriteService := favorite.NewService(favoriteRepo, gameRepo, catalogClient)
	favoriteHandler := favorite.NewHandler(favoriteService)

	ratingService := rating.NewService(favoriteRepo)
	ratingHandler := rating.NewHandler(ratingService)

	r := gin.Default()
	r.Use(middleware.RequestID(), middleware.CORS(), middleware.ErrorLogger())

	// public
	authHandler.RegisterPublicRoutes(&r.RouterGroup)

	gamesGroup := r.Group("/games")
	gamesGroup.Use(middleware.RateLimit(cfg.RatePerMinute))
	gamesHandler.RegisterRoutes(gamesGroup)

	// protected
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(j))
	{
		authHandler.RegisterProtectedRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
		ratingHandler.RegisterRoutes(protected)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
