package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/soundvault/catalog-api/docs"
	"github.com/soundvault/catalog-api/internal/api/handler"
	"github.com/soundvault/catalog-api/internal/api/middleware"
	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/core/ports"
	"github.com/soundvault/catalog-api/internal/core/service"
	"github.com/soundvault/catalog-api/internal/infrastructure/config"
)

// Dependencies carries everything the router needs. Repositories are built
// in main and shared with the reseed job.
type Dependencies struct {
	Songs     ports.SongRepository
	Users     ports.UserRepository
	Predictor ports.ScorePredictor
	Scores    service.ScoreCache
	Mongo     *mongo.Database
	Redis     *redis.Client
	Config    *config.Config
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Services and handlers ---
	cfg := deps.Config
	userService := service.NewUserService(deps.Users, service.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}, deps.Logger)
	songService := service.NewSongService(deps.Songs, deps.Logger)
	recommendService := service.NewRecommendService(deps.Predictor, deps.Scores, deps.Logger)

	userHandler := handler.NewUserHandler(userService)
	songHandler := handler.NewSongHandler(songService, recommendService)

	auth := middleware.Auth(middleware.NewJWTVerifier(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience))
	adminOnly := middleware.RBAC(domain.RoleAdministrator)
	anyRole := middleware.RBAC(domain.RoleAdministrator, domain.RoleBasic)

	// --- User routes ---
	users := e.Group("/api/UserLogin")
	users.POST("/Login/:username/:password", userHandler.Login)
	users.POST("/CreateUser", userHandler.Create, auth, adminOnly)
	users.GET("/GetAllUsers", userHandler.List, auth, adminOnly)
	users.PUT("/ChangePassword/:newPassword", userHandler.ChangePassword)
	users.DELETE("/DeleteUser/:username", userHandler.Delete, auth, adminOnly)

	// --- Song routes ---
	songs := e.Group("/api/Song", auth)
	songs.POST("/CreateSong", songHandler.Create, adminOnly)
	songs.GET("/GetAllSongs", songHandler.List, anyRole)
	songs.GET("/GetSongsByTitle/:title", songHandler.ByTitle, anyRole)
	songs.GET("/GetSongsByAlbum/:album", songHandler.ByAlbum, anyRole)
	songs.GET("/GetSongsByArtist/:artist", songHandler.ByArtist, anyRole)
	songs.GET("/GetSongsByGenre/:genre", songHandler.ByGenre, anyRole)
	songs.GET("/GetSongsByReleaseYear/:releaseYear", songHandler.ByReleaseYear, anyRole)
	songs.GET("/GetSongRecommendation", songHandler.Recommendation, anyRole)
	songs.PUT("/UpdateSong", songHandler.Update, adminOnly)
	songs.DELETE("/DeleteSong/:title/:album", songHandler.Delete, adminOnly)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
