package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chargemesh/cms-admin-api/internal/api/handler"
	"github.com/chargemesh/cms-admin-api/internal/core/service"
	mongodb "github.com/chargemesh/cms-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/chargemesh/cms-admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are injected; nothing here owns a connection lifecycle.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cms"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	resellerRepo := mongodb.NewResellerRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	associationRepo := mongodb.NewAssociationRepository(db)
	chargerRepo := mongodb.NewChargerRepository(db)
	roleCache := redisdb.NewRoleCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, resellerRepo, jwtSecret, 24*time.Hour, log)
	profileService := service.NewProfileService(userRepo, associationRepo, log)
	userService := service.NewUserService(userRepo, roleRepo, resellerRepo, clientRepo, associationRepo, roleCache, log)
	chargerService := service.NewChargerService(chargerRepo, log)
	membershipService := service.NewMembershipService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	userHandler := handler.NewUserHandler(userService)
	chargerHandler := handler.NewChargerHandler(chargerService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	clientHandler := handler.NewClientHandler(clientService)

	// --- Auth ---
	e.POST("/CheckLoginCredentials", authHandler.CheckLoginCredentials)

	// --- Profile ---
	e.POST("/FetchUserProfile", profileHandler.FetchUserProfile)
	e.POST("/UpdateUserProfile", profileHandler.UpdateUserProfile)
	e.POST("/UpdateAssociationProfile", profileHandler.UpdateAssociationProfile)

	// --- User management ---
	e.GET("/FetchUsers", userHandler.FetchUsers)
	e.GET("/FetchSpecificUserRoleForSelection", userHandler.FetchSpecificUserRoleForSelection)
	e.POST("/CreateUser", userHandler.CreateUser)
	e.POST("/UpdateUser", userHandler.UpdateUser)
	e.POST("/DeActivateUser", userHandler.DeActivateUser)

	// --- Charger management ---
	e.POST("/FetchAllocatedChargerByClientToAssociation", chargerHandler.FetchAllocatedChargerByClientToAssociation)
	e.POST("/UpdateDevice", chargerHandler.UpdateDevice)
	e.POST("/DeActivateOrActivateCharger", chargerHandler.DeActivateOrActivateCharger)

	// --- Wallet ---
	e.POST("/FetchCommissionAmtAssociation", profileHandler.FetchCommissionAmtAssociation)

	// --- Association membership ---
	e.GET("/FetchUsersWithSpecificRolesToAssgin", membershipHandler.FetchUsersWithSpecificRolesToAssgin)
	e.POST("/AddUserToAssociation", membershipHandler.AddUserToAssociation)
	e.POST("/FetchUsersWithSpecificRolesToUnAssgin", membershipHandler.FetchUsersWithSpecificRolesToUnAssgin)
	e.POST("/RemoveUserFromAssociation", membershipHandler.RemoveUserFromAssociation)

	// --- Client management ---
	e.POST("/FetchAllClients", clientHandler.FetchAllClients)
	e.POST("/AddNewClient", clientHandler.AddNewClient)
	e.POST("/UpdateClient", clientHandler.UpdateClient)
	e.POST("/DeActivateClient", clientHandler.DeActivateClient)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
