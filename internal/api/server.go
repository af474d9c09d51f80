package api

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/familymap-api/docs"
	v1 "github.com/vietanh2810/familymap-api/internal/api/handler/v1"
	"github.com/vietanh2810/familymap-api/internal/api/middleware"
	"github.com/vietanh2810/familymap-api/internal/config"
	"github.com/vietanh2810/familymap-api/internal/generator"
	"github.com/vietanh2810/familymap-api/internal/generator/dataset"
	"github.com/vietanh2810/familymap-api/internal/repository"
	"github.com/vietanh2810/familymap-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	stores *repository.Factory
	gen    *generator.Generator
	tokens *service.TokenService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pool := dataset.MustLoad(rng)

	s := &Server{
		Config: conf,
		Router: engine,
		stores: repository.NewFactory(db),
		gen:    generator.New(pool, pool, rng),
		tokens: service.NewTokenService(),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	familyHandler := s.initFamilyHandler()
	personHandler := s.initPersonHandler()
	eventHandler := s.initEventHandler()
	s.MountHandlers(authHandler, familyHandler, personHandler, eventHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	svc := service.NewAuthService(s.stores, s.gen, s.tokens)
	handler := v1.NewAuthHandler(svc)

	return handler
}

func (s *Server) initFamilyHandler() *v1.FamilyHandler {
	svc := service.NewFamilyService(s.stores, s.gen)
	handler := v1.NewFamilyHandler(svc)

	return handler
}

func (s *Server) initPersonHandler() *v1.PersonHandler {
	svc := service.NewPersonService(s.stores, s.tokens)
	handler := v1.NewPersonHandler(svc)

	return handler
}

func (s *Server) initEventHandler() *v1.EventHandler {
	svc := service.NewEventService(s.stores, s.tokens)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, familyHandler *v1.FamilyHandler, personHandler *v1.PersonHandler, eventHandler *v1.EventHandler) {
	const basePath = "/api/v1"

	open := s.Router.Group(basePath)
	{
		open.POST("/user/register", authHandler.HandleRegister)
		open.POST("/user/login", authHandler.HandleLogin)
		open.POST("/fill/:username", familyHandler.HandleFill)
		open.POST("/fill/:username/:generations", familyHandler.HandleFill)
		open.POST("/load", familyHandler.HandleLoad)
		open.POST("/clear", familyHandler.HandleClear)
	}

	authed := s.Router.Group(basePath, middleware.BearerToken())
	{
		authed.GET("/person", personHandler.HandleListPeople)
		authed.GET("/person/:personID", personHandler.HandleGetPerson)
		authed.GET("/event", eventHandler.HandleListEvents)
		authed.GET("/event/:eventID", eventHandler.HandleGetEvent)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Family Map API"
	docs.SwaggerInfo.Description = "Multi-tenant genealogy service with generated ancestor data."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
