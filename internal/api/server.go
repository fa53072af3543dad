package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/restauranthjort/hjort-api/docs"
	v1 "github.com/restauranthjort/hjort-api/internal/api/handler/v1"
	"github.com/restauranthjort/hjort-api/internal/api/middleware"
	"github.com/restauranthjort/hjort-api/internal/cache"
	"github.com/restauranthjort/hjort-api/internal/config"
	"github.com/restauranthjort/hjort-api/internal/repository"
	"github.com/restauranthjort/hjort-api/internal/repository/dao"
	"github.com/restauranthjort/hjort-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	menuCache := s.initMenuCache()

	authHandler := s.initAuthHandler(db)
	courseMenuHandler := s.initCourseMenuHandler(db, menuCache)
	courseHandler := s.initCourseHandler(db)
	drinkMenuHandler := s.initDrinkMenuHandler(db, menuCache)
	drinkHandler := s.initDrinkHandler(db)
	reservationHandler := s.initReservationHandler(db)
	s.MountHandlers(authHandler, courseMenuHandler, courseHandler, drinkMenuHandler, drinkHandler, reservationHandler)

	return s
}

// initMenuCache returns nil when no Redis address is configured,
// which turns the menu services into plain pass-throughs.
func (s *Server) initMenuCache() service.MenuCache {
	if s.Config.Redis == nil || s.Config.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: s.Config.Redis.Addr,
	})
	ttl := time.Duration(s.Config.Redis.TTLSeconds) * time.Second

	return cache.NewRedisCache(client, ttl)
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdminUserDAO(db)
	repo := repository.NewAdminUserRepository(adminDAO)
	svc := service.NewAuthService(repo, s.Config.Auth)
	handler := v1.NewAuthHandler(svc)

	return handler
}

func (s *Server) initCourseMenuHandler(db *gorm.DB, menuCache service.MenuCache) *v1.CourseMenuHandler {
	menuDAO := dao.NewCourseMenuDAO(db)
	repo := repository.NewCourseMenuRepository(menuDAO)
	svc := service.NewCourseMenuService(repo, menuCache)
	handler := v1.NewCourseMenuHandler(svc)

	return handler
}

func (s *Server) initCourseHandler(db *gorm.DB) *v1.CourseHandler {
	courseDAO := dao.NewCourseDAO(db)
	repo := repository.NewCourseRepository(courseDAO)
	menuRepo := repository.NewCourseMenuRepository(dao.NewCourseMenuDAO(db))
	svc := service.NewCourseService(repo, menuRepo)
	handler := v1.NewCourseHandler(svc)

	return handler
}

func (s *Server) initDrinkMenuHandler(db *gorm.DB, menuCache service.MenuCache) *v1.DrinkMenuHandler {
	menuDAO := dao.NewDrinkMenuDAO(db)
	repo := repository.NewDrinkMenuRepository(menuDAO)
	svc := service.NewDrinkMenuService(repo, menuCache)
	handler := v1.NewDrinkMenuHandler(svc)

	return handler
}

func (s *Server) initDrinkHandler(db *gorm.DB) *v1.DrinkHandler {
	drinkDAO := dao.NewDrinkDAO(db)
	repo := repository.NewDrinkRepository(drinkDAO)
	menuRepo := repository.NewDrinkMenuRepository(dao.NewDrinkMenuDAO(db))
	svc := service.NewDrinkService(repo, menuRepo)
	handler := v1.NewDrinkHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	reservationDAO := dao.NewReservationDAO(db)
	repo := repository.NewReservationRepository(reservationDAO)
	svc := service.NewReservationService(repo)
	handler := v1.NewReservationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	courseMenuHandler *v1.CourseMenuHandler,
	courseHandler *v1.CourseHandler,
	drinkMenuHandler *v1.DrinkMenuHandler,
	drinkHandler *v1.DrinkHandler,
	reservationHandler *v1.ReservationHandler,
) {
	const basePath = "/api"

	public := s.Router.Group(basePath + "/public")
	{
		public.GET("/course-menu", courseMenuHandler.HandleGetCourseMenus)
		public.GET("/course/:courseMenuID", courseHandler.HandleGetCoursesByCourseMenuID)
		public.GET("/drink-menu", drinkMenuHandler.HandleGetDrinkMenus)
		public.GET("/drink/:drinkMenuID", drinkHandler.HandleGetDrinksByDrinkMenuID)
		public.POST("/reservations", reservationHandler.HandleCreateReservation)
	}

	admin := s.Router.Group(basePath + "/admin")
	{
		admin.POST("/login", authHandler.HandleLogin)
	}

	protected := s.Router.Group(basePath+"/protected", middleware.NewAuthenticator(s.Config.Auth).VerifyJWT())
	{
		protected.PUT("/course-menu/:id", courseMenuHandler.HandleUpdateCourseMenu)
		protected.POST("/course", courseHandler.HandleCreateCourse)
		protected.PUT("/course/:id", courseHandler.HandleUpdateCourse)
		protected.DELETE("/course/:id", courseHandler.HandleDeleteCourse)
		protected.PUT("/drink-menu/:id", drinkMenuHandler.HandleUpdateDrinkMenu)
		protected.POST("/drink", drinkHandler.HandleCreateDrink)
		protected.PUT("/drink/:id", drinkHandler.HandleUpdateDrink)
		protected.DELETE("/drink/:id", drinkHandler.HandleDeleteDrink)
		protected.GET("/reservations", reservationHandler.HandleGetReservations)
		protected.DELETE("/reservations/:id", reservationHandler.HandleDeleteReservation)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Restaurant Hjort API"
	docs.SwaggerInfo.Description = "Menus, courses, drinks and reservations for Restaurant Hjort."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
