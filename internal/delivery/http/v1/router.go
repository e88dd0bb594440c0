package v1

import (
	"net/http"
	"path/filepath"

	"github.com/shri8977/FUTURE-FS-01/config"
	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/middleware"
	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/response"
	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/internal/usecase"
	"github.com/shri8977/FUTURE-FS-01/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ProjectUC domain.ProjectUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	release := deps.Config.IsRelease()
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, release)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware(release))
	r.Use(middleware.ErrorHandler())

	// Static site
	staticDir := deps.Config.StaticDir
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})
	r.StaticFile("/script.js", filepath.Join(staticDir, "script.js"))
	r.StaticFile("/styles.css", filepath.Join(staticDir, "styles.css"))
	r.Static("/public", staticDir)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewContactHandler(&r.RouterGroup, v1, deps.ContactUC) // Contact form (no auth required)
	NewThemeHandler(v1, release)
	NewProjectHandler(v1, deps.ProjectUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found", nil)
	})

	return r
}
