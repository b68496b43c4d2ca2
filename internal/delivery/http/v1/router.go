package v1

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"placement-portal-backend/config"
	"placement-portal-backend/internal/delivery/http/middleware"
	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/security"
	"placement-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	ProfileUC          domain.ProfileUsecase
	StudentRecordUC    domain.StudentRecordUsecase
	RecruiterProfileUC domain.RecruiterProfileUsecase
	JobUC              domain.JobUsecase
	ApplicationUC      domain.ApplicationUsecase
	ScreeningUC        domain.ScreeningUsecase
	DirectoryUC        domain.StudentDirectoryUsecase
	HealthUC           domain.HealthUsecase
	// Redis returns the shared client; nil means rate limits are kept in memory
	Redis  func() *goredis.Client
	Config *config.Config
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// CORS must be first so preflights never hit the rate limiter
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins, cfg.IsProduction()))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler(cfg.ExposeInternalErrors))

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window, deps.Redis)))

	api.GET("/health", healthHandler(deps.HealthUC))
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMW := middleware.AuthMiddleware(deps.AuthUC)

	authLimited := api.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(cfg.RateLimitAuthThreshold, window, deps.Redis)))
	NewAuthHandler(authLimited, authMW, deps.AuthUC, cfg.IsProduction())

	protected := api.Group("")
	protected.Use(authMW)
	{
		uploads := security.NewUploadLimiter(cfg.UploadsPerMinute, cfg.UploadsPerDay, deps.Redis)
		NewProfileHandler(protected, deps.ProfileUC, cfg.MaxPictureBytes, middleware.UploadLimit(uploads))
		NewStudentRecordHandler(protected, deps.StudentRecordUC)
	}

	recruiter := protected.Group("/recruiter")
	recruiter.Use(middleware.RequireRecruiter())
	{
		NewRecruiterProfileHandler(recruiter, deps.RecruiterProfileUC)
		NewJobHandler(recruiter, deps.JobUC)
		NewApplicationHandler(recruiter, deps.ApplicationUC)
		NewScreeningHandler(recruiter, deps.ScreeningUC)
		NewStudentDirectoryHandler(recruiter, deps.DirectoryUC)
	}

	r.NoRoute(spaFallback(cfg.StaticDir))

	return r
}

// spaFallback serves the built frontend for every non-API path.
func spaFallback(staticDir string) gin.HandlerFunc {
	root, _ := filepath.Abs(staticDir)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "API route not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		file := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+path)))
		if strings.HasPrefix(file, root) {
			if serveStatic(c, file) {
				return
			}
		}

		if !serveStatic(c, filepath.Join(root, "index.html")) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		}
	}
}

// serveStatic writes a regular file without consulting the request path,
// which http.ServeFile would reject when it contains "..".
func serveStatic(c *gin.Context, file string) bool {
	f, err := os.Open(file)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
