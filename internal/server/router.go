package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fittrack-be/internal/controllers"
	"fittrack-be/internal/jwt"
	"fittrack-be/internal/middleware"
	"fittrack-be/internal/models"
)

// Dependencies are the wired components the router dispatches to
type Dependencies struct {
	AuthController    *controllers.AuthController
	UserController    *controllers.UserController
	FitnessController *controllers.FitnessController
	JWTService        *jwt.JWTService
	StaticDir         string
	AllowedOrigin     string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS(deps.AllowedOrigin))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/signup", deps.AuthController.Signup)
	router.POST("/login", deps.AuthController.Login)

	// Protected routes - the acting email always comes from the token
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTService))
	{
		protected.POST("/fitness_data", deps.FitnessController.SaveEntry)
		protected.GET("/user_profile", deps.UserController.Profile)
		protected.GET("/past_data", deps.FitnessController.History)
		protected.GET("/fitness_data_summary", deps.FitnessController.Summary)
	}

	registerStatic(router, deps.StaticDir)
	return router
}

// registerStatic serves the single-page client: "/" returns index.html and any
// other unmatched GET is looked up in the same directory tree.
func registerStatic(router *gin.Engine, dir string) {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Message: "Not found"})
	}

	if dir == "" {
		router.NoRoute(notFound)
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		router.NoRoute(notFound)
		return
	}

	router.StaticFile("/", filepath.Join(dir, "index.html"))

	files := http.FileServer(gin.Dir(dir, false))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}
		target := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(target); err != nil || info.IsDir() {
			notFound(c)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}
