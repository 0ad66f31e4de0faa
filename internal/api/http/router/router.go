// Package router assembles the gin engine: middleware order, the CRUD
// routes, the swagger UI and the static welcome page.
package router

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/techhive/userdir/docs"
	"github.com/techhive/userdir/internal/api/http/handler"
	"github.com/techhive/userdir/internal/api/http/middleware"
	"github.com/techhive/userdir/internal/logger"
)

//go:embed welcome.html
var welcomePage []byte

// Router builds the HTTP engine for the user directory.
type Router struct {
	directory handler.UserDirectory
	token     string
	logger    *logger.Logger
}

// New creates a Router serving the given directory, guarded by the given
// shared-secret token.
func New(directory handler.UserDirectory, token string, logger *logger.Logger) *Router {
	return &Router{
		directory: directory,
		token:     token,
		logger:    logger,
	}
}

// Register wires middleware and routes and returns the engine. Middleware
// order matters: recovery wraps everything, and authentication runs before
// the request log so rejected probes surface as a single warning.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()

	recovery := middleware.NewRecover(r.logger)
	authenticate := middleware.NewAuthenticate(r.token, r.logger)
	logging := middleware.NewRequestLogger(r.logger)
	engine.Use(recovery.Handle, authenticate.Handle, logging.Handle)

	engine.GET("/", welcome)
	engine.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.registerUserRoutes(engine)

	return engine
}

func (r *Router) registerUserRoutes(engine *gin.Engine) {
	users := handler.NewUsers(r.directory, r.logger)
	engine.GET("/users", users.List)
	engine.GET("/users/:id", users.Get)
	engine.POST("/users", users.Create)
	engine.PUT("/users/:id", users.Update)
	engine.DELETE("/users/:id", users.Delete)
}

func welcome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", welcomePage)
}
