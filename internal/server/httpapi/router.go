package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/server/auth"
	"github.com/JayatheerthP/OraBank/internal/server/users"
)

// NewRouter assembles the gin engine. Signup and signin are public; profile
// and status sit behind RequireAuth. AuthContext runs on everything so an
// optional bearer token always yields a request-scoped principal.
func NewRouter(userService *users.Service, tokens *auth.TokenService, logger logging.Logger, production bool) *gin.Engine {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(AuthContext(tokens, logger))

	h := NewHttpEndpoints(userService, logger)

	api := router.Group("/api/v1/users")
	{
		api.GET("/healthz", h.healthz)
		api.POST("/signup", h.signUp)
		api.POST("/signin", h.signIn)

		authed := api.Group("")
		authed.Use(RequireAuth())
		{
			authed.GET("/user/:userId", h.getUser)
			authed.GET("/:userId/status", h.getStatus)
		}
	}

	return router
}
