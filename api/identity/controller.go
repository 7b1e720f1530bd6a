package identity

import (
	"net/http"

	"github.com/beka-birhanu/vinom-tilt/service"
	"github.com/beka-birhanu/vinom-tilt/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to session tokens.
type IdentityServer struct {
	authService i.SessionAuthenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.SessionAuthenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/refresh", c.refresh)
	}
}

// refresh issues a fresh token for the session of the presented one.
func (c *IdentityServer) refresh(ctx *gin.Context) {
	claims, ok := Claims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	sessionID, err := service.SessionFromClaims(claims)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := c.authService.Issue(sessionID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing token"})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}
