package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController exposes the social-login surface. Both endpoints exist
// in the original system but were never implemented; they answer 501 so
// clients get a stable contract instead of a missing route.
type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

func (c *UserController) GetClientID(ctx *gin.Context) {
	ctx.JSON(http.StatusNotImplemented, gin.H{"error": "not implemented"})
}

func (c *UserController) RegisterOrLogin(ctx *gin.Context) {
	type SignUpOrInRequest struct {
		IDToken string `json:"id_token" binding:"required"`
	}
	var req SignUpOrInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ctx.JSON(http.StatusNotImplemented, gin.H{"error": "not implemented"})
}
