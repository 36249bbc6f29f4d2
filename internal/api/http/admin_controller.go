package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkroom/backend/internal/repository"
	"github.com/checkroom/backend/internal/service"
)

type AdminController struct {
	admins service.AdminInteractor
}

func NewAdminController(admins service.AdminInteractor) *AdminController {
	return &AdminController{admins: admins}
}

func (c *AdminController) Login(ctx *gin.Context) {
	type LoginRequest struct {
		AdminID  string `json:"admin_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	token, err := c.admins.Login(ctx.Request.Context(), req.AdminID, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, repository.ErrAdminNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrInvalidCredentials):
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
