package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/respond"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "AuthHandler.Login")
	defer span.End()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}

	res, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    res.User,
		"token":   res.Token,
		"message": "User successfully Logged in!",
	})
}
