package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/soundshelf/soundshelf-api/internal/app/services/auth"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/respond"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "AuthHandler.Register")
	defer span.End()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}

	user, err := h.authService.Register(ctx, appauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	h.logger.WithField("user_id", user.ID).Info("User registered")
	c.JSON(http.StatusCreated, gin.H{"message": "User was created successfully!"})
}
