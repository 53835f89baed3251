package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dermatosalud/reportes-backend/internal/auth/services"
	"github.com/dermatosalud/reportes-backend/pkg/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Email and Password are required",
			"data":    nil,
		})
	}

	user, err := ac.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Invalid email or password",
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(
		user.ID,
		user.Nombre,
		user.Email,
		[]string{user.Role},
		time.Now().Add(12*time.Hour),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Failed to generate token: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login successful",
		"data": map[string]interface{}{
			"id":     user.ID,
			"nombre": user.Nombre,
			"email":  user.Email,
			"role":   user.Role,
			"token":  token,
		},
	})
}
