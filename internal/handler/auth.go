package handler

import (
	"net/http"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ auth service.Authenticator }

func NewAuthHandler(auth service.Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login checks the shared admin secret. No token is issued; the client
// keeps its own logged-in flag.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if !h.auth.Validar(req.Password) {
		c.JSON(http.StatusUnauthorized, dto.LoginResponse{Success: false, Mensaje: "Contraseña incorrecta"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Mensaje: "Login exitoso"})
}
