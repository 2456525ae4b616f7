package handler

import (
	"errors"
	"net/http"

	"github.com/victorjanco1992/despensa-app/internal/apierror"
	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDNIDuplicado) {
			c.JSON(http.StatusBadRequest, apierror.New("El DNI ya existe"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case service.IsNotFound(err):
			c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
		case errors.Is(err, service.ErrDNIDuplicado):
			c.JSON(http.StatusBadRequest, apierror.New("El DNI ya existe"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Cliente eliminado"})
}
