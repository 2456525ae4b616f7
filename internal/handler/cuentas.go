package handler

import (
	"net/http"

	"github.com/victorjanco1992/despensa-app/internal/apierror"
	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CuentasHandler struct{ svc service.CuentaService }

func NewCuentasHandler(svc service.CuentaService) *CuentasHandler {
	return &CuentasHandler{svc: svc}
}

func (h *CuentasHandler) Listar(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), clienteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CuentasHandler) AgregarItem(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarItem(c.Request.Context(), req)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CuentasHandler) AgregarSuelto(c *gin.Context) {
	var req dto.AgregarSueltoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarSuelto(c.Request.Context(), req)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CuentasHandler) ActualizarPrecios(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	cambios, err := h.svc.ActualizarPrecios(c.Request.Context(), clienteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.ActualizarPreciosResponse{
		Mensaje: "Precios actualizados",
		Cambios: cambios,
	})
}

func (h *CuentasHandler) Cancelar(c *gin.Context) {
	clienteID, err := uuid.Parse(c.Param("clienteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	eliminados, err := h.svc.Cancelar(c.Request.Context(), clienteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.CancelarCuentaResponse{
		Mensaje:         "Cuenta cancelada",
		ItemsEliminados: eliminados,
	})
}

func (h *CuentasHandler) EliminarItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.EliminarItem(c.Request.Context(), id); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Item eliminado"})
}
