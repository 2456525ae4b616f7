package handler

import (
	"net/http"

	"github.com/victorjanco1992/despensa-app/internal/apierror"
	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListaComprasHandler struct{ svc service.ListaComprasService }

func NewListaComprasHandler(svc service.ListaComprasService) *ListaComprasHandler {
	return &ListaComprasHandler{svc: svc}
}

func (h *ListaComprasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListaComprasHandler) Agregar(c *gin.Context) {
	var req dto.AgregarListaItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), req)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ListaComprasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarListaItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListaComprasHandler) Toggle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Toggle(c.Request.Context(), id)
	if err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ListaComprasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Item no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Item eliminado"})
}

func (h *ListaComprasHandler) MarcarTodosComprados(c *gin.Context) {
	afectados, err := h.svc.MarcarTodosComprados(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.ListaBulkResponse{Mensaje: "Lista marcada como comprada", Afectados: afectados})
}

func (h *ListaComprasHandler) LimpiarComprados(c *gin.Context) {
	afectados, err := h.svc.LimpiarComprados(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.ListaBulkResponse{Mensaje: "Comprados eliminados", Afectados: afectados})
}
