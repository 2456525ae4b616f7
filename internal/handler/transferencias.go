package handler

import (
	"errors"
	"net/http"

	"github.com/victorjanco1992/despensa-app/internal/apierror"
	"github.com/victorjanco1992/despensa-app/internal/config"
	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransferenciasHandler struct {
	svc service.TransferenciaService
	cfg *config.Config
}

func NewTransferenciasHandler(svc service.TransferenciaService, cfg *config.Config) *TransferenciasHandler {
	return &TransferenciasHandler{svc: svc, cfg: cfg}
}

func (h *TransferenciasHandler) Listar(c *gin.Context) {
	var filter dto.TransferenciaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Sincronizar triggers the Mercado Pago reconciliation job. Upstream
// failures propagate their HTTP status; a missing token is a 400.
func (h *TransferenciasHandler) Sincronizar(c *gin.Context) {
	resp, err := h.svc.Sincronizar(c.Request.Context())
	if err != nil {
		var upstream *apierror.UpstreamError
		switch {
		case errors.Is(err, service.ErrTokenNoConfigurado):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Token de Mercado Pago no configurado",
				"mensaje": "Configura MERCADOPAGO_ACCESS_TOKEN en el archivo .env",
			})
		case errors.Is(err, service.ErrSyncEnCurso):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.As(err, &upstream):
			c.JSON(upstream.Status, gin.H{
				"error":   upstream.Mensaje(),
				"mensaje": upstream.Error(),
				"status":  upstream.Status,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Error al sincronizar con Mercado Pago",
				"mensaje": err.Error(),
			})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerificarConfig reports whether a Mercado Pago token is configured,
// masking all but the token prefix.
func (h *TransferenciasHandler) VerificarConfig(c *gin.Context) {
	token := h.cfg.MPAccessToken
	resp := dto.VerificarConfigResponse{
		TokenConfigurado: h.cfg.TokenConfigurado(),
		LongitudToken:    len(token),
		InicioToken:      "No configurado",
	}
	if resp.TokenConfigurado && len(token) > 15 {
		resp.InicioToken = token[:15] + "..."
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransferenciasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if service.IsNotFound(err) {
			c.JSON(http.StatusNotFound, apierror.New("Transferencia no encontrada"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Transferencia eliminada"})
}
