package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/victorjanco1992/despensa-app/internal/dto"
	"github.com/victorjanco1992/despensa-app/internal/infra"
	"github.com/victorjanco1992/despensa-app/internal/model"
	"github.com/victorjanco1992/despensa-app/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PaymentSearcher is the slice of the Mercado Pago client the sync needs.
type PaymentSearcher interface {
	SearchApproved(ctx context.Context, windowDays int) ([]infra.MPPayment, error)
}

// TransferenciaService lists imported payments and runs the reconciliation.
type TransferenciaService interface {
	Listar(ctx context.Context, filter dto.TransferenciaFilter) (*dto.TransferenciaListResponse, error)
	// Sincronizar pulls approved payments from Mercado Pago and inserts the
	// ones not yet imported. Records are processed sequentially so the
	// de-dup check stays consistent; one bad record never aborts the batch.
	Sincronizar(ctx context.Context) (*dto.SincronizarResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

const (
	syncLockKey = "despensa:sync:lock"
	syncLockTTL = 2 * time.Minute
)

type transferenciaService struct {
	repo       repository.TransferenciaRepository
	mp         PaymentSearcher
	breaker    *infra.CircuitBreaker
	rdb        *redis.Client
	windowDays int
	tokenOK    bool
}

func NewTransferenciaService(
	repo repository.TransferenciaRepository,
	mp PaymentSearcher,
	breaker *infra.CircuitBreaker,
	rdb *redis.Client,
	windowDays int,
	tokenConfigurado bool,
) TransferenciaService {
	return &transferenciaService{
		repo:       repo,
		mp:         mp,
		breaker:    breaker,
		rdb:        rdb,
		windowDays: windowDays,
		tokenOK:    tokenConfigurado,
	}
}

func (s *transferenciaService) Listar(ctx context.Context, filter dto.TransferenciaFilter) (*dto.TransferenciaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	transferencias, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransferenciaResponse, 0, len(transferencias))
	for i := range transferencias {
		t := &transferencias[i]
		items = append(items, dto.TransferenciaResponse{
			ID:            t.ID.String(),
			Nombre:        t.Nombre,
			Monto:         t.Monto,
			FechaHora:     t.FechaHora.Format("2006-01-02T15:04:05Z"),
			Observaciones: t.Observaciones,
			Fuente:        t.Fuente,
		})
	}
	return &dto.TransferenciaListResponse{
		Transferencias: items,
		Total:          total,
		Page:           filter.Page,
		TotalPages:     int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *transferenciaService) Sincronizar(ctx context.Context) (*dto.SincronizarResponse, error) {
	if !s.tokenOK {
		return nil, ErrTokenNoConfigurado
	}

	// Best-effort mutual exclusion: the transferencias table carries a
	// unique index on mp_id, but overlapping runs would still race the
	// exists-check and spam the upstream API.
	if s.rdb != nil {
		ok, err := s.rdb.SetNX(ctx, syncLockKey, time.Now().Unix(), syncLockTTL).Result()
		if err == nil && !ok {
			return nil, ErrSyncEnCurso
		}
		defer s.rdb.Del(context.Background(), syncLockKey)
	}

	var pagos []infra.MPPayment
	err := s.breaker.Execute(func() error {
		var searchErr error
		pagos, searchErr = s.mp.SearchApproved(ctx, s.windowDays)
		return searchErr
	})
	if err != nil {
		return nil, err
	}

	nuevas := 0
	for i := range pagos {
		pago := &pagos[i]
		mpID := fmt.Sprintf("%d", pago.ID)

		existe, err := s.repo.ExistsByMPID(ctx, mpID)
		if err != nil {
			log.Error().Err(err).Str("mp_id", mpID).Msg("sync: fallo el chequeo de duplicado")
			continue
		}
		if existe {
			continue
		}

		t := buildTransferencia(pago, mpID)
		if err := s.repo.Create(ctx, t); err != nil {
			// Partial success is expected: log and keep going.
			log.Error().Err(err).Str("mp_id", mpID).Msg("sync: fallo el insert")
			continue
		}
		nuevas++
	}

	mensaje := "Sincronización exitosa. No hay transferencias nuevas"
	if nuevas > 0 {
		mensaje = fmt.Sprintf("Sincronización exitosa. %d transferencias nuevas", nuevas)
	}
	log.Info().Int("total", len(pagos)).Int("nuevas", nuevas).Msg("sync completado")
	return &dto.SincronizarResponse{
		Success: true,
		Mensaje: mensaje,
		Total:   len(pagos),
		Nuevas:  nuevas,
	}, nil
}

func (s *transferenciaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNoEncontrado
	}
	return nil
}

func buildTransferencia(pago *infra.MPPayment, mpID string) *model.Transferencia {
	nombre := derivarNombre(pago)
	fuente := clasificarFuente(pago)

	fecha := pago.DateCreated
	if pago.DateApproved != nil {
		fecha = *pago.DateApproved
	}

	desc := pago.Description
	if desc == "" {
		desc = "Sin descripción"
	}

	id := mpID
	return &model.Transferencia{
		Nombre:      nombre,
		Monto:       decimal.NewFromFloat(pago.TransactionAmount).Round(2),
		FechaHora:   fecha,
		MPID:        &id,
		Fuente:      fuente,
		Descripcion: pago.Description,
		Metodo:      pago.PaymentMethodID,
		Tipo:        pago.PaymentTypeID,
		Observaciones: fmt.Sprintf("FUENTE:%s|MP_ID:%s|DESC:%s|METODO:%s|TIPO:%s",
			fuente, mpID, desc, pago.PaymentMethodID, pago.PaymentTypeID),
	}
}

// derivarNombre walks an ordered fallback chain over the payment's payer
// fields until something usable appears.
func derivarNombre(pago *infra.MPPayment) string {
	if n := nombreCompleto(pago.Payer); n != "" {
		return n
	}
	if pago.Payer.Email != "" {
		local := strings.SplitN(pago.Payer.Email, "@", 2)[0]
		if local != "" {
			return local
		}
	}
	if n := nombreCompleto(pago.AdditionalInfo.Payer); n != "" {
		return n
	}
	// A payer reference id is only meaningful when long enough to not be a
	// row counter.
	if len(pago.Payer.ID) >= 8 {
		return pago.Payer.ID
	}
	if pago.Description != "" {
		return pago.Description
	}
	if meta, ok := pago.Metadata["payer_name"].(string); ok && meta != "" {
		return meta
	}
	return model.FuenteDesconocido
}

func nombreCompleto(p infra.MPPayer) string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return ""
	}
}

// clasificarFuente maps the payment method/type codes to the coarse source
// labels the frontend renders. Order matters: bank transfers first, then the
// account_money split, cards, QR, Point, and finally the raw method code.
func clasificarFuente(pago *infra.MPPayment) string {
	metodo := strings.ToLower(pago.PaymentMethodID)
	tipo := strings.ToLower(pago.PaymentTypeID)

	switch {
	case tipo == "bank_transfer" || metodo == "cvu" || metodo == "debin_transfer" || metodo == "ted":
		return model.FuenteTransferencia
	case metodo == "account_money":
		desc := strings.ToLower(pago.Description)
		if strings.Contains(desc, "alias") {
			return model.FuenteTransferenciaAlias
		}
		return model.FuenteTransferencia
	case tipo == "debit_card":
		return model.FuenteTarjetaDebito
	case tipo == "credit_card":
		return model.FuenteTarjetaCredito
	case strings.Contains(metodo, "qr") || strings.ToLower(pago.OperationType) == "qr":
		return model.FuenteQR
	case strings.EqualFold(pago.PointOfInteraction.Type, "POINT") || tipo == "pos":
		return model.FuentePoint
	case metodo != "":
		return strings.ToUpper(metodo)
	default:
		return model.FuenteDesconocido
	}
}
