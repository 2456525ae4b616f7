package dto

import "github.com/shopspring/decimal"

// TransferenciaFilter is bound from the query string of GET /api/transferencias.
type TransferenciaFilter struct {
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
	Search string `form:"search"`
}

type TransferenciaResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Monto         decimal.Decimal `json:"monto"`
	FechaHora     string          `json:"fecha_hora"`
	Observaciones string          `json:"observaciones"`
	Fuente        string          `json:"fuente"`
}

type TransferenciaListResponse struct {
	Transferencias []TransferenciaResponse `json:"transferencias"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	TotalPages     int                     `json:"totalPages"`
}

// SincronizarResponse summarizes one sync run.
type SincronizarResponse struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
	Total   int    `json:"total"`
	Nuevas  int    `json:"nuevas"`
}

// VerificarConfigResponse is the masked token status probe.
type VerificarConfigResponse struct {
	TokenConfigurado bool   `json:"tokenConfigurado"`
	LongitudToken    int    `json:"longitudToken"`
	InicioToken      string `json:"inicioToken"`
}
