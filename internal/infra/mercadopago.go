package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/victorjanco1992/despensa-app/internal/apierror"
)

// MPPayer is the payer block of a Mercado Pago payment. The same shape
// appears nested under additional_info.
type MPPayer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// MPPayment is one approved payment as returned by /v1/payments/search.
// Only the fields the reconciliation inspects are mapped.
type MPPayment struct {
	ID                int64      `json:"id"`
	Description       string     `json:"description"`
	TransactionAmount float64    `json:"transaction_amount"`
	DateApproved      *time.Time `json:"date_approved"`
	DateCreated       time.Time  `json:"date_created"`
	PaymentMethodID   string     `json:"payment_method_id"`
	PaymentTypeID     string     `json:"payment_type_id"`
	OperationType     string     `json:"operation_type"`

	PointOfInteraction struct {
		Type string `json:"type"`
	} `json:"point_of_interaction"`

	Payer          MPPayer `json:"payer"`
	AdditionalInfo struct {
		Payer MPPayer `json:"payer"`
	} `json:"additional_info"`
	Metadata map[string]interface{} `json:"metadata"`
}

type mpSearchResponse struct {
	Results []MPPayment `json:"results"`
}

// MercadoPagoClient talks to the Mercado Pago payments API. It is the only
// outbound dependency of the backend; failures here must never corrupt local
// state, so the client is read-only by construction.
type MercadoPagoClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewMercadoPagoClient(baseURL, accessToken string) *MercadoPagoClient {
	return &MercadoPagoClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchApproved fetches approved payments created within the trailing
// windowDays window, newest first. Non-2xx responses surface as
// *apierror.UpstreamError carrying the upstream status and body.
func (c *MercadoPagoClient) SearchApproved(ctx context.Context, windowDays int) ([]MPPayment, error) {
	url := fmt.Sprintf(
		"%s/v1/payments/search?sort=date_created&criteria=desc&range=date_created&begin_date=NOW-%dDAYS&end_date=NOW&status=approved",
		c.baseURL, windowDays,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &apierror.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var result mpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("mercadopago: decode response: %w", err)
	}
	return result.Results, nil
}
