// Package supabase cliente mínimo del API REST (PostgREST) de Supabase usado para el auto-test de conexión.
package supabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/system"
	"github.com/jhoicas/chipaflow-api/pkg/config"
)

// codeNoRows PostgREST devuelve este código cuando la consulta no trae filas; la conexión está bien.
const codeNoRows = "PGRST116"

var _ system.CloudProbe = (*Client)(nil)

// Client implementación resty de system.CloudProbe.
type Client struct {
	httpClient *resty.Client
}

// NewClient construye el cliente con la URL y la anon key del proyecto.
func NewClient(cfg config.SupabaseConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.URL, "/")).
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AnonKey)).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{httpClient: restyClient}
}

// apiError cuerpo de error de PostgREST.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Ping consulta users?select=count&limit=1. 2xx o PGRST116 = conectado.
func (c *Client) Ping(ctx context.Context) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select": "count",
			"limit":  "1",
		}).
		SetError(apiErr).
		Get("/rest/v1/users")
	if err != nil {
		return fmt.Errorf("supabase ping: %w", err)
	}
	if resp.IsSuccess() {
		return nil
	}
	if apiErr.Code == codeNoRows {
		return nil
	}
	if apiErr.Message != "" {
		return fmt.Errorf("supabase api error: status=%d, code=%s, message=%s", resp.StatusCode(), apiErr.Code, apiErr.Message)
	}
	return fmt.Errorf("supabase api error: status=%d", resp.StatusCode())
}
