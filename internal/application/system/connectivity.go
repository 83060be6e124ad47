// Package system auto-tests de dependencias externas expuestos al painel.
package system

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
)

// CloudProbe verifica la conexión con el almacén externo.
type CloudProbe interface {
	Ping(ctx context.Context) error
}

// CloudCheck ejecuta el auto-test de conexión. Los errores nunca se propagan:
// se convierten en Connected=false y un mensaje.
type CloudCheck struct {
	probe  CloudProbe
	url    string
	hasKey bool
	log    zerolog.Logger
}

// NewCloudCheck construye el chequeo. probe es nil cuando faltan URL o clave.
func NewCloudCheck(probe CloudProbe, url string, hasKey bool, log zerolog.Logger) *CloudCheck {
	return &CloudCheck{probe: probe, url: url, hasKey: hasKey, log: log}
}

// Run ejecuta el ping y arma la respuesta.
func (c *CloudCheck) Run(ctx context.Context) dto.CloudCheckResponse {
	out := dto.CloudCheckResponse{
		Configured:       c.probe != nil,
		URL:              c.url,
		APIKeyConfigured: c.hasKey,
	}
	switch {
	case c.url == "":
		out.Message = "❌ URL do Supabase não configurada"
		return out
	case !c.hasKey:
		out.Message = "❌ API Key não encontrada"
		return out
	case c.probe == nil:
		out.Message = "❌ Supabase não configurado"
		return out
	}

	if err := c.probe.Ping(ctx); err != nil {
		c.log.Warn().Err(err).Str("url", c.url).Msg("falha no teste de conexão com o Supabase")
		out.Message = "❌ Erro de conexão: " + err.Error()
		return out
	}
	out.Connected = true
	out.Message = "✅ Supabase conectado com sucesso!"
	return out
}
