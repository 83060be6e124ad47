package system_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/chipaflow-api/internal/application/system"
)

type probeFunc func(ctx context.Context) error

func (f probeFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestRun_Conectado(t *testing.T) {
	c := system.NewCloudCheck(probeFunc(func(context.Context) error { return nil }), "https://x.supabase.co", true, zerolog.Nop())
	res := c.Run(context.Background())
	assert.True(t, res.Configured)
	assert.True(t, res.Connected)
	assert.Equal(t, "✅ Supabase conectado com sucesso!", res.Message)
}

func TestRun_ErrorSeConvierteEnMensaje(t *testing.T) {
	c := system.NewCloudCheck(probeFunc(func(context.Context) error { return errors.New("timeout") }), "https://x.supabase.co", true, zerolog.Nop())
	res := c.Run(context.Background())
	assert.False(t, res.Connected)
	assert.Equal(t, "❌ Erro de conexão: timeout", res.Message)
}

func TestRun_SinConfigurar(t *testing.T) {
	res := system.NewCloudCheck(nil, "https://x.supabase.co", false, zerolog.Nop()).Run(context.Background())
	assert.False(t, res.Configured)
	assert.False(t, res.Connected)
	assert.Equal(t, "❌ API Key não encontrada", res.Message)

	res = system.NewCloudCheck(nil, "", false, zerolog.Nop()).Run(context.Background())
	assert.Equal(t, "❌ URL do Supabase não configurada", res.Message)
}
