package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/chipaflow-api/pkg/money"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.500,00", money.FormatBRL(decimal.NewFromInt(1500)))
	assert.Equal(t, "R$ 7,50", money.FormatBRL(decimal.RequireFromString("7.5")))
	assert.Equal(t, "-R$ 1.200,00", money.FormatBRL(decimal.NewFromInt(-1200)))
	assert.Equal(t, "R$ 0,00", money.FormatBRL(decimal.Zero))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "52,5%", money.FormatPercent(decimal.RequireFromString("52.46")))
}
