package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/chipaflow-api/pkg/textutil"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "pasteis", textutil.Fold("Pastéis"))
	assert.Equal(t, "porcoes", textutil.Fold("PORÇÕES"))
	assert.Equal(t, "frigorifico local", textutil.Fold("Frigorífico Local"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("Batata Frita Grande", "frita"))
	assert.True(t, textutil.ContainsFold("Pastel de Carne", ""))
	assert.True(t, textutil.ContainsFold("Molho Especial", " ESPEC "))
	assert.True(t, textutil.ContainsFold("Pastéis", "pasteis"))
	assert.False(t, textutil.ContainsFold("Refrigerante Lata", "pastel"))
}
