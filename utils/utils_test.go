package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimpaCPF(t *testing.T) {
	assert.Equal(t, "12345678909", LimpaCPF("123.456.789-09"))
	assert.Equal(t, "12345678909", LimpaCPF("12345678909"))
	assert.Equal(t, "", LimpaCPF("abc.def"))
}

func TestGerarCodigoRetirada(t *testing.T) {
	codigo := GerarCodigoRetirada()
	assert.True(t, strings.HasPrefix(codigo, "ENC-"))
	assert.Len(t, codigo, 9)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	require.NoError(t, err)

	assert.NotEqual(t, "senha-secreta", hash)
	assert.True(t, CheckPasswordHash("senha-secreta", hash))
	assert.False(t, CheckPasswordHash("senha-errada", hash))
}
