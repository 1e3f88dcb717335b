package services

import (
	"testing"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	token, err := service.GenerateToken("user-1", "Ana", 2)
	require.NoError(t, err)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, 2, claims.UserLevel)
	assert.Equal(t, "com-dominium-teste", claims.Issuer)
}

func TestExtractClaimsTokenAdulterado(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)

	token, err := service.GenerateToken("user-1", "Ana", 1)
	require.NoError(t, err)

	_, err = service.ExtractClaims(token + "x")
	assert.Error(t, err)

	_, err = service.ExtractClaims("nem-um-token")
	assert.Error(t, err)
}

func TestLoginCliente(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)
	cliente := criaCliente(t, db, "Ana")

	resultado, err := service.LoginCliente(cliente.CPF, "senha123")
	require.NoError(t, err)

	assert.Equal(t, cliente.ID, resultado.ID)
	assert.Equal(t, 1, resultado.Nivel)
	assert.NotEmpty(t, resultado.Token)

	claims, err := service.ExtractClaims(resultado.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserLevel)
}

func TestLoginClienteCredenciaisInvalidas(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)
	cliente := criaCliente(t, db, "Ana")

	_, err := service.LoginCliente(cliente.CPF, "senha-errada")
	assert.ErrorIs(t, err, ErrCredenciaisInvalido)

	_, err = service.LoginCliente("99999999999", "senha123")
	assert.ErrorIs(t, err, ErrCredenciaisInvalido)
}

func TestLoginClienteContaDesativada(t *testing.T) {
	db := setupTestDB(t)
	service := NewJWTService(testConfig(), db)
	cliente := criaCliente(t, db, "Ana")

	require.NoError(t, db.Model(&models.Cliente{}).
		Where("id = ?", cliente.ID).Update("ativo", false).Error)

	// Mesma resposta de credenciais inválidas, sem vazar o motivo
	_, err := service.LoginCliente(cliente.CPF, "senha123")
	assert.ErrorIs(t, err, ErrCredenciaisInvalido)
}

func TestLoginAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	admins := NewAdminService(db, cfg)
	service := NewJWTService(cfg, db)

	require.NoError(t, admins.EnsureDefaultAdmin())

	resultado, err := service.LoginAdmin(cfg.DefaultAdminCPF, cfg.DefaultAdminPassword)
	require.NoError(t, err)
	assert.Equal(t, 5, resultado.Nivel)

	_, err = service.LoginAdmin(cfg.DefaultAdminCPF, "senha-errada")
	assert.ErrorIs(t, err, ErrCredenciaisInvalido)
}
