package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissoesPorNivel(t *testing.T) {
	// Síndico gerencia o condomínio mas não outras contas de staff
	assert.True(t, Tem(2, PermGerenciarClientes))
	assert.True(t, Tem(2, PermVerDashboard))
	assert.True(t, Tem(2, PermVerFeedGeral))
	assert.False(t, Tem(2, PermGerenciarAdmins))
	assert.False(t, Tem(2, PermVerLogs))

	// Porteiro só opera a portaria
	assert.True(t, Tem(3, PermRegistrarEncomendas))
	assert.True(t, Tem(3, PermRegistrarVisitantes))
	assert.True(t, Tem(3, PermVerFeedGeral))
	assert.False(t, Tem(3, PermGerenciarClientes))
	assert.False(t, Tem(3, PermVerDashboard))
	assert.False(t, Tem(3, PermGerenciarPagamentos))

	// Super-admin tem tudo
	assert.True(t, Tem(5, PermGerenciarAdmins))
	assert.True(t, Tem(5, PermVerLogs))
	assert.True(t, Tem(5, PermGerenciarAvisos))

	// Morador (nível 1) nunca aparece na tabela
	assert.False(t, Tem(1, PermRegistrarEncomendas))
	assert.False(t, Tem(1, PermVerFeedGeral))

	// Nível desconhecido não carrega nenhuma permissão
	assert.False(t, Tem(0, PermGerenciarClientes))
	assert.False(t, Tem(7, PermGerenciarClientes))
}
