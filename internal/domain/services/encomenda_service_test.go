package services

import (
	"strings"
	"testing"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarChegadaGeraCodigoENotificacao(t *testing.T) {
	db := setupTestDB(t)
	service := NewEncomendaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	encomenda := &models.Encomenda{
		Nome:      "Caixa pequena",
		Remetente: "Mercado Livre",
		Tamanho:   "PEQUENO",
		ClienteID: cliente.ID,
	}
	require.NoError(t, service.RegistrarChegada(encomenda))

	assert.True(t, strings.HasPrefix(encomenda.Codigo, "ENC-"))
	assert.Equal(t, models.EncomendaAguardandoRetirada, encomenda.Status)
	assert.False(t, encomenda.DataChegada.IsZero())

	var notificacoes []models.Notificacao
	require.NoError(t, db.Where("cliente_id = ?", cliente.ID).Find(&notificacoes).Error)
	require.Len(t, notificacoes, 1)
	assert.Contains(t, notificacoes[0].Mensagem, "Mercado Livre")
	assert.Contains(t, notificacoes[0].Mensagem, encomenda.Codigo)
}

func TestRegistrarChegadaClienteInexistente(t *testing.T) {
	db := setupTestDB(t)
	service := NewEncomendaService(db, testConfig())

	err := service.RegistrarChegada(&models.Encomenda{
		Nome: "Caixa", Remetente: "Loja", Tamanho: "MEDIO",
		ClienteID: "nao-existe",
	})
	assert.ErrorIs(t, err, ErrNaoEncontrado)

	var notificacoes int64
	db.Model(&models.Notificacao{}).Count(&notificacoes)
	assert.Zero(t, notificacoes)
}

func TestRegistrarRetirada(t *testing.T) {
	db := setupTestDB(t)
	service := NewEncomendaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	encomenda := &models.Encomenda{
		Nome: "Caixa", Remetente: "Loja", Tamanho: "GRANDE",
		ClienteID: cliente.ID,
	}
	require.NoError(t, service.RegistrarChegada(encomenda))

	entregue, err := service.RegistrarRetirada(encomenda.ID, "porteiro-1")
	require.NoError(t, err)

	assert.Equal(t, models.EncomendaEntregue, entregue.Status)
	require.NotNil(t, entregue.DataRetirada)
	require.NotNil(t, entregue.AdminEntregaID)
	assert.Equal(t, "porteiro-1", *entregue.AdminEntregaID)

	// Retirar de novo é rejeitado
	_, err = service.RegistrarRetirada(encomenda.ID, "porteiro-1")
	assert.ErrorIs(t, err, ErrEncomendaEntregue)
}

func TestGetEncomendasPendentes(t *testing.T) {
	db := setupTestDB(t)
	service := NewEncomendaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	primeira := &models.Encomenda{
		Nome: "Caixa 1", Remetente: "Loja", Tamanho: "PEQUENO", ClienteID: cliente.ID,
	}
	segunda := &models.Encomenda{
		Nome: "Caixa 2", Remetente: "Loja", Tamanho: "PEQUENO", ClienteID: cliente.ID,
	}
	require.NoError(t, service.RegistrarChegada(primeira))
	require.NoError(t, service.RegistrarChegada(segunda))

	_, err := service.RegistrarRetirada(primeira.ID, "")
	require.NoError(t, err)

	pendentes, err := service.GetEncomendasPendentes()
	require.NoError(t, err)
	require.Len(t, pendentes, 1)
	assert.Equal(t, segunda.ID, pendentes[0].ID)
}
