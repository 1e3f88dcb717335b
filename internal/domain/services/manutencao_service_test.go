package services

import (
	"testing"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcluirManutencaoNotificaMorador(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	notificacoes := NewNotificacaoService(db, cfg, nil, nil)
	service := NewManutencaoService(db, cfg, notificacoes)
	cliente := criaCliente(t, db, "Ana")

	manutencao := &models.Manutencao{
		Titulo:    "Vazamento na garagem",
		Descricao: "Infiltração perto da vaga 12",
		ClienteID: cliente.ID,
	}
	require.NoError(t, service.CreateManutencao(manutencao))
	assert.Equal(t, models.ManutencaoPendente, manutencao.Status)

	concluida, err := service.Concluir(manutencao.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ManutencaoConcluido, concluida.Status)

	var criadas []models.Notificacao
	require.NoError(t, db.Where("cliente_id = ?", cliente.ID).Find(&criadas).Error)
	require.Len(t, criadas, 1)
	assert.Contains(t, criadas[0].Mensagem, "Vazamento na garagem")

	_, err = service.Concluir(manutencao.ID)
	assert.ErrorIs(t, err, ErrManutencaoConcluida)
}

func TestGetAllManutencoesPriorizaAbertasUrgentes(t *testing.T) {
	db := setupTestDB(t)
	service := NewManutencaoService(db, testConfig(), nil)
	cliente := criaCliente(t, db, "Ana")

	normal := &models.Manutencao{
		Titulo: "Lâmpada queimada", Descricao: "Corredor bloco B", ClienteID: cliente.ID,
	}
	urgente := &models.Manutencao{
		Titulo: "Portão travado", Descricao: "Entrada principal",
		Prioridade: true, ClienteID: cliente.ID,
	}
	require.NoError(t, service.CreateManutencao(normal))
	require.NoError(t, service.CreateManutencao(urgente))

	concluidaAntiga := &models.Manutencao{
		Titulo: "Pintura", Descricao: "Hall", ClienteID: cliente.ID,
	}
	require.NoError(t, service.CreateManutencao(concluidaAntiga))
	_, err := service.Concluir(concluidaAntiga.ID)
	require.NoError(t, err)

	fila, err := service.GetAllManutencoes()
	require.NoError(t, err)
	require.Len(t, fila, 3)

	// Abertas primeiro, urgentes na frente das normais
	assert.Equal(t, urgente.ID, fila[0].ID)
	assert.Equal(t, normal.ID, fila[1].ID)
	assert.Equal(t, concluidaAntiga.ID, fila[2].ID)
}
