package services

import (
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criaVotacao(t *testing.T, service InterfaceVotacaoService, inicio, fim time.Time) *models.Votacao {
	t.Helper()

	votacao := &models.Votacao{
		Titulo:     "Pintura do muro",
		Descricao:  "Escolha da cor",
		DataInicio: inicio,
		DataFim:    fim,
		AdminID:    "admin-1",
	}
	require.NoError(t, service.CreateVotacao(votacao, []string{"Branco", "Cinza"}))

	completa, err := service.GetVotacaoByID(votacao.ID)
	require.NoError(t, err)
	return completa
}

func TestCreateVotacaoExigeDuasOpcoes(t *testing.T) {
	db := setupTestDB(t)
	service := NewVotacaoService(db, testConfig())

	err := service.CreateVotacao(&models.Votacao{
		Titulo: "Inválida", Descricao: "Só uma opção", AdminID: "admin-1",
	}, []string{"Sim"})
	assert.Error(t, err)

	var votacoes int64
	db.Model(&models.Votacao{}).Count(&votacoes)
	assert.Zero(t, votacoes)
}

func TestVotarUmaVezPorMorador(t *testing.T) {
	db := setupTestDB(t)
	service := NewVotacaoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	votacao := criaVotacao(t, service,
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))

	voto, err := service.Votar(votacao.ID, votacao.Opcoes[0].ID, cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, votacao.Opcoes[0].ID, voto.OpcaoID)

	// Segundo voto, mesmo em outra opção, é rejeitado
	_, err = service.Votar(votacao.ID, votacao.Opcoes[1].ID, cliente.ID)
	assert.ErrorIs(t, err, ErrVotoDuplicado)

	var votos int64
	db.Model(&models.Voto{}).Count(&votos)
	assert.EqualValues(t, 1, votos)
}

func TestVotarForaDaJanela(t *testing.T) {
	db := setupTestDB(t)
	service := NewVotacaoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	encerrada := criaVotacao(t, service,
		time.Now().Add(-48*time.Hour), time.Now().Add(-24*time.Hour))
	_, err := service.Votar(encerrada.ID, encerrada.Opcoes[0].ID, cliente.ID)
	assert.ErrorIs(t, err, ErrVotacaoEncerrada)

	futura := criaVotacao(t, service,
		time.Now().Add(24*time.Hour), time.Now().Add(48*time.Hour))
	_, err = service.Votar(futura.ID, futura.Opcoes[0].ID, cliente.ID)
	assert.ErrorIs(t, err, ErrVotacaoEncerrada)
}

func TestVotarOpcaoDeOutraVotacao(t *testing.T) {
	db := setupTestDB(t)
	service := NewVotacaoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	votacao := criaVotacao(t, service,
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))
	outra := criaVotacao(t, service,
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))

	_, err := service.Votar(votacao.ID, outra.Opcoes[0].ID, cliente.ID)
	assert.ErrorIs(t, err, ErrOpcaoInvalida)
}

func TestGetResultadoContaVotosPorOpcao(t *testing.T) {
	db := setupTestDB(t)
	service := NewVotacaoService(db, testConfig())
	ana := criaCliente(t, db, "Ana")
	bruno := criaCliente(t, db, "Bruno")
	carla := criaCliente(t, db, "Carla")

	votacao := criaVotacao(t, service,
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))

	_, err := service.Votar(votacao.ID, votacao.Opcoes[0].ID, ana.ID)
	require.NoError(t, err)
	_, err = service.Votar(votacao.ID, votacao.Opcoes[0].ID, bruno.ID)
	require.NoError(t, err)
	_, err = service.Votar(votacao.ID, votacao.Opcoes[1].ID, carla.ID)
	require.NoError(t, err)

	resultado, err := service.GetResultado(votacao.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 3, resultado.TotalVotos)
	require.Len(t, resultado.Resultados, 2)
	assert.EqualValues(t, 2, resultado.Resultados[0].Votos)
	assert.EqualValues(t, 1, resultado.Resultados[1].Votos)
}

func TestDeleteVotacaoRemoveVotosEOpcoes(t *testing.T) {
	db := setupTestDB(t)
	service := NewVotacaoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	votacao := criaVotacao(t, service,
		time.Now().Add(-time.Hour), time.Now().Add(24*time.Hour))
	_, err := service.Votar(votacao.ID, votacao.Opcoes[0].ID, cliente.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteVotacao(votacao.ID))

	var votos, opcoes int64
	db.Model(&models.Voto{}).Count(&votos)
	db.Model(&models.OpcaoVotacao{}).Count(&opcoes)
	assert.Zero(t, votos)
	assert.Zero(t, opcoes)
}
