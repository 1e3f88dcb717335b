package services

import (
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntradaAgendadaSincronizaVisitaEPrestador(t *testing.T) {
	db := setupTestDB(t)
	service := NewVisitanteService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	hoje := time.Now()
	visita := &models.Visita{
		Nome: "Carlos Lima", CPF: "11122233344", Contato: "11999990000",
		DataVisita: hoje, Horario: "14:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}
	require.NoError(t, db.Create(visita).Error)
	prestador := &models.Prestador{
		Nome: "Carlos Lima", CPF: "11122233344", Contato: "11999990000",
		Servico: "Eletricista", DataServico: hoje, Horario: "14:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}
	require.NoError(t, db.Create(prestador).Error)

	visitante := &models.Visitante{
		Nome: "Carlos Lima", CPF: "111.222.333-44", NumeroCasa: "42",
		PorteiroID: "porteiro-1",
	}
	require.NoError(t, service.RegistrarEntradaAgendada(visitante))
	assert.Equal(t, "11122233344", visitante.CPF)
	assert.Equal(t, models.VisitaDentro, visitante.Status)

	var visitaAtual models.Visita
	require.NoError(t, db.First(&visitaAtual, visita.ID).Error)
	assert.Equal(t, models.VisitaDentro, visitaAtual.Status)
	require.NotNil(t, visitaAtual.DataEntrada)

	var prestadorAtual models.Prestador
	require.NoError(t, db.First(&prestadorAtual, prestador.ID).Error)
	assert.Equal(t, models.VisitaDentro, prestadorAtual.Status)
}

func TestEntradaAgendadaRejeitaQuemJaEstaDentro(t *testing.T) {
	db := setupTestDB(t)
	service := NewVisitanteService(db, testConfig())

	primeiro := &models.Visitante{
		Nome: "Carlos Lima", CPF: "11122233344", NumeroCasa: "42",
	}
	require.NoError(t, service.RegistrarEntradaAgendada(primeiro))

	segundo := &models.Visitante{
		Nome: "Carlos Lima", CPF: "11122233344", NumeroCasa: "42",
	}
	err := service.RegistrarEntradaAgendada(segundo)
	assert.ErrorIs(t, err, ErrVisitanteJaDentro)
}

func TestRegistrarSaidaPropagaParaAgendamentos(t *testing.T) {
	db := setupTestDB(t)
	service := NewVisitanteService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	visita := &models.Visita{
		Nome: "Carlos Lima", CPF: "11122233344", Contato: "11999990000",
		DataVisita: time.Now(), Horario: "14:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}
	require.NoError(t, db.Create(visita).Error)

	visitante := &models.Visitante{
		Nome: "Carlos Lima", CPF: "11122233344", NumeroCasa: "42",
	}
	require.NoError(t, service.RegistrarEntradaAgendada(visitante))

	saiu, err := service.RegistrarSaida(visitante.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VisitaSaiu, saiu.Status)
	require.NotNil(t, saiu.DataSaida)

	var visitaAtual models.Visita
	require.NoError(t, db.First(&visitaAtual, visita.ID).Error)
	assert.Equal(t, models.VisitaSaiu, visitaAtual.Status)

	_, err = service.RegistrarSaida(visitante.ID)
	assert.ErrorIs(t, err, ErrVisitaEncerrada)
}

func TestVisitantesHojeUnificaPainel(t *testing.T) {
	db := setupTestDB(t)
	service := NewVisitanteService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	require.NoError(t, service.RegistrarEntrada(&models.Visitante{
		Nome: "Avulso", CPF: "99988877766", NumeroCasa: "10",
	}))
	require.NoError(t, db.Create(&models.Visita{
		Nome: "Agendada", CPF: "11122233344", Contato: "11999990000",
		DataVisita: time.Now(), Horario: "16:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Prestador{
		Nome: "Encanador", CPF: "55566677788", Contato: "11888880000",
		Servico: "Hidráulica", DataServico: time.Now(), Horario: "09:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)

	painel, err := service.GetVisitantesHoje()
	require.NoError(t, err)
	require.Len(t, painel, 3)

	tipos := map[string]VisitanteHoje{}
	for _, item := range painel {
		tipos[item.TipoOriginal] = item
	}
	assert.Equal(t, models.VisitaDentro, tipos["REAL"].Status)
	assert.Equal(t, "42", tipos["VISITA"].NumeroCasa)
	assert.Equal(t, models.VisitaAgendada, tipos["PRESTADOR"].Status)
	assert.Equal(t, "16:00", tipos["VISITA"].Horario)
}
