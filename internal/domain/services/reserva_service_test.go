package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateReservaGeraPagamentoAtomicamente(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	data := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	reserva, pagamento, err := service.CreateReserva(&models.Reserva{
		Area:        "Churrasqueira",
		DataReserva: data,
		Horario:     "18:00",
		Capacidade:  20,
		Valor:       150,
		ClienteID:   cliente.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ReservaPendente, reserva.Status)
	assert.Equal(t, models.PagamentoPendente, pagamento.Status)
	assert.Equal(t, reserva.Valor, pagamento.Valor)
	assert.Equal(t, cliente.ID, pagamento.ClienteID)

	assert.True(t, strings.HasPrefix(pagamento.Boletos, models.BoletosPrefixoReserva))
	assert.Contains(t, pagamento.Boletos, "Churrasqueira")
	assert.Contains(t, pagamento.Boletos, "18:00")
}

func TestCreateReservaConflitoNaoPersisteNada(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	outro := criaCliente(t, db, "Bruno")

	data := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	_, _, err := service.CreateReserva(&models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "18:00",
		Valor: 150, ClienteID: cliente.ID,
	})
	require.NoError(t, err)

	_, _, err = service.CreateReserva(&models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "12:00",
		Valor: 150, ClienteID: outro.ID,
	})
	assert.ErrorIs(t, err, ErrReservaConflito)

	var reservas, pagamentos int64
	db.Model(&models.Reserva{}).Count(&reservas)
	db.Model(&models.Pagamento{}).Count(&pagamentos)
	assert.EqualValues(t, 1, reservas)
	assert.EqualValues(t, 1, pagamentos)
}

func TestCreateReservaDataPassada(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	_, _, err := service.CreateReserva(&models.Reserva{
		Area:        "Salão de Festas",
		DataReserva: time.Now().AddDate(0, 0, -2),
		Horario:     "19:00",
		Valor:       200,
		ClienteID:   cliente.ID,
	})
	assert.ErrorIs(t, err, ErrReservaDataPassada)

	// Meia-noite de hoje também já passou
	agora := time.Now()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	_, _, err = service.CreateReserva(&models.Reserva{
		Area:        "Salão de Festas",
		DataReserva: hoje,
		Horario:     "19:00",
		Valor:       200,
		ClienteID:   cliente.ID,
	})
	assert.ErrorIs(t, err, ErrReservaDataPassada)

	var reservas int64
	db.Model(&models.Reserva{}).Count(&reservas)
	assert.Zero(t, reservas)
}

func TestReservaConfirmadaUnicaPorAreaEDiaNoBanco(t *testing.T) {
	db := setupTestDB(t)
	cliente := criaCliente(t, db, "Ana")
	data := time.Now().AddDate(0, 0, 6).Truncate(24 * time.Hour)

	require.NoError(t, db.Create(&models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "10:00",
		Valor: 80, Status: models.ReservaConfirmada, ClienteID: cliente.ID,
	}).Error)

	// O índice único rejeita a segunda CONFIRMADA mesmo sem passar
	// pela checagem do serviço
	err := db.Create(&models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "16:00",
		Valor: 80, Status: models.ReservaConfirmada, ClienteID: cliente.ID,
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// PENDENTE e CANCELADA não ocupam o slot
	require.NoError(t, db.Create(&models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "16:00",
		Valor: 80, Status: models.ReservaPendente, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "18:00",
		Valor: 80, Status: models.ReservaCancelada, ClienteID: cliente.ID,
	}).Error)
}

func TestCancelarReservaLiberaOSlotConfirmado(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	data := time.Now().AddDate(0, 0, 6).Truncate(24 * time.Hour)

	primeira := models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "10:00",
		Valor: 80, Status: models.ReservaConfirmada, ClienteID: cliente.ID,
	}
	require.NoError(t, db.Create(&primeira).Error)

	_, err := service.CancelarReserva(primeira.ID)
	require.NoError(t, err)

	// Cancelar limpa a chave, liberando o slot para outra confirmação
	require.NoError(t, db.Create(&models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "16:00",
		Valor: 80, Status: models.ReservaConfirmada, ClienteID: cliente.ID,
	}).Error)
}

func TestCreateReservaUsaCatalogoDeAreas(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	require.NoError(t, db.Create(&models.AreaComum{
		Nome: "Piscina", Capacidade: 30, Preco: 80, Status: models.AreaAtiva,
	}).Error)

	data := time.Now().AddDate(0, 0, 3).Truncate(24 * time.Hour)
	reserva, pagamento, err := service.CreateReserva(&models.Reserva{
		Area: "Piscina", DataReserva: data, Horario: "10:00",
		Valor: 999, ClienteID: cliente.ID,
	})
	require.NoError(t, err)

	// O preço do catálogo prevalece sobre o enviado pelo cliente
	assert.Equal(t, 80.0, reserva.Valor)
	assert.Equal(t, 80.0, pagamento.Valor)
	assert.Equal(t, 30, reserva.Capacidade)
}

func TestCreateReservaAreaEmManutencao(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	require.NoError(t, db.Create(&models.AreaComum{
		Nome: "Quadra", Capacidade: 10, Preco: 50, Status: models.AreaManutencao,
	}).Error)

	_, _, err := service.CreateReserva(&models.Reserva{
		Area:        "Quadra",
		DataReserva: time.Now().AddDate(0, 0, 3),
		Horario:     "09:00",
		ClienteID:   cliente.ID,
	})
	assert.ErrorIs(t, err, ErrAreaIndisponivel)
}

func TestCancelarReservaRemovePagamentoPendente(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	data := time.Now().AddDate(0, 0, 5).Truncate(24 * time.Hour)
	reserva, pagamento, err := service.CreateReserva(&models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "18:00",
		Valor: 150, ClienteID: cliente.ID,
	})
	require.NoError(t, err)

	cancelada, err := service.CancelarReserva(reserva.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaCancelada, cancelada.Status)

	var restante int64
	db.Model(&models.Pagamento{}).Where("id = ?", pagamento.ID).Count(&restante)
	assert.Zero(t, restante)
}

func TestCancelarReservaPreservaPagamentoJaPago(t *testing.T) {
	db := setupTestDB(t)
	reservas := NewReservaService(db, testConfig())
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	data := time.Now().AddDate(0, 0, 5).Truncate(24 * time.Hour)
	reserva, pagamento, err := reservas.CreateReserva(&models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "18:00",
		Valor: 150, ClienteID: cliente.ID,
	})
	require.NoError(t, err)

	_, err = pagamentos.Pagar(pagamento.ID, models.MetodoPix)
	require.NoError(t, err)

	_, err = reservas.CancelarReserva(reserva.ID)
	require.NoError(t, err)

	pago, err := pagamentos.GetPagamentoByID(pagamento.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PagamentoPago, pago.Status)
}

func TestAtualizarStatusConfirmadaRevalidaConflito(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	data := time.Now().AddDate(0, 0, 4).Truncate(24 * time.Hour)
	confirmada := models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "12:00",
		Valor: 150, Status: models.ReservaConfirmada, ClienteID: cliente.ID,
	}
	pendente := models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "18:00",
		Valor: 150, Status: models.ReservaPendente, ClienteID: cliente.ID,
	}
	require.NoError(t, db.Create(&confirmada).Error)
	require.NoError(t, db.Create(&pendente).Error)

	_, err := service.AtualizarStatus(pendente.ID, models.ReservaConfirmada)
	assert.ErrorIs(t, err, ErrReservaConflito)

	atual, err := service.GetReservaByID(pendente.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaPendente, atual.Status)
}

func TestGetReservaInexistente(t *testing.T) {
	db := setupTestDB(t)
	service := NewReservaService(db, testConfig())

	_, err := service.GetReservaByID(999)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
