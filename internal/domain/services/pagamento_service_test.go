package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagarConfirmaReservaPendente(t *testing.T) {
	db := setupTestDB(t)
	reservas := NewReservaService(db, testConfig())
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	data := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	reserva, pagamento, err := reservas.CreateReserva(&models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "18:00",
		Valor: 150, ClienteID: cliente.ID,
	})
	require.NoError(t, err)

	pago, err := pagamentos.Pagar(pagamento.ID, models.MetodoPix)
	require.NoError(t, err)

	assert.Equal(t, models.PagamentoPago, pago.Status)
	assert.Equal(t, models.MetodoPix, pago.MetodoPagamento)
	require.NotNil(t, pago.DataPagamento)

	confirmada, err := reservas.GetReservaByID(reserva.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaConfirmada, confirmada.Status)
}

func TestPagarDuasVezes(t *testing.T) {
	db := setupTestDB(t)
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	pagamento := &models.Pagamento{
		Boletos:        "Taxa condominial julho",
		DataVencimento: time.Now().AddDate(0, 0, 10),
		Valor:          420,
		ClienteID:      cliente.ID,
	}
	require.NoError(t, pagamentos.CreatePagamento(pagamento))

	primeiro, err := pagamentos.Pagar(pagamento.ID, models.MetodoBoleto)
	require.NoError(t, err)

	_, err = pagamentos.Pagar(pagamento.ID, models.MetodoPix)
	assert.ErrorIs(t, err, ErrPagamentoJaPago)

	atual, err := pagamentos.GetPagamentoByID(pagamento.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MetodoBoleto, atual.MetodoPagamento)
	require.NotNil(t, atual.DataPagamento)
	assert.WithinDuration(t, *primeiro.DataPagamento, *atual.DataPagamento, time.Second)
}

func TestPagarConcorrenteLiquidaUmaVez(t *testing.T) {
	db := setupTestDB(t)
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	pagamento := &models.Pagamento{
		Boletos:        "Taxa condominial agosto",
		DataVencimento: time.Now().AddDate(0, 0, 10),
		Valor:          350,
		ClienteID:      cliente.ID,
	}
	require.NoError(t, pagamentos.CreatePagamento(pagamento))

	var wg sync.WaitGroup
	erros := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pagamentos.Pagar(pagamento.ID, models.MetodoPix)
			erros <- err
		}()
	}
	wg.Wait()
	close(erros)

	var liquidados, rejeitados int
	for err := range erros {
		switch {
		case err == nil:
			liquidados++
		case errors.Is(err, ErrPagamentoJaPago):
			rejeitados++
		default:
			t.Fatalf("erro inesperado ao pagar: %v", err)
		}
	}
	assert.Equal(t, 1, liquidados)
	assert.Equal(t, 1, rejeitados)

	atual, err := pagamentos.GetPagamentoByID(pagamento.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PagamentoPago, atual.Status)
	require.NotNil(t, atual.DataPagamento)
}

func TestPagarSemReservaCorrespondenteLiquidaNormalmente(t *testing.T) {
	db := setupTestDB(t)
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	// Boleto com prefixo de reserva mas sem reserva pendente: a
	// conciliação é melhor esforço e nunca falha o pagamento
	pagamento := &models.Pagamento{
		Boletos:        models.BoletosPrefixoReserva + "Piscina - 10:00",
		DataVencimento: time.Now().AddDate(0, 0, 2),
		Valor:          80,
		ClienteID:      cliente.ID,
	}
	require.NoError(t, pagamentos.CreatePagamento(pagamento))

	pago, err := pagamentos.Pagar(pagamento.ID, models.MetodoCartao)
	require.NoError(t, err)
	assert.Equal(t, models.PagamentoPago, pago.Status)
}

func TestPagarNaoConfirmaReservaDeValorDiferente(t *testing.T) {
	db := setupTestDB(t)
	reservas := NewReservaService(db, testConfig())
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	data := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	reserva, _, err := reservas.CreateReserva(&models.Reserva{
		Area: "Churrasqueira", DataReserva: data, Horario: "18:00",
		Valor: 150, ClienteID: cliente.ID,
	})
	require.NoError(t, err)

	avulso := &models.Pagamento{
		Boletos:        models.BoletosPrefixoReserva + "Churrasqueira - 18:00",
		DataVencimento: data,
		Valor:          999,
		ClienteID:      cliente.ID,
	}
	require.NoError(t, pagamentos.CreatePagamento(avulso))

	_, err = pagamentos.Pagar(avulso.ID, models.MetodoPix)
	require.NoError(t, err)

	atual, err := reservas.GetReservaByID(reserva.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaPendente, atual.Status)
}

func TestPagarConfirmaReservaMaisAntiga(t *testing.T) {
	db := setupTestDB(t)
	reservas := NewReservaService(db, testConfig())
	pagamentos := NewPagamentoService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	primeira, pagamento1, err := reservas.CreateReserva(&models.Reserva{
		Area:        "Churrasqueira",
		DataReserva: time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		Horario:     "18:00",
		Valor:       150,
		ClienteID:   cliente.ID,
	})
	require.NoError(t, err)

	segunda, _, err := reservas.CreateReserva(&models.Reserva{
		Area:        "Salão de Festas",
		DataReserva: time.Now().AddDate(0, 0, 8).Truncate(24 * time.Hour),
		Horario:     "20:00",
		Valor:       150,
		ClienteID:   cliente.ID,
	})
	require.NoError(t, err)

	_, err = pagamentos.Pagar(pagamento1.ID, models.MetodoPix)
	require.NoError(t, err)

	r1, err := reservas.GetReservaByID(primeira.ID)
	require.NoError(t, err)
	r2, err := reservas.GetReservaByID(segunda.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservaConfirmada, r1.Status)
	assert.Equal(t, models.ReservaPendente, r2.Status)
}

func TestCreatePagamentoClienteInexistente(t *testing.T) {
	db := setupTestDB(t)
	pagamentos := NewPagamentoService(db, testConfig())

	err := pagamentos.CreatePagamento(&models.Pagamento{
		Boletos:   "Multa",
		Valor:     50,
		ClienteID: "cliente-que-nao-existe",
	})
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
