package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRecentesOrdenadoDecrescenteETruncado(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	base := time.Now().Add(-30 * 24 * time.Hour)
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Encomenda{
			Nome: "Caixa", Remetente: fmt.Sprintf("Loja %d", i), Tamanho: "PEQUENO",
			DataChegada: base.Add(time.Duration(i) * 24 * time.Hour),
			ClienteID:   cliente.ID,
		}).Error)
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Visita{
			Nome: fmt.Sprintf("Visita %d", i), CPF: "11122233344", Contato: "11999990000",
			DataVisita:   base.Add(time.Duration(i)*24*time.Hour + 12*time.Hour),
			Horario:      "14:00",
			ResidenciaID: residencia.ID,
			ClienteID:    cliente.ID,
		}).Error)
	}

	feed, err := service.FeedRecentes(context.Background(), cliente.ID)
	require.NoError(t, err)

	assert.Len(t, feed, FeedTamanhoSaida)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp),
			"feed fora de ordem na posição %d", i)
	}
}

func TestFeedRecentesCobreTodasAsCategorias(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	agora := time.Now()
	require.NoError(t, db.Create(&models.Encomenda{
		Nome: "Caixa", Remetente: "Loja", Tamanho: "PEQUENO",
		DataChegada: agora, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Reserva{
		Area: "Piscina", DataReserva: agora.Add(-time.Hour), Horario: "10:00",
		Valor: 80, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Visita{
		Nome: "João", CPF: "11122233344", Contato: "11999990000",
		DataVisita: agora.Add(-2 * time.Hour), Horario: "14:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Sugestao{
		Titulo: "Iluminação", Descricao: "Trocar lâmpadas da garagem",
		ClienteID: cliente.ID,
	}).Error)
	votacao := models.Votacao{
		Titulo: "Pintura", Descricao: "Cor do muro",
		DataInicio: agora.Add(-24 * time.Hour), DataFim: agora.Add(24 * time.Hour),
		AdminID: "admin-1",
	}
	require.NoError(t, db.Create(&votacao).Error)
	opcao := models.OpcaoVotacao{Texto: "Branco", VotacaoID: votacao.ID}
	require.NoError(t, db.Create(&opcao).Error)
	require.NoError(t, db.Create(&models.Voto{
		ClienteID: cliente.ID, VotacaoID: votacao.ID, OpcaoID: opcao.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Veiculo{
		Marca: "Fiat", Modelo: "Uno", Ano: 2018, Cor: "Prata", Placa: "ABC1D23",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Morador{
		Nome: "Maria", Parentesco: "Filha", CPF: "55566677788",
		Contato: "11988887777", TipoMorador: models.MoradorDependente,
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Prestador{
		Nome: "Carlos", CPF: "99988877766", Contato: "11977776666",
		Servico: "Encanador", DataServico: agora.Add(-3 * time.Hour), Horario: "08:00",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)

	feed, err := service.FeedRecentes(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.Len(t, feed, FeedTamanhoSaida)

	prefixos := map[string]models.TipoFeed{
		"enc-": models.FeedEncomenda, "res-": models.FeedReserva,
		"vis-": models.FeedVisita, "sug-": models.FeedSugestao,
		"voto-": models.FeedVoto, "vei-": models.FeedVeiculo,
		"mor-": models.FeedMorador, "pre-": models.FeedPrestador,
	}
	for _, item := range feed {
		encontrado := false
		for prefixo, tipo := range prefixos {
			if strings.HasPrefix(item.ID, prefixo) {
				assert.Equal(t, tipo, item.Tipo)
				encontrado = true
				break
			}
		}
		assert.True(t, encontrado, "item sem prefixo conhecido: %s", item.ID)
		assert.NotEmpty(t, item.Titulo)
	}
}

func TestFeedRecentesIDsUnicos(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	// Categorias diferentes reaproveitam os mesmos IDs numéricos no
	// banco; com o mesmo carimbo de hora, só o prefixo distingue os
	// itens do feed
	carimbo := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Encomenda{
			Nome: "Caixa", Remetente: fmt.Sprintf("Loja %d", i), Tamanho: "PEQUENO",
			DataChegada: carimbo, ClienteID: cliente.ID,
		}).Error)
		require.NoError(t, db.Create(&models.Visita{
			Nome: fmt.Sprintf("Visita %d", i), CPF: "11122233344", Contato: "11999990000",
			DataVisita: carimbo, Horario: "14:00",
			ResidenciaID: residencia.ID, ClienteID: cliente.ID,
		}).Error)
	}

	feed, err := service.FeedRecentes(context.Background(), cliente.ID)
	require.NoError(t, err)
	require.Len(t, feed, FeedTamanhoSaida)

	vistos := map[string]bool{}
	for _, item := range feed {
		assert.False(t, vistos[item.ID], "id duplicado no feed: %s", item.ID)
		vistos[item.ID] = true
	}
}

func TestFeedRecentesSomenteDoCliente(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	ana := criaCliente(t, db, "Ana")
	bruno := criaCliente(t, db, "Bruno")

	require.NoError(t, db.Create(&models.Encomenda{
		Nome: "Caixa", Remetente: "Loja A", Tamanho: "PEQUENO",
		DataChegada: time.Now(), ClienteID: ana.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Encomenda{
		Nome: "Caixa", Remetente: "Loja B", Tamanho: "GRANDE",
		DataChegada: time.Now(), ClienteID: bruno.ID,
	}).Error)

	feed, err := service.FeedRecentes(context.Background(), ana.ID)
	require.NoError(t, err)

	require.Len(t, feed, 1)
	assert.Contains(t, feed[0].Titulo, "Loja A")
}

func TestFeedRecentesNaoAlteraDados(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	require.NoError(t, db.Create(&models.Encomenda{
		Nome: "Caixa", Remetente: "Loja", Tamanho: "PEQUENO",
		DataChegada: time.Now(), ClienteID: cliente.ID,
	}).Error)

	primeiro, err := service.FeedRecentes(context.Background(), cliente.ID)
	require.NoError(t, err)
	segundo, err := service.FeedRecentes(context.Background(), cliente.ID)
	require.NoError(t, err)

	assert.Equal(t, primeiro, segundo)

	var encomendas int64
	db.Model(&models.Encomenda{}).Count(&encomendas)
	assert.EqualValues(t, 1, encomendas)
}

func TestFeedRecentesVazio(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	feed, err := service.FeedRecentes(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedGeralAgregaTodosOsMoradores(t *testing.T) {
	db := setupTestDB(t)
	service := NewAtividadeService(db, testConfig())
	ana := criaCliente(t, db, "Ana")
	bruno := criaCliente(t, db, "Bruno")
	residencia := criaResidencia(t, db, ana.ID)

	base := time.Now().Add(-10 * 24 * time.Hour)
	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.Encomenda{
			Nome: "Caixa", Remetente: fmt.Sprintf("Loja %d", i), Tamanho: "PEQUENO",
			DataChegada: base.Add(time.Duration(i) * 24 * time.Hour),
			ClienteID:   ana.ID,
		}).Error)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, db.Create(&models.Visita{
			Nome: fmt.Sprintf("Visita %d", i), CPF: "11122233344", Contato: "11999990000",
			DataVisita:   base.Add(time.Duration(i)*24*time.Hour + 6*time.Hour),
			Horario:      "10:00",
			ResidenciaID: residencia.ID,
			ClienteID:    bruno.ID,
		}).Error)
	}

	feed, err := service.FeedGeral(context.Background())
	require.NoError(t, err)

	assert.Len(t, feed, FeedGeralTamanho)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp))
	}

	tipos := map[models.TipoFeed]bool{}
	for _, item := range feed {
		tipos[item.Tipo] = true
	}
	assert.True(t, tipos[models.FeedEncomenda])
	assert.True(t, tipos[models.FeedVisita])
}
