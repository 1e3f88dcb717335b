package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Defaults of the feed: per-category fetch limit and final output size
const (
	FeedLimitePorCategoria = 5
	FeedTamanhoSaida       = 5

	FeedGeralLimite  = 10
	FeedGeralTamanho = 10
)

// InterfaceAtividadeService defines the activity feed interface
type InterfaceAtividadeService interface {
	FeedRecentes(ctx context.Context, clienteID string) ([]models.FeedItem, error)
	FeedGeral(ctx context.Context) ([]models.FeedItem, error)
}

// AtividadeService builds the activity feed. Each category is an
// independent bounded query; the fetches run concurrently and any
// failure aborts the whole request, never a partial feed. The merged
// slice is sorted descending by timestamp and truncated.
//
// Ties on identical timestamps keep category-list order (encomendas,
// reservas, visitas, sugestões, votos, veículos, moradores,
// prestadores) and, within a category, the query's recency order.
type AtividadeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAtividadeService creates a new activity feed service
func NewAtividadeService(db *gorm.DB, cfg *config.Config) InterfaceAtividadeService {
	return &AtividadeService{
		DB:     db,
		Config: cfg,
	}
}

// FeedRecentes aggregates the resident's eight categories
func (s *AtividadeService) FeedRecentes(ctx context.Context, clienteID string) ([]models.FeedItem, error) {
	var (
		encomendas  []models.Encomenda
		reservas    []models.Reserva
		visitas     []models.Visita
		sugestoes   []models.Sugestao
		votos       []models.Voto
		veiculos    []models.Veiculo
		moradores   []models.Morador
		prestadores []models.Prestador
	)

	limite := FeedLimitePorCategoria
	g, gctx := errgroup.WithContext(ctx)

	fetch := func(dest interface{}, orderBy string) func() error {
		return func() error {
			return s.DB.WithContext(gctx).
				Where("cliente_id = ?", clienteID).
				Order(orderBy).Limit(limite).Find(dest).Error
		}
	}

	g.Go(fetch(&encomendas, "data_chegada DESC"))
	g.Go(fetch(&reservas, "data_reserva DESC"))
	g.Go(fetch(&visitas, "data_visita DESC"))
	g.Go(fetch(&sugestoes, "data DESC"))
	g.Go(func() error {
		return s.DB.WithContext(gctx).Preload("Votacao").
			Where("cliente_id = ?", clienteID).
			Order("data_voto DESC").Limit(limite).Find(&votos).Error
	})
	g.Go(fetch(&veiculos, "created_at DESC"))
	g.Go(fetch(&moradores, "created_at DESC"))
	g.Go(fetch(&prestadores, "data_servico DESC"))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	itens := make([]models.FeedItem, 0, 8*limite)
	itens = append(itens, mapEncomendas(encomendas)...)
	itens = append(itens, mapReservas(reservas)...)
	itens = append(itens, mapVisitas(visitas)...)
	itens = append(itens, mapSugestoes(sugestoes)...)
	itens = append(itens, mapVotos(votos)...)
	itens = append(itens, mapVeiculos(veiculos)...)
	itens = append(itens, mapMoradores(moradores)...)
	itens = append(itens, mapPrestadores(prestadores)...)

	return ordenaETrunca(itens, FeedTamanhoSaida), nil
}

// FeedGeral is the concierge/administration view: packages and visits
// across every resident
func (s *AtividadeService) FeedGeral(ctx context.Context) ([]models.FeedItem, error) {
	var (
		encomendas []models.Encomenda
		visitas    []models.Visita
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Order("data_chegada DESC").Limit(FeedGeralLimite).Find(&encomendas).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Order("data_visita DESC").Limit(FeedGeralLimite).Find(&visitas).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	itens := make([]models.FeedItem, 0, 2*FeedGeralLimite)
	itens = append(itens, mapEncomendas(encomendas)...)
	itens = append(itens, mapVisitas(visitas)...)

	return ordenaETrunca(itens, FeedGeralTamanho), nil
}

// ordenaETrunca sorts descending by timestamp (stable, so ties keep
// insertion order) and cuts the slice to the output size
func ordenaETrunca(itens []models.FeedItem, tamanho int) []models.FeedItem {
	sort.SliceStable(itens, func(i, j int) bool {
		return itens[i].Timestamp.After(itens[j].Timestamp)
	})
	if len(itens) > tamanho {
		itens = itens[:tamanho]
	}
	return itens
}

func mapEncomendas(encomendas []models.Encomenda) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(encomendas))
	for _, e := range encomendas {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("enc-%d", e.ID),
			Tipo:      models.FeedEncomenda,
			Titulo:    fmt.Sprintf("Nova encomenda: %s", e.Remetente),
			Subtitulo: fmt.Sprintf("Status: %s", e.Status),
			Timestamp: e.DataChegada,
		})
	}
	return itens
}

func mapReservas(reservas []models.Reserva) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(reservas))
	for _, r := range reservas {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("res-%d", r.ID),
			Tipo:      models.FeedReserva,
			Titulo:    fmt.Sprintf("Reserva: %s", r.Area),
			Subtitulo: fmt.Sprintf("%s às %s - %s", r.DataReserva.Format("02/01/2006"), r.Horario, r.Status),
			Timestamp: r.DataReserva,
		})
	}
	return itens
}

func mapVisitas(visitas []models.Visita) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(visitas))
	for _, v := range visitas {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("vis-%d", v.ID),
			Tipo:      models.FeedVisita,
			Titulo:    fmt.Sprintf("Visita agendada: %s", v.Nome),
			Subtitulo: fmt.Sprintf("%s às %s", v.DataVisita.Format("02/01/2006"), v.Horario),
			Timestamp: v.DataVisita,
		})
	}
	return itens
}

func mapSugestoes(sugestoes []models.Sugestao) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(sugestoes))
	for _, s := range sugestoes {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("sug-%d", s.ID),
			Tipo:      models.FeedSugestao,
			Titulo:    fmt.Sprintf("Sugestão enviada: %s", s.Titulo),
			Subtitulo: statusLeitura(s.Lido),
			Timestamp: s.Data,
		})
	}
	return itens
}

func mapVotos(votos []models.Voto) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(votos))
	for _, v := range votos {
		titulo := "Voto registrado"
		if v.Votacao != nil {
			titulo = fmt.Sprintf("Voto registrado: %s", v.Votacao.Titulo)
		}
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("voto-%d", v.ID),
			Tipo:      models.FeedVoto,
			Titulo:    titulo,
			Subtitulo: v.DataVoto.Format("02/01/2006 15:04"),
			Timestamp: v.DataVoto,
		})
	}
	return itens
}

func mapVeiculos(veiculos []models.Veiculo) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(veiculos))
	for _, v := range veiculos {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("vei-%d", v.ID),
			Tipo:      models.FeedVeiculo,
			Titulo:    fmt.Sprintf("Veículo cadastrado: %s %s", v.Marca, v.Modelo),
			Subtitulo: fmt.Sprintf("Placa %s", v.Placa),
			Timestamp: v.CreatedAt,
		})
	}
	return itens
}

func mapMoradores(moradores []models.Morador) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(moradores))
	for _, m := range moradores {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("mor-%d", m.ID),
			Tipo:      models.FeedMorador,
			Titulo:    fmt.Sprintf("Morador cadastrado: %s", m.Nome),
			Subtitulo: string(m.TipoMorador),
			Timestamp: m.CreatedAt,
		})
	}
	return itens
}

func mapPrestadores(prestadores []models.Prestador) []models.FeedItem {
	itens := make([]models.FeedItem, 0, len(prestadores))
	for _, p := range prestadores {
		itens = append(itens, models.FeedItem{
			ID:        fmt.Sprintf("pre-%d", p.ID),
			Tipo:      models.FeedPrestador,
			Titulo:    fmt.Sprintf("Prestador agendado: %s", p.Nome),
			Subtitulo: fmt.Sprintf("%s em %s", p.Servico, p.DataServico.Format("02/01/2006")),
			Timestamp: p.DataServico,
		})
	}
	return itens
}

func statusLeitura(lido bool) string {
	if lido {
		return "Lida pela administração"
	}
	return "Aguardando leitura"
}
