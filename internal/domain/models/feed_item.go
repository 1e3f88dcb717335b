package models

import "time"

// TipoFeed identifica a categoria de origem de um item do feed
type TipoFeed string

const (
	FeedEncomenda TipoFeed = "ENCOMENDA"
	FeedReserva   TipoFeed = "RESERVA"
	FeedVisita    TipoFeed = "VISITA"
	FeedSugestao  TipoFeed = "SUGESTAO"
	FeedVoto      TipoFeed = "VOTO"
	FeedVeiculo   TipoFeed = "VEICULO"
	FeedMorador   TipoFeed = "MORADOR"
	FeedPrestador TipoFeed = "PRESTADOR"
)

// FeedItem is the derived projection returned by /atividades. It is
// computed at request time and never persisted. ID carries a stable
// per-category prefix so items from different tables cannot collide.
type FeedItem struct {
	ID        string    `json:"id"`
	Tipo      TipoFeed  `json:"tipo"`
	Titulo    string    `json:"titulo"`
	Subtitulo string    `json:"subtitulo"`
	Timestamp time.Time `json:"timestamp"`
}
