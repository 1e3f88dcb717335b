package models

// StatusArea é a configuração fixa da área; a disponibilidade do dia
// combina este status com as reservas confirmadas.
type StatusArea string

const (
	AreaAtiva      StatusArea = "ATIVO"
	AreaManutencao StatusArea = "MANUTENCAO"
	AreaInativa    StatusArea = "INATIVO"
	AreaOcupada    StatusArea = "OCUPADO"
)

// AreaComum is a bookable common area (pool, barbecue, party hall...)
type AreaComum struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Nome       string     `gorm:"type:varchar(60);not null" json:"nome"`
	Capacidade int        `gorm:"not null" json:"capacidade"`
	Preco      float64    `gorm:"not null" json:"preco"`
	Status     StatusArea `gorm:"type:varchar(12);default:ATIVO" json:"status"`
}
