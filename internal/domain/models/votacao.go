package models

import "time"

// Votacao is a poll opened by the administration with at least two
// options; residents vote once inside the start/end window.
type Votacao struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Titulo     string    `gorm:"type:varchar(100);not null" json:"titulo"`
	Descricao  string    `gorm:"type:varchar(500);not null" json:"descricao"`
	DataInicio time.Time `json:"dataInicio"`
	DataFim    time.Time `json:"dataFim"`
	AdminID    string    `gorm:"type:varchar(36);not null" json:"adminId"`
	CreatedAt  time.Time `json:"createdAt"`

	Opcoes []OpcaoVotacao `gorm:"foreignKey:VotacaoID" json:"opcoes,omitempty"`
}

// OpcaoVotacao is one selectable option of a poll
type OpcaoVotacao struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Texto     string `gorm:"type:varchar(100);not null" json:"texto"`
	VotacaoID uint   `gorm:"not null;index" json:"votacaoId"`
}

// Voto records a resident's single vote on a poll. The composite
// unique index enforces one vote per (cliente, votacao).
type Voto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClienteID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_voto_unico" json:"clienteId"`
	VotacaoID uint      `gorm:"not null;uniqueIndex:idx_voto_unico" json:"votacaoId"`
	OpcaoID   uint      `gorm:"not null" json:"opcaoId"`
	DataVoto  time.Time `gorm:"autoCreateTime;index" json:"dataVoto"`

	Votacao *Votacao      `gorm:"foreignKey:VotacaoID" json:"votacao,omitempty"`
	Opcao   *OpcaoVotacao `gorm:"foreignKey:OpcaoID" json:"opcao,omitempty"`
}
