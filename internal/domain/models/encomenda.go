package models

import "time"

// StatusEncomenda lifecycle: AGUARDANDO_RETIRADA -> ENTREGUE
type StatusEncomenda string

const (
	EncomendaAguardandoRetirada StatusEncomenda = "AGUARDANDO_RETIRADA"
	EncomendaEntregue           StatusEncomenda = "ENTREGUE"
)

// Encomenda is a package arrival registered by the front desk for a
// resident, retrieved later against the pickup code.
type Encomenda struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Nome            string          `gorm:"type:varchar(100);not null" json:"nome"`
	Remetente       string          `gorm:"type:varchar(100);not null" json:"remetente"`
	Tamanho         string          `gorm:"type:varchar(20);not null" json:"tamanho"`
	Codigo          string          `gorm:"type:varchar(20)" json:"codigo"`
	CodigoRastreio  string          `gorm:"type:varchar(60)" json:"codigorastreio"`
	Status          StatusEncomenda `gorm:"type:varchar(20);default:AGUARDANDO_RETIRADA" json:"status"`
	DataChegada     time.Time       `gorm:"index" json:"dataChegada"`
	DataRetirada    *time.Time      `json:"dataRetirada"`
	ClienteID       string          `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	AdminRegistroID string          `gorm:"type:varchar(36)" json:"adminRegistroId"`
	AdminEntregaID  *string         `gorm:"type:varchar(36)" json:"adminEntregaId"`
}
