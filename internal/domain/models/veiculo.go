package models

import "time"

// TipoVeiculo enumera os tipos aceitos na garagem
type TipoVeiculo string

const (
	VeiculoCarro TipoVeiculo = "CARRO"
	VeiculoMoto  TipoVeiculo = "MOTO"
	VeiculoOutro TipoVeiculo = "OUTRO"
)

// Veiculo belongs to a residence and is listed on the resident's feed
type Veiculo struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Marca        string      `gorm:"type:varchar(40);not null" json:"marca"`
	Modelo       string      `gorm:"type:varchar(60);not null" json:"modelo"`
	Ano          int         `gorm:"not null" json:"ano"`
	Cor          string      `gorm:"type:varchar(30);not null" json:"cor"`
	Placa        string      `gorm:"type:varchar(7);not null" json:"placa"`
	Garagem      string      `gorm:"type:varchar(4)" json:"garagem"`
	TipoVeiculo  TipoVeiculo `gorm:"type:varchar(10)" json:"tipoVeiculo"`
	Proprietario string      `gorm:"type:varchar(100)" json:"proprietario"`
	ResidenciaID uint        `gorm:"not null;index" json:"residenciaId"`
	ClienteID    string      `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt    time.Time   `json:"createdAt"`
}
