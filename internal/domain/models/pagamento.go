package models

import "time"

// StatusPagamento lifecycle: PENDENTE -> PAGO
type StatusPagamento string

const (
	PagamentoPendente StatusPagamento = "PENDENTE"
	PagamentoPago     StatusPagamento = "PAGO"
)

// MetodoPagamento enumera as formas de pagamento aceitas
type MetodoPagamento string

const (
	MetodoBoleto MetodoPagamento = "BOLETO"
	MetodoPix    MetodoPagamento = "PIX"
	MetodoCartao MetodoPagamento = "CARTAO"
)

// BoletosPrefixoReserva marks payments generated by a reservation.
// The link back to the reservation is a best-effort match on this
// prefix plus the exact amount; there is no foreign key (preserved
// behavior from the original schema).
const BoletosPrefixoReserva = "Reserva "

// Pagamento is a monetary obligation of a Cliente
type Pagamento struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Boletos         string          `gorm:"type:varchar(191);not null" json:"boletos"`
	DataVencimento  time.Time       `gorm:"index" json:"dataVencimento"`
	Valor           float64         `gorm:"not null" json:"valor"`
	MetodoPagamento MetodoPagamento `gorm:"type:varchar(10)" json:"metodoPagamento"`
	Status          StatusPagamento `gorm:"type:varchar(10);default:PENDENTE" json:"status"`
	DataPagamento   *time.Time      `json:"dataPagamento"`
	ClienteID       string          `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt       time.Time       `json:"createdAt"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
}
