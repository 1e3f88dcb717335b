package models

import (
	"time"

	"gorm.io/gorm"
)

// StatusReserva lifecycle: PENDENTE -> CONFIRMADA | CANCELADA
type StatusReserva string

const (
	ReservaPendente   StatusReserva = "PENDENTE"
	ReservaConfirmada StatusReserva = "CONFIRMADA"
	ReservaCancelada  StatusReserva = "CANCELADA"
)

// Reserva books a common area on a date/time slot. At most one
// PENDENTE or CONFIRMADA reservation may exist per (area, dataReserva);
// the check runs inside the creation transaction, and the unique index
// on ChaveConfirmada rejects a second CONFIRMADA row for the same slot
// at the storage layer.
type Reserva struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Area        string        `gorm:"type:varchar(60);not null;index:idx_area_data" json:"area"`
	DataReserva time.Time     `gorm:"not null;index:idx_area_data" json:"dataReserva"`
	Horario     string        `gorm:"type:varchar(5);not null" json:"horario"`
	Capacidade  int           `gorm:"not null" json:"capacidade"`
	Valor       float64       `gorm:"not null" json:"valor"`
	Status      StatusReserva `gorm:"type:varchar(12);default:PENDENTE" json:"status"`
	ClienteID   string        `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt   time.Time     `json:"createdAt"`

	// ChaveConfirmada holds "<area>|<dia>" while the booking is
	// CONFIRMADA and is null otherwise, so the unique index only
	// constrains confirmed bookings.
	ChaveConfirmada *string `gorm:"type:varchar(80);uniqueIndex" json:"-"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
}

// ChaveDia is the per-slot correlation key used by the unique index
func (r *Reserva) ChaveDia() string {
	return r.Area + "|" + r.DataReserva.Format("2006-01-02")
}

// BeforeSave keeps ChaveConfirmada in sync with the status
func (r *Reserva) BeforeSave(tx *gorm.DB) error {
	if r.Status == ReservaConfirmada {
		chave := r.ChaveDia()
		r.ChaveConfirmada = &chave
	} else {
		r.ChaveConfirmada = nil
	}
	return nil
}
