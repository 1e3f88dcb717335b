package services

import (
	"errors"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// AreaDisponibilidade is the catalog entry plus the day's occupation
type AreaDisponibilidade struct {
	models.AreaComum
	Disponivel bool `json:"disponivel"`
}

// InterfaceAreaService defines the common-area service interface
type InterfaceAreaService interface {
	GetAllAreas() ([]models.AreaComum, error)
	GetAreaByID(id uint) (*models.AreaComum, error)
	GetDisponibilidade(data time.Time) ([]AreaDisponibilidade, error)
	CreateArea(area *models.AreaComum) error
	UpdateArea(id uint, updates map[string]interface{}) (*models.AreaComum, error)
	DeleteArea(id uint) error
}

// AreaService manages the bookable common areas catalog
type AreaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAreaService creates a new common-area service
func NewAreaService(db *gorm.DB, cfg *config.Config) InterfaceAreaService {
	return &AreaService{
		DB:     db,
		Config: cfg,
	}
}

func (s *AreaService) GetAllAreas() ([]models.AreaComum, error) {
	var areas []models.AreaComum
	if err := s.DB.Order("nome ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *AreaService) GetAreaByID(id uint) (*models.AreaComum, error) {
	var area models.AreaComum
	if err := s.DB.First(&area, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &area, nil
}

// GetDisponibilidade crosses the catalog with the live reservations of
// the requested day
func (s *AreaService) GetDisponibilidade(data time.Time) ([]AreaDisponibilidade, error) {
	areas, err := s.GetAllAreas()
	if err != nil {
		return nil, err
	}

	inicio := data.Truncate(24 * time.Hour)
	fim := inicio.Add(24 * time.Hour)

	var reservadas []string
	if err := s.DB.Model(&models.Reserva{}).
		Where("data_reserva >= ? AND data_reserva < ? AND status != ?",
			inicio, fim, models.ReservaCancelada).
		Pluck("area", &reservadas).Error; err != nil {
		return nil, err
	}
	ocupadas := make(map[string]bool, len(reservadas))
	for _, nome := range reservadas {
		ocupadas[nome] = true
	}

	resultado := make([]AreaDisponibilidade, 0, len(areas))
	for _, area := range areas {
		resultado = append(resultado, AreaDisponibilidade{
			AreaComum:  area,
			Disponivel: area.Status == models.AreaAtiva && !ocupadas[area.Nome],
		})
	}
	return resultado, nil
}

func (s *AreaService) CreateArea(area *models.AreaComum) error {
	if area.Status == "" {
		area.Status = models.AreaAtiva
	}
	return s.DB.Create(area).Error
}

func (s *AreaService) UpdateArea(id uint, updates map[string]interface{}) (*models.AreaComum, error) {
	if _, err := s.GetAreaByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.AreaComum{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetAreaByID(id)
}

func (s *AreaService) DeleteArea(id uint) error {
	area, err := s.GetAreaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(area).Error
}
