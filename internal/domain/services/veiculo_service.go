package services

import (
	"errors"
	"strings"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceVeiculoService defines the vehicle service interface
type InterfaceVeiculoService interface {
	GetAllVeiculos() ([]models.Veiculo, error)
	GetVeiculosByCliente(clienteID string) ([]models.Veiculo, error)
	GetVeiculoByID(id uint) (*models.Veiculo, error)
	GetVeiculoByPlaca(placa string) (*models.Veiculo, error)
	CreateVeiculo(veiculo *models.Veiculo) error
	UpdateVeiculo(id uint, updates map[string]interface{}) (*models.Veiculo, error)
	DeleteVeiculo(id uint) error
}

// VeiculoService manages garage vehicles
type VeiculoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVeiculoService creates a new vehicle service
func NewVeiculoService(db *gorm.DB, cfg *config.Config) InterfaceVeiculoService {
	return &VeiculoService{
		DB:     db,
		Config: cfg,
	}
}

func (s *VeiculoService) GetAllVeiculos() ([]models.Veiculo, error) {
	var veiculos []models.Veiculo
	if err := s.DB.Order("placa ASC").Find(&veiculos).Error; err != nil {
		return nil, err
	}
	return veiculos, nil
}

func (s *VeiculoService) GetVeiculosByCliente(clienteID string) ([]models.Veiculo, error) {
	var veiculos []models.Veiculo
	if err := s.DB.Where("cliente_id = ?", clienteID).Find(&veiculos).Error; err != nil {
		return nil, err
	}
	return veiculos, nil
}

func (s *VeiculoService) GetVeiculoByID(id uint) (*models.Veiculo, error) {
	var veiculo models.Veiculo
	if err := s.DB.First(&veiculo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &veiculo, nil
}

// GetVeiculoByPlaca is the concierge lookup used at the gate
func (s *VeiculoService) GetVeiculoByPlaca(placa string) (*models.Veiculo, error) {
	var veiculo models.Veiculo
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if err := s.DB.Where("placa = ?", placa).First(&veiculo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &veiculo, nil
}

func (s *VeiculoService) CreateVeiculo(veiculo *models.Veiculo) error {
	veiculo.Placa = strings.ToUpper(strings.TrimSpace(veiculo.Placa))

	var count int64
	if err := s.DB.Model(&models.Veiculo{}).Where("placa = ?", veiculo.Placa).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrPlacaJaCadastrada
	}

	var residencia models.Residencia
	if err := s.DB.First(&residencia, veiculo.ResidenciaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	veiculo.ClienteID = residencia.ClienteID
	return s.DB.Create(veiculo).Error
}

func (s *VeiculoService) UpdateVeiculo(id uint, updates map[string]interface{}) (*models.Veiculo, error) {
	veiculo, err := s.GetVeiculoByID(id)
	if err != nil {
		return nil, err
	}

	if placa, ok := updates["placa"].(string); ok {
		placa = strings.ToUpper(strings.TrimSpace(placa))
		if placa != veiculo.Placa {
			var count int64
			if err := s.DB.Model(&models.Veiculo{}).
				Where("placa = ? AND id != ?", placa, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrPlacaJaCadastrada
			}
		}
		updates["placa"] = placa
	}

	if err := s.DB.Model(&models.Veiculo{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetVeiculoByID(id)
}

func (s *VeiculoService) DeleteVeiculo(id uint) error {
	veiculo, err := s.GetVeiculoByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(veiculo).Error
}
