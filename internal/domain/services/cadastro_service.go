package services

import (
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// CadastroInput is the full onboarding payload: the account plus its
// first residence, contact channels and any occupants/vehicles.
type CadastroInput struct {
	Cliente    models.Cliente
	Residencia models.Residencia
	Contato    models.Contato
	Moradores  []models.Morador
	Veiculos   []models.Veiculo
}

// InterfaceCadastroService defines the onboarding service interface
type InterfaceCadastroService interface {
	CadastrarCompleto(input *CadastroInput) (*models.Cliente, error)
}

// CadastroService creates the whole resident record set atomically:
// either the account and everything under it exist, or nothing does.
type CadastroService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCadastroService creates a new onboarding service
func NewCadastroService(db *gorm.DB, cfg *config.Config) InterfaceCadastroService {
	return &CadastroService{
		DB:     db,
		Config: cfg,
	}
}

func (s *CadastroService) CadastrarCompleto(input *CadastroInput) (*models.Cliente, error) {
	input.Cliente.CPF = utils.LimpaCPF(input.Cliente.CPF)

	var count int64
	if err := s.DB.Model(&models.Cliente{}).
		Where("cpf = ?", input.Cliente.CPF).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCPFJaCadastrado
	}
	if err := s.DB.Model(&models.Cliente{}).
		Where("email = ?", input.Cliente.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailJaCadastrado
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&input.Cliente).Error; err != nil {
			return err
		}

		input.Residencia.ClienteID = input.Cliente.ID
		if err := tx.Create(&input.Residencia).Error; err != nil {
			return err
		}

		input.Contato.ClienteID = input.Cliente.ID
		if err := tx.Create(&input.Contato).Error; err != nil {
			return err
		}

		for i := range input.Moradores {
			input.Moradores[i].ClienteID = input.Cliente.ID
			input.Moradores[i].ResidenciaID = input.Residencia.ID
			input.Moradores[i].CPF = utils.LimpaCPF(input.Moradores[i].CPF)
		}
		if len(input.Moradores) > 0 {
			if err := tx.Create(&input.Moradores).Error; err != nil {
				return err
			}
		}

		for i := range input.Veiculos {
			input.Veiculos[i].ClienteID = input.Cliente.ID
			input.Veiculos[i].ResidenciaID = input.Residencia.ID
		}
		if len(input.Veiculos) > 0 {
			if err := tx.Create(&input.Veiculos).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var criado models.Cliente
	if err := s.DB.Preload("Residencias").Preload("Contatos").
		First(&criado, "id = ?", input.Cliente.ID).Error; err != nil {
		return nil, err
	}
	return &criado, nil
}
