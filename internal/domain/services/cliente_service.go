package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// InterfaceClienteService defines the cliente service interface
type InterfaceClienteService interface {
	GetAllClientes() ([]models.Cliente, error)
	GetClienteByID(id string) (*models.Cliente, error)
	CreateCliente(cliente *models.Cliente) error
	UpdateCliente(id string, updates map[string]interface{}) (*models.Cliente, error)
	DeactivateCliente(id, adminID string) error
	DeleteCliente(id, adminID string) error
}

// ClienteService manages resident accounts
type ClienteService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewClienteService creates a new cliente service
func NewClienteService(db *gorm.DB, cfg *config.Config) InterfaceClienteService {
	return &ClienteService{
		DB:     db,
		Config: cfg,
	}
}

func (s *ClienteService) GetAllClientes() ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := s.DB.Preload("Residencias").Preload("Contatos").
		Order("nome ASC").Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (s *ClienteService) GetClienteByID(id string) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := s.DB.Preload("Residencias").Preload("Contatos").
		First(&cliente, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &cliente, nil
}

// CreateCliente validates CPF/email uniqueness before inserting. The
// password hash and UUID are handled by the model hook.
func (s *ClienteService) CreateCliente(cliente *models.Cliente) error {
	cliente.CPF = utils.LimpaCPF(cliente.CPF)

	var count int64
	if err := s.DB.Model(&models.Cliente{}).Where("cpf = ?", cliente.CPF).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCPFJaCadastrado
	}
	if err := s.DB.Model(&models.Cliente{}).Where("email = ?", cliente.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailJaCadastrado
	}

	return s.DB.Create(cliente).Error
}

func (s *ClienteService) UpdateCliente(id string, updates map[string]interface{}) (*models.Cliente, error) {
	cliente, err := s.GetClienteByID(id)
	if err != nil {
		return nil, err
	}

	if email, ok := updates["email"].(string); ok && email != cliente.Email {
		var count int64
		if err := s.DB.Model(&models.Cliente{}).
			Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailJaCadastrado
		}
	}

	// Password updates go through the same bcrypt path as creation
	if senha, ok := updates["senha"].(string); ok && senha != "" {
		hash, err := utils.HashPassword(senha)
		if err != nil {
			return nil, err
		}
		updates["senha"] = hash
	}

	if err := s.DB.Model(&models.Cliente{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetClienteByID(id)
}

// DeactivateCliente flips Ativo off and leaves the history intact
func (s *ClienteService) DeactivateCliente(id, adminID string) error {
	cliente, err := s.GetClienteByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Model(cliente).Update("ativo", false).Error; err != nil {
		return err
	}
	return s.registraLog(adminID, "Desativou cliente", cliente.Nome)
}

// DeleteCliente removes the account and its dependent rows in one
// transaction, then writes an audit entry.
func (s *ClienteService) DeleteCliente(id, adminID string) error {
	cliente, err := s.GetClienteByID(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&models.Contato{}, &models.Morador{}, &models.Veiculo{},
			&models.Visita{}, &models.Prestador{}, &models.Encomenda{},
			&models.Reserva{}, &models.Pagamento{}, &models.Sugestao{},
			&models.Notificacao{}, &models.Manutencao{}, &models.Voto{},
		} {
			if err := tx.Where("cliente_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("cliente_id = ?", id).Delete(&models.Residencia{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cliente{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}
	return s.registraLog(adminID, "Excluiu cliente", cliente.Nome)
}

func (s *ClienteService) registraLog(adminID, descricao, complemento string) error {
	if adminID == "" {
		return nil
	}
	return s.DB.Create(&models.LogAdmin{
		Descricao:   descricao,
		Complemento: complemento,
		AdminID:     adminID,
	}).Error
}
