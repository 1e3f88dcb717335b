package services

import (
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClienteNormalizaCPFEHashSenha(t *testing.T) {
	db := setupTestDB(t)
	service := NewClienteService(db, testConfig())

	cliente := &models.Cliente{
		Nome:     "Ana Souza",
		CPF:      "123.456.789-09",
		RG:       "112223334",
		Email:    "ana@teste.com",
		DataNasc: time.Date(1992, 5, 20, 0, 0, 0, 0, time.UTC),
		Senha:    "senha123",
	}
	require.NoError(t, service.CreateCliente(cliente))

	assert.Equal(t, "12345678909", cliente.CPF)
	assert.NotEmpty(t, cliente.ID)
	assert.NotEqual(t, "senha123", cliente.Senha)
	assert.True(t, utils.CheckPasswordHash("senha123", cliente.Senha))
}

func TestCreateClienteCPFDuplicado(t *testing.T) {
	db := setupTestDB(t)
	service := NewClienteService(db, testConfig())
	existente := criaCliente(t, db, "Ana")

	err := service.CreateCliente(&models.Cliente{
		Nome: "Outra Ana", CPF: existente.CPF, RG: "999888777",
		Email: "outra@teste.com", Senha: "senha123",
	})
	assert.ErrorIs(t, err, ErrCPFJaCadastrado)

	err = service.CreateCliente(&models.Cliente{
		Nome: "Outra Ana", CPF: "98765432100", RG: "999888777",
		Email: existente.Email, Senha: "senha123",
	})
	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
}

func TestDeactivateClienteRegistraAuditoria(t *testing.T) {
	db := setupTestDB(t)
	service := NewClienteService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	require.NoError(t, service.DeactivateCliente(cliente.ID, "admin-1"))

	atual, err := service.GetClienteByID(cliente.ID)
	require.NoError(t, err)
	assert.False(t, atual.Ativo)

	var logs []models.LogAdmin
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "admin-1", logs[0].AdminID)
	assert.Contains(t, logs[0].Descricao, "Desativou")
}

func TestDeleteClienteRemoveDependentes(t *testing.T) {
	db := setupTestDB(t)
	service := NewClienteService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")
	residencia := criaResidencia(t, db, cliente.ID)

	require.NoError(t, db.Create(&models.Veiculo{
		Marca: "Fiat", Modelo: "Uno", Ano: 2018, Cor: "Prata", Placa: "ABC1D23",
		ResidenciaID: residencia.ID, ClienteID: cliente.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Notificacao{
		Mensagem: "Bem-vinda", ClienteID: cliente.ID,
	}).Error)

	require.NoError(t, service.DeleteCliente(cliente.ID, "admin-1"))

	_, err := service.GetClienteByID(cliente.ID)
	assert.ErrorIs(t, err, ErrNaoEncontrado)

	var veiculos, notificacoes, residencias int64
	db.Model(&models.Veiculo{}).Count(&veiculos)
	db.Model(&models.Notificacao{}).Count(&notificacoes)
	db.Model(&models.Residencia{}).Count(&residencias)
	assert.Zero(t, veiculos)
	assert.Zero(t, notificacoes)
	assert.Zero(t, residencias)
}

func TestUpdateClienteTrocaSenha(t *testing.T) {
	db := setupTestDB(t)
	service := NewClienteService(db, testConfig())
	cliente := criaCliente(t, db, "Ana")

	atualizado, err := service.UpdateCliente(cliente.ID, map[string]interface{}{
		"senha": "nova-senha",
	})
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("nova-senha", atualizado.Senha))
}

func TestEnsureDefaultAdminIdempotente(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	service := NewAdminService(db, cfg)

	require.NoError(t, service.EnsureDefaultAdmin())
	require.NoError(t, service.EnsureDefaultAdmin())

	var admins []models.Admin
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, cfg.DefaultAdminCPF, admins[0].CPF)
	assert.Equal(t, 5, admins[0].Nivel)
}
