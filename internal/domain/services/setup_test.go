package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database. MaxOpenConns is
// pinned to one so the concurrent feed queries share the same memory
// database instead of getting fresh empty ones from the pool.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Cliente{},
		&models.Admin{},
		&models.LogAdmin{},
		&models.Residencia{},
		&models.Morador{},
		&models.Veiculo{},
		&models.Contato{},
		&models.Visita{},
		&models.Prestador{},
		&models.Visitante{},
		&models.Encomenda{},
		&models.Reserva{},
		&models.Pagamento{},
		&models.AreaComum{},
		&models.Aviso{},
		&models.Votacao{},
		&models.OpcaoVotacao{},
		&models.Voto{},
		&models.Sugestao{},
		&models.Notificacao{},
		&models.Manutencao{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "segredo-de-teste",
		JWTIssuer:            "com-dominium-teste",
		DefaultAdminCPF:      "00000000000",
		DefaultAdminPassword: "senha-admin",
	}
}

var clienteSeq int

func criaCliente(t *testing.T, db *gorm.DB, nome string) *models.Cliente {
	t.Helper()

	clienteSeq++
	cliente := &models.Cliente{
		Nome:        nome,
		CPF:         fmt.Sprintf("%011d", clienteSeq),
		RG:          "123456789",
		Email:       fmt.Sprintf("cliente%d@teste.com", clienteSeq),
		DataNasc:    time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC),
		EstadoCivil: models.EstadoCivilSolteiro,
		Senha:       "senha123",
	}
	require.NoError(t, db.Create(cliente).Error)
	return cliente
}

func criaResidencia(t *testing.T, db *gorm.DB, clienteID string) *models.Residencia {
	t.Helper()

	residencia := &models.Residencia{
		NumeroCasa: "42",
		Rua:        "Rua das Palmeiras",
		Tipo:       models.TipoCasa,
		ClienteID:  clienteID,
	}
	require.NoError(t, db.Create(residencia).Error)
	return residencia
}
