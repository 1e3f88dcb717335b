package services

import (
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ContagemPorChave is a grouped counter row
type ContagemPorChave struct {
	Chave string `json:"chave" gorm:"column:chave"`
	Total int64  `json:"total" gorm:"column:total"`
}

// DashboardResumo is the administration overview payload
type DashboardResumo struct {
	TotalClientes        int64              `json:"totalClientes"`
	TotalResidencias     int64              `json:"totalResidencias"`
	TotalVeiculos        int64              `json:"totalVeiculos"`
	EncomendasPendentes  int64              `json:"encomendasPendentes"`
	ReservasPendentes    int64              `json:"reservasPendentes"`
	ManutencoesPendentes int64              `json:"manutencoesPendentes"`
	VisitantesDentro     int64              `json:"visitantesDentro"`
	VeiculosPorModelo    []ContagemPorChave `json:"veiculosPorModelo"`
	ClientesPorEstado    []ContagemPorChave `json:"clientesPorEstadoCivil"`
}

// InterfaceDashboardService defines the dashboard service interface
type InterfaceDashboardService interface {
	GetResumo() (*DashboardResumo, error)
}

// DashboardService aggregates the administration counters. The whole
// payload is cached in Redis for one minute; the counts are approximate
// by nature so staleness is acceptable.
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

const dashboardCacheKey = "dashboard:resumo"

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, cfg *config.Config, redis InterfaceRedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
	}
}

func (s *DashboardService) GetResumo() (*DashboardResumo, error) {
	if s.Redis != nil {
		var cached DashboardResumo
		if err := s.Redis.Get(dashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	resumo := &DashboardResumo{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&resumo.TotalClientes, s.DB.Model(&models.Cliente{}).Where("ativo = ?", true)},
		{&resumo.TotalResidencias, s.DB.Model(&models.Residencia{})},
		{&resumo.TotalVeiculos, s.DB.Model(&models.Veiculo{})},
		{&resumo.EncomendasPendentes, s.DB.Model(&models.Encomenda{}).Where("status = ?", models.EncomendaAguardandoRetirada)},
		{&resumo.ReservasPendentes, s.DB.Model(&models.Reserva{}).Where("status = ?", models.ReservaPendente)},
		{&resumo.ManutencoesPendentes, s.DB.Model(&models.Manutencao{}).Where("status = ?", models.ManutencaoPendente)},
		{&resumo.VisitantesDentro, s.DB.Model(&models.Visitante{}).Where("status = ?", models.VisitaDentro)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.Model(&models.Veiculo{}).
		Select("modelo AS chave, COUNT(*) AS total").
		Group("modelo").Order("total DESC").Limit(10).
		Scan(&resumo.VeiculosPorModelo).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Cliente{}).
		Select("estado_civil AS chave, COUNT(*) AS total").
		Group("estado_civil").
		Scan(&resumo.ClientesPorEstado).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		_ = s.Redis.Set(dashboardCacheKey, resumo, time.Minute)
	}
	return resumo, nil
}
