package controllers

import (
	"net/http"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/app/middleware"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// AreaController handles the common-areas catalog
type AreaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAreaController creates a new common-area controller
func NewAreaController(ctx *gin.Context, container *container.ServiceContainer) *AreaController {
	return &AreaController{
		Ctx:       ctx,
		Container: container,
	}
}

// AreaRequest is the catalog payload
type AreaRequest struct {
	Nome       string  `json:"nome" binding:"required,max=60"`
	Capacidade int     `json:"capacidade" binding:"required,gt=0"`
	Preco      float64 `json:"preco" binding:"gte=0"`
	Status     string  `json:"status" binding:"omitempty,oneof=ATIVO MANUTENCAO INATIVO OCUPADO"`
}

func (c *AreaController) service() services.InterfaceAreaService {
	return c.Container.GetService("area").(services.InterfaceAreaService)
}

// GetAreas lista o catálogo; ?data=2006-01-02 inclui a disponibilidade
func (c *AreaController) GetAreas() {
	if q := c.Ctx.Query("data"); q != "" {
		data, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.Ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Data inválida."})
			return
		}
		disponibilidade, err := c.service().GetDisponibilidade(data)
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, disponibilidade)
		return
	}

	areas, err := c.service().GetAllAreas()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, areas)
}

func (c *AreaController) GetArea() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	area, err := c.service().GetAreaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, area)
}

func (c *AreaController) CreateArea() {
	var req AreaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	area := models.AreaComum{
		Nome:       req.Nome,
		Capacidade: req.Capacidade,
		Preco:      req.Preco,
		Status:     models.StatusArea(req.Status),
	}
	if err := c.service().CreateArea(&area); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	middleware.InvalidateCache()
	c.Ctx.JSON(http.StatusCreated, area)
}

func (c *AreaController) UpdateArea() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	var req struct {
		Nome       string  `json:"nome" binding:"omitempty,max=60"`
		Capacidade int     `json:"capacidade" binding:"omitempty,gt=0"`
		Preco      float64 `json:"preco" binding:"omitempty,gte=0"`
		Status     string  `json:"status" binding:"omitempty,oneof=ATIVO MANUTENCAO INATIVO OCUPADO"`
	}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Nome != "" {
		updates["nome"] = req.Nome
	}
	if req.Capacidade != 0 {
		updates["capacidade"] = req.Capacidade
	}
	if req.Preco != 0 {
		updates["preco"] = req.Preco
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	area, err := c.service().UpdateArea(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	middleware.InvalidateCache()
	c.Ctx.JSON(http.StatusOK, area)
}

func (c *AreaController) DeleteArea() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteArea(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	middleware.InvalidateCache()
	c.Ctx.Status(http.StatusNoContent)
}

// HandleAreaFunc returns a gin handler dispatching to the controller
func HandleAreaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAreaController(ctx, container)

		switch method {
		case "getAreas":
			controller.GetAreas()
		case "getArea":
			controller.GetArea()
		case "createArea":
			controller.CreateArea()
		case "updateArea":
			controller.UpdateArea()
		case "deleteArea":
			controller.DeleteArea()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
