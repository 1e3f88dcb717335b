package controllers

import (
	"net/http"

	"github.com/Hellwig19/Com-Dominium-API/internal/app/middleware"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// ManutencaoController handles maintenance-ticket requests
type ManutencaoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewManutencaoController creates a new maintenance controller
func NewManutencaoController(ctx *gin.Context, container *container.ServiceContainer) *ManutencaoController {
	return &ManutencaoController{
		Ctx:       ctx,
		Container: container,
	}
}

// ManutencaoRequest is the ticket payload
type ManutencaoRequest struct {
	Titulo     string `json:"titulo" binding:"required,max=100"`
	Descricao  string `json:"descricao" binding:"required"`
	Prioridade bool   `json:"prioridade"`
}

func (c *ManutencaoController) service() services.InterfaceManutencaoService {
	return c.Container.GetService("manutencao").(services.InterfaceManutencaoService)
}

// GetManutencoes: administração vê a fila completa, morador os próprios chamados
func (c *ManutencaoController) GetManutencoes() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		manutencoes, err := c.service().GetAllManutencoes()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, manutencoes)
		return
	}

	manutencoes, err := c.service().GetManutencoesByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, manutencoes)
}

func (c *ManutencaoController) GetManutencao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	manutencao, err := c.service().GetManutencaoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, manutencao.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, manutencao)
}

func (c *ManutencaoController) CreateManutencao() {
	var req ManutencaoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	manutencao := models.Manutencao{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Prioridade: req.Prioridade,
		ClienteID:  middleware.UserID(c.Ctx),
	}
	if err := c.service().CreateManutencao(&manutencao); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, manutencao)
}

// PrioridadeRequest flags the ticket as urgent or not
type PrioridadeRequest struct {
	Prioridade *bool `json:"prioridade" binding:"required"`
}

// AlterarPrioridade muda a urgência do chamado
func (c *ManutencaoController) AlterarPrioridade() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	var req PrioridadeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}
	manutencao, err := c.service().AlterarPrioridade(id, *req.Prioridade)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, manutencao)
}

// Concluir fecha o chamado e notifica o morador
func (c *ManutencaoController) Concluir() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	manutencao, err := c.service().Concluir(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, manutencao)
}

func (c *ManutencaoController) DeleteManutencao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	manutencao, err := c.service().GetManutencaoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, manutencao.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeleteManutencao(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleManutencaoFunc returns a gin handler dispatching to the controller
func HandleManutencaoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewManutencaoController(ctx, container)

		switch method {
		case "getManutencoes":
			controller.GetManutencoes()
		case "getManutencao":
			controller.GetManutencao()
		case "createManutencao":
			controller.CreateManutencao()
		case "alterarPrioridade":
			controller.AlterarPrioridade()
		case "concluir":
			controller.Concluir()
		case "deleteManutencao":
			controller.DeleteManutencao()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
