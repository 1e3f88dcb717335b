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

// VotacaoController handles poll requests
type VotacaoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVotacaoController creates a new poll controller
func NewVotacaoController(ctx *gin.Context, container *container.ServiceContainer) *VotacaoController {
	return &VotacaoController{
		Ctx:       ctx,
		Container: container,
	}
}

// VotacaoRequest is the poll creation payload
type VotacaoRequest struct {
	Titulo     string   `json:"titulo" binding:"required,max=100"`
	Descricao  string   `json:"descricao" binding:"omitempty"`
	DataInicio string   `json:"dataInicio" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DataFim    string   `json:"dataFim" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Opcoes     []string `json:"opcoes" binding:"required,min=2,dive,required,max=100"`
}

// VotoRequest is the ballot payload
type VotoRequest struct {
	OpcaoID uint `json:"opcaoId" binding:"required"`
}

func (c *VotacaoController) service() services.InterfaceVotacaoService {
	return c.Container.GetService("votacao").(services.InterfaceVotacaoService)
}

func (c *VotacaoController) GetVotacoes() {
	votacoes, err := c.service().GetAllVotacoes()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, votacoes)
}

func (c *VotacaoController) GetVotacao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	votacao, err := c.service().GetVotacaoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, votacao)
}

func (c *VotacaoController) CreateVotacao() {
	var req VotacaoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	inicio, _ := time.Parse(time.RFC3339, req.DataInicio)
	fim, _ := time.Parse(time.RFC3339, req.DataFim)
	if !fim.After(inicio) {
		c.Ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Data de encerramento deve ser posterior ao início."})
		return
	}

	votacao := models.Votacao{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		DataInicio: inicio,
		DataFim:    fim,
		AdminID:    middleware.UserID(c.Ctx),
	}
	if err := c.service().CreateVotacao(&votacao, req.Opcoes); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, votacao)
}

// Votar registra o voto do morador autenticado
// @Summary      Votar em uma votação
// @Tags         Votacao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da votação"
// @Param        request body VotoRequest true "Opção escolhida"
// @Success      201 {object} models.Voto
// @Failure      400 {object} response.ErroResponse
// @Failure      409 {object} response.ErroResponse
// @Router       /votacoes/{id}/votar [post]
func (c *VotacaoController) Votar() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	var req VotoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	voto, err := c.service().Votar(id, req.OpcaoID, middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, voto)
}

func (c *VotacaoController) GetResultado() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	resultado, err := c.service().GetResultado(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, resultado)
}

func (c *VotacaoController) DeleteVotacao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteVotacao(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleVotacaoFunc returns a gin handler dispatching to the controller
func HandleVotacaoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVotacaoController(ctx, container)

		switch method {
		case "getVotacoes":
			controller.GetVotacoes()
		case "getVotacao":
			controller.GetVotacao()
		case "createVotacao":
			controller.CreateVotacao()
		case "votar":
			controller.Votar()
		case "getResultado":
			controller.GetResultado()
		case "deleteVotacao":
			controller.DeleteVotacao()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
