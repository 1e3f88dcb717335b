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

// VisitanteController handles the concierge walk-in gate log
type VisitanteController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitanteController creates a new gate-log controller
func NewVisitanteController(ctx *gin.Context, container *container.ServiceContainer) *VisitanteController {
	return &VisitanteController{
		Ctx:       ctx,
		Container: container,
	}
}

// VisitanteRequest is the entry payload
type VisitanteRequest struct {
	Nome        string `json:"nome" binding:"required,max=100"`
	CPF         string `json:"cpf" binding:"required,min=11,max=14"`
	NumeroCasa  string `json:"numeroCasa" binding:"required,max=4"`
	Placa       string `json:"placa" binding:"omitempty,len=7"`
	Observacoes string `json:"observacoes" binding:"omitempty,max=191"`
}

func (c *VisitanteController) service() services.InterfaceVisitanteService {
	return c.Container.GetService("visitante").(services.InterfaceVisitanteService)
}

func (c *VisitanteController) GetVisitantes() {
	if c.Ctx.Query("dentro") == "true" {
		visitantes, err := c.service().GetVisitantesDentro()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, visitantes)
		return
	}

	visitantes, err := c.service().GetAllVisitantes()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, visitantes)
}

func (c *VisitanteController) RegistrarEntrada() {
	var req VisitanteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	visitante := models.Visitante{
		Nome:        req.Nome,
		CPF:         req.CPF,
		NumeroCasa:  req.NumeroCasa,
		Placa:       req.Placa,
		Observacoes: req.Observacoes,
		PorteiroID:  middleware.UserID(c.Ctx),
	}
	if err := c.service().RegistrarEntrada(&visitante); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, visitante)
}

// RegistrarEntradaAgendada dá entrada em alguém agendado por um
// morador e sincroniza a visita/prestador correspondente
// @Summary      Entrada de visitante agendado
// @Tags         Visitante
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body VisitanteRequest true "Visitante"
// @Success      201 {object} models.Visitante
// @Failure      400 {object} response.ErroResponse
// @Router       /visitantes/entrada-agendada [post]
func (c *VisitanteController) RegistrarEntradaAgendada() {
	var req VisitanteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	visitante := models.Visitante{
		Nome:        req.Nome,
		CPF:         req.CPF,
		NumeroCasa:  req.NumeroCasa,
		Placa:       req.Placa,
		Observacoes: req.Observacoes,
		PorteiroID:  middleware.UserID(c.Ctx),
	}
	if err := c.service().RegistrarEntradaAgendada(&visitante); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, visitante)
}

// GetHoje é o painel unificado da portaria para o dia
func (c *VisitanteController) GetHoje() {
	painel, err := c.service().GetVisitantesHoje()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, painel)
}

func (c *VisitanteController) RegistrarSaida() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	visitante, err := c.service().RegistrarSaida(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, visitante)
}

func (c *VisitanteController) DeleteVisitante() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteVisitante(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleVisitanteFunc returns a gin handler dispatching to the controller
func HandleVisitanteFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitanteController(ctx, container)

		switch method {
		case "getVisitantes":
			controller.GetVisitantes()
		case "registrarEntrada":
			controller.RegistrarEntrada()
		case "registrarEntradaAgendada":
			controller.RegistrarEntradaAgendada()
		case "getHoje":
			controller.GetHoje()
		case "registrarSaida":
			controller.RegistrarSaida()
		case "deleteVisitante":
			controller.DeleteVisitante()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
