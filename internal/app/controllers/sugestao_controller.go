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

// SugestaoController handles suggestion-box requests
type SugestaoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSugestaoController creates a new suggestion controller
func NewSugestaoController(ctx *gin.Context, container *container.ServiceContainer) *SugestaoController {
	return &SugestaoController{
		Ctx:       ctx,
		Container: container,
	}
}

// SugestaoRequest is the suggestion payload
type SugestaoRequest struct {
	Titulo    string `json:"titulo" binding:"required,max=100"`
	Descricao string `json:"descricao" binding:"required"`
}

func (c *SugestaoController) service() services.InterfaceSugestaoService {
	return c.Container.GetService("sugestao").(services.InterfaceSugestaoService)
}

// GetSugestoes: administração vê todas, morador as próprias
func (c *SugestaoController) GetSugestoes() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		sugestoes, err := c.service().GetAllSugestoes()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, sugestoes)
		return
	}

	sugestoes, err := c.service().GetSugestoesByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, sugestoes)
}

func (c *SugestaoController) GetSugestao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	sugestao, err := c.service().GetSugestaoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, sugestao.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, sugestao)
}

func (c *SugestaoController) CreateSugestao() {
	var req SugestaoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	sugestao := models.Sugestao{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		ClienteID: middleware.UserID(c.Ctx),
	}
	if err := c.service().CreateSugestao(&sugestao); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, sugestao)
}

// MarcarLida: a administração confirma a leitura
func (c *SugestaoController) MarcarLida() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	sugestao, err := c.service().MarcarLida(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, sugestao)
}

func (c *SugestaoController) DeleteSugestao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	sugestao, err := c.service().GetSugestaoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, sugestao.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeleteSugestao(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleSugestaoFunc returns a gin handler dispatching to the controller
func HandleSugestaoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSugestaoController(ctx, container)

		switch method {
		case "getSugestoes":
			controller.GetSugestoes()
		case "getSugestao":
			controller.GetSugestao()
		case "createSugestao":
			controller.CreateSugestao()
		case "marcarLida":
			controller.MarcarLida()
		case "deleteSugestao":
			controller.DeleteSugestao()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
