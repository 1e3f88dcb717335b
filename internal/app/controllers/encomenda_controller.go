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

// EncomendaController handles package requests
type EncomendaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEncomendaController creates a new package controller
func NewEncomendaController(ctx *gin.Context, container *container.ServiceContainer) *EncomendaController {
	return &EncomendaController{
		Ctx:       ctx,
		Container: container,
	}
}

// EncomendaRequest is the arrival payload registered by the front desk
type EncomendaRequest struct {
	Nome           string `json:"nome" binding:"required,max=100"`
	Remetente      string `json:"remetente" binding:"required,max=100"`
	Tamanho        string `json:"tamanho" binding:"required,oneof=PEQUENO MEDIO GRANDE"`
	CodigoRastreio string `json:"codigorastreio" binding:"omitempty,max=60"`
	ClienteID      string `json:"clienteId" binding:"required,uuid"`
}

func (c *EncomendaController) service() services.InterfaceEncomendaService {
	return c.Container.GetService("encomenda").(services.InterfaceEncomendaService)
}

// GetEncomendas: portaria vê todas (?pendentes=true filtra); morador as próprias
func (c *EncomendaController) GetEncomendas() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		if c.Ctx.Query("pendentes") == "true" {
			encomendas, err := c.service().GetEncomendasPendentes()
			if err != nil {
				trataErro(c.Ctx, err)
				return
			}
			c.Ctx.JSON(http.StatusOK, encomendas)
			return
		}
		encomendas, err := c.service().GetAllEncomendas()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, encomendas)
		return
	}

	encomendas, err := c.service().GetEncomendasByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, encomendas)
}

func (c *EncomendaController) GetEncomenda() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	encomenda, err := c.service().GetEncomendaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, encomenda.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, encomenda)
}

// RegistrarChegada registra a encomenda e notifica o morador
func (c *EncomendaController) RegistrarChegada() {
	var req EncomendaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	encomenda := models.Encomenda{
		Nome:            req.Nome,
		Remetente:       req.Remetente,
		Tamanho:         req.Tamanho,
		CodigoRastreio:  req.CodigoRastreio,
		ClienteID:       req.ClienteID,
		AdminRegistroID: middleware.UserID(c.Ctx),
	}
	if err := c.service().RegistrarChegada(&encomenda); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, encomenda)
}

// RegistrarRetirada entrega a encomenda ao morador
func (c *EncomendaController) RegistrarRetirada() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	encomenda, err := c.service().RegistrarRetirada(id, middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, encomenda)
}

func (c *EncomendaController) DeleteEncomenda() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteEncomenda(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleEncomendaFunc returns a gin handler dispatching to the controller
func HandleEncomendaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEncomendaController(ctx, container)

		switch method {
		case "getEncomendas":
			controller.GetEncomendas()
		case "getEncomenda":
			controller.GetEncomenda()
		case "registrarChegada":
			controller.RegistrarChegada()
		case "registrarRetirada":
			controller.RegistrarRetirada()
		case "deleteEncomenda":
			controller.DeleteEncomenda()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
