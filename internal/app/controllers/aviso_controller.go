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

// AvisoController handles announcement requests
type AvisoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAvisoController creates a new announcement controller
func NewAvisoController(ctx *gin.Context, container *container.ServiceContainer) *AvisoController {
	return &AvisoController{
		Ctx:       ctx,
		Container: container,
	}
}

// AvisoRequest is the announcement payload
type AvisoRequest struct {
	Titulo    string `json:"titulo" binding:"required,max=100"`
	Descricao string `json:"descricao" binding:"required"`
	Tipo      string `json:"tipo" binding:"omitempty,oneof=GERAL URGENTE MANUTENCAO"`
}

func (c *AvisoController) service() services.InterfaceAvisoService {
	return c.Container.GetService("aviso").(services.InterfaceAvisoService)
}

func (c *AvisoController) GetAvisos() {
	avisos, err := c.service().GetAllAvisos()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, avisos)
}

func (c *AvisoController) GetAviso() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	aviso, err := c.service().GetAvisoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, aviso)
}

// CreateAviso publica um aviso; também é enviado no tópico MQTT
func (c *AvisoController) CreateAviso() {
	var req AvisoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	aviso := models.Aviso{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		Tipo:      models.TipoAviso(req.Tipo),
		AdminID:   middleware.UserID(c.Ctx),
	}
	if err := c.service().CreateAviso(&aviso); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	middleware.InvalidateCache()
	c.Ctx.JSON(http.StatusCreated, aviso)
}

func (c *AvisoController) UpdateAviso() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	var req struct {
		Titulo    string `json:"titulo" binding:"omitempty,max=100"`
		Descricao string `json:"descricao" binding:"omitempty"`
		Tipo      string `json:"tipo" binding:"omitempty,oneof=GERAL URGENTE MANUTENCAO"`
	}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Titulo != "" {
		updates["titulo"] = req.Titulo
	}
	if req.Descricao != "" {
		updates["descricao"] = req.Descricao
	}
	if req.Tipo != "" {
		updates["tipo"] = req.Tipo
	}

	aviso, err := c.service().UpdateAviso(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	middleware.InvalidateCache()
	c.Ctx.JSON(http.StatusOK, aviso)
}

func (c *AvisoController) DeleteAviso() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteAviso(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	middleware.InvalidateCache()
	c.Ctx.Status(http.StatusNoContent)
}

// HandleAvisoFunc returns a gin handler dispatching to the controller
func HandleAvisoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAvisoController(ctx, container)

		switch method {
		case "getAvisos":
			controller.GetAvisos()
		case "getAviso":
			controller.GetAviso()
		case "createAviso":
			controller.CreateAviso()
		case "updateAviso":
			controller.UpdateAviso()
		case "deleteAviso":
			controller.DeleteAviso()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
