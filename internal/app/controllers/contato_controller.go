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

// ContatoController handles contact-channel requests
type ContatoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContatoController creates a new contact controller
func NewContatoController(ctx *gin.Context, container *container.ServiceContainer) *ContatoController {
	return &ContatoController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContatoRequest is the create payload. Residents always write to
// their own record; the clienteId field is only honored for staff.
type ContatoRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Telefone  string `json:"telefone" binding:"required,max=20"`
	Whatsapp  string `json:"whatsapp" binding:"required,max=20"`
	ClienteID string `json:"clienteId" binding:"omitempty,uuid"`
}

func (c *ContatoController) service() services.InterfaceContatoService {
	return c.Container.GetService("contato").(services.InterfaceContatoService)
}

func (c *ContatoController) GetContatos() {
	clienteID := middleware.UserID(c.Ctx)
	if middleware.UserNivel(c.Ctx) >= 2 {
		if q := c.Ctx.Query("clienteId"); q != "" {
			clienteID = q
		}
	}

	contatos, err := c.service().GetContatosByCliente(clienteID)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, contatos)
}

func (c *ContatoController) CreateContato() {
	var req ContatoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	clienteID := middleware.UserID(c.Ctx)
	if middleware.UserNivel(c.Ctx) >= 2 && req.ClienteID != "" {
		clienteID = req.ClienteID
	}

	contato := models.Contato{
		Email:     req.Email,
		Telefone:  req.Telefone,
		Whatsapp:  req.Whatsapp,
		ClienteID: clienteID,
	}
	if err := c.service().CreateContato(&contato); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, contato)
}

func (c *ContatoController) UpdateContato() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	contato, err := c.service().GetContatoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, contato.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}

	var req struct {
		Email    string `json:"email" binding:"omitempty,email"`
		Telefone string `json:"telefone" binding:"omitempty,max=20"`
		Whatsapp string `json:"whatsapp" binding:"omitempty,max=20"`
	}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Telefone != "" {
		updates["telefone"] = req.Telefone
	}
	if req.Whatsapp != "" {
		updates["whatsapp"] = req.Whatsapp
	}

	atualizado, err := c.service().UpdateContato(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, atualizado)
}

func (c *ContatoController) DeleteContato() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	contato, err := c.service().GetContatoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, contato.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeleteContato(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleContatoFunc returns a gin handler dispatching to the controller
func HandleContatoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContatoController(ctx, container)

		switch method {
		case "getContatos":
			controller.GetContatos()
		case "createContato":
			controller.CreateContato()
		case "updateContato":
			controller.UpdateContato()
		case "deleteContato":
			controller.DeleteContato()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
