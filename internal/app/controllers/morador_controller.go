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

// MoradorController handles occupant requests
type MoradorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMoradorController creates a new occupant controller
func NewMoradorController(ctx *gin.Context, container *container.ServiceContainer) *MoradorController {
	return &MoradorController{
		Ctx:       ctx,
		Container: container,
	}
}

// MoradorRequest is the create payload
type MoradorRequest struct {
	Nome         string `json:"nome" binding:"required,max=100"`
	Parentesco   string `json:"parentesco" binding:"required,max=40"`
	DataNasc     string `json:"dataNasc" binding:"required,datetime=2006-01-02"`
	CPF          string `json:"cpf" binding:"required,min=11,max=14"`
	Email        string `json:"email" binding:"omitempty,email"`
	Contato      string `json:"contato" binding:"required,max=20"`
	TipoMorador  string `json:"tipoMorador" binding:"required,oneof=TITULAR DEPENDENTE FUNCIONARIO"`
	ResidenciaID uint   `json:"residenciaId" binding:"required"`
}

func (c *MoradorController) service() services.InterfaceMoradorService {
	return c.Container.GetService("morador").(services.InterfaceMoradorService)
}

func (c *MoradorController) GetMoradores() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		moradores, err := c.service().GetAllMoradores()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, moradores)
		return
	}

	moradores, err := c.service().GetMoradoresByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, moradores)
}

func (c *MoradorController) GetMorador() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	morador, err := c.service().GetMoradorByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, morador.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, morador)
}

func (c *MoradorController) CreateMorador() {
	var req MoradorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	// Morador só cadastra ocupante em residência própria
	if middleware.UserNivel(c.Ctx) < 2 {
		residenciaService := c.Container.GetService("residencia").(services.InterfaceResidenciaService)
		residencia, err := residenciaService.GetResidenciaByID(req.ResidenciaID)
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		if residencia.ClienteID != middleware.UserID(c.Ctx) {
			response.Forbidden(c.Ctx, "")
			return
		}
	}

	dataNasc, _ := time.Parse("2006-01-02", req.DataNasc)
	morador := models.Morador{
		Nome:         req.Nome,
		Parentesco:   req.Parentesco,
		DataNasc:     dataNasc,
		CPF:          req.CPF,
		Email:        req.Email,
		Contato:      req.Contato,
		TipoMorador:  models.TipoMorador(req.TipoMorador),
		ResidenciaID: req.ResidenciaID,
	}
	if err := c.service().CreateMorador(&morador); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, morador)
}

func (c *MoradorController) UpdateMorador() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	morador, err := c.service().GetMoradorByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, morador.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}

	var req struct {
		Nome        string `json:"nome" binding:"omitempty,max=100"`
		Parentesco  string `json:"parentesco" binding:"omitempty,max=40"`
		Email       string `json:"email" binding:"omitempty,email"`
		Contato     string `json:"contato" binding:"omitempty,max=20"`
		TipoMorador string `json:"tipoMorador" binding:"omitempty,oneof=TITULAR DEPENDENTE FUNCIONARIO"`
	}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Nome != "" {
		updates["nome"] = req.Nome
	}
	if req.Parentesco != "" {
		updates["parentesco"] = req.Parentesco
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Contato != "" {
		updates["contato"] = req.Contato
	}
	if req.TipoMorador != "" {
		updates["tipo_morador"] = req.TipoMorador
	}

	atualizado, err := c.service().UpdateMorador(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, atualizado)
}

func (c *MoradorController) DeleteMorador() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	morador, err := c.service().GetMoradorByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, morador.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeleteMorador(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleMoradorFunc returns a gin handler dispatching to the controller
func HandleMoradorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMoradorController(ctx, container)

		switch method {
		case "getMoradores":
			controller.GetMoradores()
		case "getMorador":
			controller.GetMorador()
		case "createMorador":
			controller.CreateMorador()
		case "updateMorador":
			controller.UpdateMorador()
		case "deleteMorador":
			controller.DeleteMorador()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
