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

// ClienteController handles resident account requests
type ClienteController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewClienteController creates a new cliente controller
func NewClienteController(ctx *gin.Context, container *container.ServiceContainer) *ClienteController {
	return &ClienteController{
		Ctx:       ctx,
		Container: container,
	}
}

// ClienteRequest is the create payload
type ClienteRequest struct {
	Nome        string `json:"nome" binding:"required,min=3,max=100"`
	CPF         string `json:"cpf" binding:"required,min=11,max=14"`
	RG          string `json:"rg" binding:"required,max=14"`
	Email       string `json:"email" binding:"required,email"`
	DataNasc    string `json:"dataNasc" binding:"required,datetime=2006-01-02"`
	EstadoCivil string `json:"estadoCivil" binding:"required,oneof=SOLTEIRO CASADO SEPARADO DIVORCIADO VIUVO"`
	Profissao   string `json:"profissao" binding:"max=60"`
	Senha       string `json:"senha" binding:"required,min=6,max=60"`
}

// UpdateClienteRequest is the partial update payload
type UpdateClienteRequest struct {
	Nome        string `json:"nome" binding:"omitempty,min=3,max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	EstadoCivil string `json:"estadoCivil" binding:"omitempty,oneof=SOLTEIRO CASADO SEPARADO DIVORCIADO VIUVO"`
	Profissao   string `json:"profissao" binding:"omitempty,max=60"`
	Senha       string `json:"senha" binding:"omitempty,min=6,max=60"`
}

func (c *ClienteController) service() services.InterfaceClienteService {
	return c.Container.GetService("cliente").(services.InterfaceClienteService)
}

// GetClientes lista todos os clientes
// @Summary      Lista clientes
// @Tags         Cliente
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Cliente
// @Router       /clientes [get]
func (c *ClienteController) GetClientes() {
	clientes, err := c.service().GetAllClientes()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, clientes)
}

// GetCliente retorna um cliente. Morador só enxerga o próprio cadastro.
func (c *ClienteController) GetCliente() {
	id := c.Ctx.Param("id")
	if !podeAcessar(c.Ctx, id) {
		response.Forbidden(c.Ctx, "")
		return
	}
	cliente, err := c.service().GetClienteByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, cliente)
}

// CreateCliente cria um cliente avulso (sem residência)
func (c *ClienteController) CreateCliente() {
	var req ClienteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	dataNasc, _ := time.Parse("2006-01-02", req.DataNasc)
	cliente := models.Cliente{
		Nome:        req.Nome,
		CPF:         req.CPF,
		RG:          req.RG,
		Email:       req.Email,
		DataNasc:    dataNasc,
		EstadoCivil: models.EstadoCivil(req.EstadoCivil),
		Profissao:   req.Profissao,
		Senha:       req.Senha,
	}
	if err := c.service().CreateCliente(&cliente); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, cliente)
}

// UpdateCliente atualiza o cadastro. Morador só altera o próprio.
func (c *ClienteController) UpdateCliente() {
	id := c.Ctx.Param("id")
	if !podeAcessar(c.Ctx, id) {
		response.Forbidden(c.Ctx, "")
		return
	}

	var req UpdateClienteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Nome != "" {
		updates["nome"] = req.Nome
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.EstadoCivil != "" {
		updates["estado_civil"] = req.EstadoCivil
	}
	if req.Profissao != "" {
		updates["profissao"] = req.Profissao
	}
	if req.Senha != "" {
		updates["senha"] = req.Senha
	}

	cliente, err := c.service().UpdateCliente(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, cliente)
}

// DeactivateCliente desativa a conta mantendo o histórico
func (c *ClienteController) DeactivateCliente() {
	if err := c.service().DeactivateCliente(c.Ctx.Param("id"), middleware.UserID(c.Ctx)); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// DeleteCliente remove a conta e tudo que depende dela
func (c *ClienteController) DeleteCliente() {
	if err := c.service().DeleteCliente(c.Ctx.Param("id"), middleware.UserID(c.Ctx)); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleClienteFunc returns a gin handler dispatching to the controller
func HandleClienteFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewClienteController(ctx, container)

		switch method {
		case "getClientes":
			controller.GetClientes()
		case "getCliente":
			controller.GetCliente()
		case "createCliente":
			controller.CreateCliente()
		case "updateCliente":
			controller.UpdateCliente()
		case "deactivateCliente":
			controller.DeactivateCliente()
		case "deleteCliente":
			controller.DeleteCliente()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
