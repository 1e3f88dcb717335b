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

// AdminController handles staff account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdminRequest is the create payload
type AdminRequest struct {
	Nome  string `json:"nome" binding:"required,min=3,max=100"`
	CPF   string `json:"cpf" binding:"required,min=11,max=14"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6,max=60"`
	Nivel int    `json:"nivel" binding:"required,oneof=2 3 5"`
}

// UpdateAdminRequest is the partial update payload
type UpdateAdminRequest struct {
	Nome  string `json:"nome" binding:"omitempty,min=3,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Senha string `json:"senha" binding:"omitempty,min=6,max=60"`
	Nivel int    `json:"nivel" binding:"omitempty,oneof=2 3 5"`
}

func (c *AdminController) service() services.InterfaceAdminService {
	return c.Container.GetService("admin").(services.InterfaceAdminService)
}

func (c *AdminController) GetAdmins() {
	admins, err := c.service().GetAllAdmins()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, admins)
}

func (c *AdminController) GetAdmin() {
	admin, err := c.service().GetAdminByID(c.Ctx.Param("id"))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, admin)
}

func (c *AdminController) CreateAdmin() {
	var req AdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	admin := models.Admin{
		Nome:  req.Nome,
		CPF:   req.CPF,
		Email: req.Email,
		Senha: req.Senha,
		Nivel: req.Nivel,
	}
	if err := c.service().CreateAdmin(&admin); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, admin)
}

func (c *AdminController) UpdateAdmin() {
	var req UpdateAdminRequest
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
	if req.Senha != "" {
		updates["senha"] = req.Senha
	}
	if req.Nivel != 0 {
		updates["nivel"] = req.Nivel
	}

	admin, err := c.service().UpdateAdmin(c.Ctx.Param("id"), updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, admin)
}

func (c *AdminController) DeleteAdmin() {
	id := c.Ctx.Param("id")
	if id == middleware.UserID(c.Ctx) {
		c.Ctx.JSON(http.StatusBadRequest, response.ErroResponse{
			Erro: "Não é possível excluir a própria conta.",
		})
		return
	}
	if err := c.service().DeleteAdmin(id, middleware.UserID(c.Ctx)); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// GetLogs lista o log de auditoria das ações administrativas
func (c *AdminController) GetLogs() {
	logs, err := c.service().GetLogs()
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, logs)
}

// HandleAdminFunc returns a gin handler dispatching to the controller
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		case "getLogs":
			controller.GetLogs()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
