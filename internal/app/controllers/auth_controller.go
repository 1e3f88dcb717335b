package controllers

import (
	"net/http"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"github.com/gin-gonic/gin"
)

// AuthController handles the two login surfaces
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is shared by both login endpoints
type LoginRequest struct {
	CPF   string `json:"cpf" binding:"required" example:"12345678901"`
	Senha string `json:"senha" binding:"required" example:"minhasenha"`
}

// LoginCliente autentica um morador
// @Summary      Login de cliente
// @Description  Autentica um morador por CPF e senha e retorna o token JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciais"
// @Success      200 {object} services.LoginResult
// @Failure      400 {object} response.ErrosResponse
// @Failure      401 {object} response.ErroResponse
// @Router       /clientes/login [post]
func (c *AuthController) LoginCliente() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.LoginCliente(utils.LimpaCPF(req.CPF), req.Senha)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, result)
}

// LoginAdmin autentica síndico, porteiro ou super-admin
// @Summary      Login de administrador
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciais"
// @Success      200 {object} services.LoginResult
// @Failure      401 {object} response.ErroResponse
// @Router       /admins/login [post]
func (c *AuthController) LoginAdmin() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.LoginAdmin(utils.LimpaCPF(req.CPF), req.Senha)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, result)
}

// HandleAuthFunc returns a gin handler dispatching to the controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "loginCliente":
			controller.LoginCliente()
		case "loginAdmin":
			controller.LoginAdmin()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
