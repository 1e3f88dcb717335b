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

// PrestadorController handles service-provider requests
type PrestadorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPrestadorController creates a new service-provider controller
func NewPrestadorController(ctx *gin.Context, container *container.ServiceContainer) *PrestadorController {
	return &PrestadorController{
		Ctx:       ctx,
		Container: container,
	}
}

// PrestadorRequest is the create payload
type PrestadorRequest struct {
	Nome         string `json:"nome" binding:"required,max=100"`
	CPF          string `json:"cpf" binding:"required,min=11,max=14"`
	Contato      string `json:"contato" binding:"required,max=20"`
	Email        string `json:"email" binding:"omitempty,email"`
	Servico      string `json:"servico" binding:"required,max=100"`
	DataServico  string `json:"dataServico" binding:"required,datetime=2006-01-02"`
	Horario      string `json:"horario" binding:"required,len=5"`
	Observacoes  string `json:"observacoes" binding:"omitempty,max=191"`
	ResidenciaID uint   `json:"residenciaId" binding:"required"`
}

func (c *PrestadorController) service() services.InterfacePrestadorService {
	return c.Container.GetService("prestador").(services.InterfacePrestadorService)
}

func (c *PrestadorController) GetPrestadores() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		prestadores, err := c.service().GetAllPrestadores()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, prestadores)
		return
	}

	prestadores, err := c.service().GetPrestadoresByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, prestadores)
}

func (c *PrestadorController) GetPrestador() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	prestador, err := c.service().GetPrestadorByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, prestador.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, prestador)
}

func (c *PrestadorController) CreatePrestador() {
	var req PrestadorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

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

	dataServico, _ := time.Parse("2006-01-02", req.DataServico)
	prestador := models.Prestador{
		Nome:         req.Nome,
		CPF:          req.CPF,
		Contato:      req.Contato,
		Email:        req.Email,
		Servico:      req.Servico,
		DataServico:  dataServico,
		Horario:      req.Horario,
		Observacoes:  req.Observacoes,
		ResidenciaID: req.ResidenciaID,
	}
	if err := c.service().CreatePrestador(&prestador); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, prestador)
}

func (c *PrestadorController) RegistrarEntrada() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	prestador, err := c.service().RegistrarEntrada(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, prestador)
}

func (c *PrestadorController) RegistrarSaida() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	prestador, err := c.service().RegistrarSaida(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, prestador)
}

func (c *PrestadorController) DeletePrestador() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	prestador, err := c.service().GetPrestadorByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, prestador.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeletePrestador(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandlePrestadorFunc returns a gin handler dispatching to the controller
func HandlePrestadorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPrestadorController(ctx, container)

		switch method {
		case "getPrestadores":
			controller.GetPrestadores()
		case "getPrestador":
			controller.GetPrestador()
		case "createPrestador":
			controller.CreatePrestador()
		case "registrarEntrada":
			controller.RegistrarEntrada()
		case "registrarSaida":
			controller.RegistrarSaida()
		case "deletePrestador":
			controller.DeletePrestador()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
