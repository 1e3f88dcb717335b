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

// VisitaController handles scheduled-visit requests
type VisitaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitaController creates a new visit controller
func NewVisitaController(ctx *gin.Context, container *container.ServiceContainer) *VisitaController {
	return &VisitaController{
		Ctx:       ctx,
		Container: container,
	}
}

// VisitaRequest is the create payload
type VisitaRequest struct {
	Nome         string `json:"nome" binding:"required,max=100"`
	CPF          string `json:"cpf" binding:"required,min=11,max=14"`
	Contato      string `json:"contato" binding:"required,max=20"`
	DataVisita   string `json:"dataVisita" binding:"required,datetime=2006-01-02"`
	Horario      string `json:"horario" binding:"required,len=5"`
	Observacoes  string `json:"observacoes" binding:"omitempty,max=191"`
	ResidenciaID uint   `json:"residenciaId" binding:"required"`
}

func (c *VisitaController) service() services.InterfaceVisitaService {
	return c.Container.GetService("visita").(services.InterfaceVisitaService)
}

// GetVisitas: staff vê todas (ou as do dia com ?hoje=true); morador as próprias
func (c *VisitaController) GetVisitas() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		if c.Ctx.Query("hoje") == "true" {
			visitas, err := c.service().GetVisitasDoDia()
			if err != nil {
				trataErro(c.Ctx, err)
				return
			}
			c.Ctx.JSON(http.StatusOK, visitas)
			return
		}
		visitas, err := c.service().GetAllVisitas()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, visitas)
		return
	}

	visitas, err := c.service().GetVisitasByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, visitas)
}

func (c *VisitaController) GetVisita() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	visita, err := c.service().GetVisitaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, visita.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, visita)
}

func (c *VisitaController) CreateVisita() {
	var req VisitaRequest
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

	dataVisita, _ := time.Parse("2006-01-02", req.DataVisita)
	visita := models.Visita{
		Nome:         req.Nome,
		CPF:          req.CPF,
		Contato:      req.Contato,
		DataVisita:   dataVisita,
		Horario:      req.Horario,
		Observacoes:  req.Observacoes,
		ResidenciaID: req.ResidenciaID,
	}
	if err := c.service().CreateVisita(&visita); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, visita)
}

// RegistrarEntrada é a portaria marcando a chegada do visitante
func (c *VisitaController) RegistrarEntrada() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	visita, err := c.service().RegistrarEntrada(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, visita)
}

// RegistrarSaida encerra a visita
func (c *VisitaController) RegistrarSaida() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	visita, err := c.service().RegistrarSaida(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, visita)
}

func (c *VisitaController) DeleteVisita() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	visita, err := c.service().GetVisitaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, visita.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeleteVisita(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleVisitaFunc returns a gin handler dispatching to the controller
func HandleVisitaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitaController(ctx, container)

		switch method {
		case "getVisitas":
			controller.GetVisitas()
		case "getVisita":
			controller.GetVisita()
		case "createVisita":
			controller.CreateVisita()
		case "registrarEntrada":
			controller.RegistrarEntrada()
		case "registrarSaida":
			controller.RegistrarSaida()
		case "deleteVisita":
			controller.DeleteVisita()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
