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

// ResidenciaController handles residence requests
type ResidenciaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidenciaController creates a new residence controller
func NewResidenciaController(ctx *gin.Context, container *container.ServiceContainer) *ResidenciaController {
	return &ResidenciaController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResidenciaRequest is the create payload
type ResidenciaRequest struct {
	NumeroCasa     string `json:"numeroCasa" binding:"required,max=4"`
	Rua            string `json:"rua" binding:"required,max=100"`
	DataResidencia string `json:"dataResidencia" binding:"required,datetime=2006-01-02"`
	Tipo           string `json:"tipo" binding:"required,oneof=CASA APARTAMENTO"`
	Proprietario   string `json:"proprietario" binding:"omitempty,max=100"`
	ClienteID      string `json:"clienteId" binding:"required,uuid"`
}

func (c *ResidenciaController) service() services.InterfaceResidenciaService {
	return c.Container.GetService("residencia").(services.InterfaceResidenciaService)
}

// GetResidencias: staff enxerga todas; morador só as próprias
func (c *ResidenciaController) GetResidencias() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		residencias, err := c.service().GetAllResidencias()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, residencias)
		return
	}

	residencias, err := c.service().GetResidenciasByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, residencias)
}

func (c *ResidenciaController) GetResidencia() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	residencia, err := c.service().GetResidenciaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, residencia.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, residencia)
}

func (c *ResidenciaController) CreateResidencia() {
	var req ResidenciaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	dataResidencia, _ := time.Parse("2006-01-02", req.DataResidencia)
	residencia := models.Residencia{
		NumeroCasa:     req.NumeroCasa,
		Rua:            req.Rua,
		DataResidencia: dataResidencia,
		Tipo:           models.TipoResidencia(req.Tipo),
		Proprietario:   req.Proprietario,
		ClienteID:      req.ClienteID,
	}
	if err := c.service().CreateResidencia(&residencia); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, residencia)
}

func (c *ResidenciaController) UpdateResidencia() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	var req struct {
		NumeroCasa   string `json:"numeroCasa" binding:"omitempty,max=4"`
		Rua          string `json:"rua" binding:"omitempty,max=100"`
		Tipo         string `json:"tipo" binding:"omitempty,oneof=CASA APARTAMENTO"`
		Proprietario string `json:"proprietario" binding:"omitempty,max=100"`
	}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.NumeroCasa != "" {
		updates["numero_casa"] = req.NumeroCasa
	}
	if req.Rua != "" {
		updates["rua"] = req.Rua
	}
	if req.Tipo != "" {
		updates["tipo"] = req.Tipo
	}
	if req.Proprietario != "" {
		updates["proprietario"] = req.Proprietario
	}

	residencia, err := c.service().UpdateResidencia(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, residencia)
}

func (c *ResidenciaController) DeleteResidencia() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteResidencia(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleResidenciaFunc returns a gin handler dispatching to the controller
func HandleResidenciaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidenciaController(ctx, container)

		switch method {
		case "getResidencias":
			controller.GetResidencias()
		case "getResidencia":
			controller.GetResidencia()
		case "createResidencia":
			controller.CreateResidencia()
		case "updateResidencia":
			controller.UpdateResidencia()
		case "deleteResidencia":
			controller.DeleteResidencia()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
