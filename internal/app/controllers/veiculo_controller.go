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

// VeiculoController handles vehicle requests
type VeiculoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVeiculoController creates a new vehicle controller
func NewVeiculoController(ctx *gin.Context, container *container.ServiceContainer) *VeiculoController {
	return &VeiculoController{
		Ctx:       ctx,
		Container: container,
	}
}

// VeiculoRequest is the create payload
type VeiculoRequest struct {
	Marca        string `json:"marca" binding:"required,max=40"`
	Modelo       string `json:"modelo" binding:"required,max=60"`
	Ano          int    `json:"ano" binding:"required,gte=1900"`
	Cor          string `json:"cor" binding:"required,max=30"`
	Placa        string `json:"placa" binding:"required,len=7"`
	Garagem      string `json:"garagem" binding:"omitempty,max=4"`
	TipoVeiculo  string `json:"tipoVeiculo" binding:"required,oneof=CARRO MOTO OUTRO"`
	Proprietario string `json:"proprietario" binding:"omitempty,max=100"`
	ResidenciaID uint   `json:"residenciaId" binding:"required"`
}

func (c *VeiculoController) service() services.InterfaceVeiculoService {
	return c.Container.GetService("veiculo").(services.InterfaceVeiculoService)
}

func (c *VeiculoController) GetVeiculos() {
	// A portaria consulta por placa: /veiculos?placa=ABC1234
	if placa := c.Ctx.Query("placa"); placa != "" {
		if middleware.UserNivel(c.Ctx) < 2 {
			response.Forbidden(c.Ctx, "")
			return
		}
		veiculo, err := c.service().GetVeiculoByPlaca(placa)
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, veiculo)
		return
	}

	if middleware.UserNivel(c.Ctx) >= 2 {
		veiculos, err := c.service().GetAllVeiculos()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, veiculos)
		return
	}

	veiculos, err := c.service().GetVeiculosByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, veiculos)
}

func (c *VeiculoController) GetVeiculo() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	veiculo, err := c.service().GetVeiculoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, veiculo.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, veiculo)
}

func (c *VeiculoController) CreateVeiculo() {
	var req VeiculoRequest
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

	veiculo := models.Veiculo{
		Marca:        req.Marca,
		Modelo:       req.Modelo,
		Ano:          req.Ano,
		Cor:          req.Cor,
		Placa:        req.Placa,
		Garagem:      req.Garagem,
		TipoVeiculo:  models.TipoVeiculo(req.TipoVeiculo),
		Proprietario: req.Proprietario,
		ResidenciaID: req.ResidenciaID,
	}
	if err := c.service().CreateVeiculo(&veiculo); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, veiculo)
}

func (c *VeiculoController) UpdateVeiculo() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	veiculo, err := c.service().GetVeiculoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, veiculo.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}

	var req struct {
		Marca       string `json:"marca" binding:"omitempty,max=40"`
		Modelo      string `json:"modelo" binding:"omitempty,max=60"`
		Cor         string `json:"cor" binding:"omitempty,max=30"`
		Placa       string `json:"placa" binding:"omitempty,len=7"`
		Garagem     string `json:"garagem" binding:"omitempty,max=4"`
		TipoVeiculo string `json:"tipoVeiculo" binding:"omitempty,oneof=CARRO MOTO OUTRO"`
	}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Marca != "" {
		updates["marca"] = req.Marca
	}
	if req.Modelo != "" {
		updates["modelo"] = req.Modelo
	}
	if req.Cor != "" {
		updates["cor"] = req.Cor
	}
	if req.Placa != "" {
		updates["placa"] = req.Placa
	}
	if req.Garagem != "" {
		updates["garagem"] = req.Garagem
	}
	if req.TipoVeiculo != "" {
		updates["tipo_veiculo"] = req.TipoVeiculo
	}

	atualizado, err := c.service().UpdateVeiculo(id, updates)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, atualizado)
}

func (c *VeiculoController) DeleteVeiculo() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	veiculo, err := c.service().GetVeiculoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, veiculo.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	if err := c.service().DeleteVeiculo(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleVeiculoFunc returns a gin handler dispatching to the controller
func HandleVeiculoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVeiculoController(ctx, container)

		switch method {
		case "getVeiculos":
			controller.GetVeiculos()
		case "getVeiculo":
			controller.GetVeiculo()
		case "createVeiculo":
			controller.CreateVeiculo()
		case "updateVeiculo":
			controller.UpdateVeiculo()
		case "deleteVeiculo":
			controller.DeleteVeiculo()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
