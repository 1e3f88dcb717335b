package controllers

import (
	"net/http"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// CadastroController handles the public onboarding endpoint
type CadastroController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCadastroController creates a new onboarding controller
func NewCadastroController(ctx *gin.Context, container *container.ServiceContainer) *CadastroController {
	return &CadastroController{
		Ctx:       ctx,
		Container: container,
	}
}

// CadastroRequest is the full onboarding payload
type CadastroRequest struct {
	Cliente    ClienteRequest `json:"cliente" binding:"required"`
	Residencia struct {
		NumeroCasa     string `json:"numeroCasa" binding:"required,max=4"`
		Rua            string `json:"rua" binding:"required,max=100"`
		DataResidencia string `json:"dataResidencia" binding:"required,datetime=2006-01-02"`
		Tipo           string `json:"tipo" binding:"required,oneof=CASA APARTAMENTO"`
	} `json:"residencia" binding:"required"`
	Contato struct {
		Email    string `json:"email" binding:"required,email"`
		Telefone string `json:"telefone" binding:"required,max=20"`
		Whatsapp string `json:"whatsapp" binding:"required,max=20"`
	} `json:"contato" binding:"required"`
	Moradores []struct {
		Nome        string `json:"nome" binding:"required,max=100"`
		Parentesco  string `json:"parentesco" binding:"required,max=40"`
		DataNasc    string `json:"dataNasc" binding:"required,datetime=2006-01-02"`
		CPF         string `json:"cpf" binding:"required,min=11,max=14"`
		Email       string `json:"email" binding:"omitempty,email"`
		Contato     string `json:"contato" binding:"required,max=20"`
		TipoMorador string `json:"tipoMorador" binding:"required,oneof=TITULAR DEPENDENTE FUNCIONARIO"`
	} `json:"moradores" binding:"omitempty,dive"`
	Veiculos []struct {
		Marca       string `json:"marca" binding:"required,max=40"`
		Modelo      string `json:"modelo" binding:"required,max=60"`
		Ano         int    `json:"ano" binding:"required,gte=1900"`
		Cor         string `json:"cor" binding:"required,max=30"`
		Placa       string `json:"placa" binding:"required,len=7"`
		Garagem     string `json:"garagem" binding:"omitempty,max=4"`
		TipoVeiculo string `json:"tipoVeiculo" binding:"required,oneof=CARRO MOTO OUTRO"`
	} `json:"veiculos" binding:"omitempty,dive"`
}

// Cadastrar registra o cliente completo em uma transação
// @Summary      Cadastro completo
// @Description  Cria cliente, residência, contato, moradores e veículos atomicamente
// @Tags         Cadastro
// @Accept       json
// @Produce      json
// @Param        request body CadastroRequest true "Cadastro"
// @Success      201 {object} models.Cliente
// @Failure      400 {object} response.ErrosResponse
// @Failure      409 {object} response.ErroResponse
// @Router       /cadastro [post]
func (c *CadastroController) Cadastrar() {
	var req CadastroRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	dataNasc, _ := time.Parse("2006-01-02", req.Cliente.DataNasc)
	dataResidencia, _ := time.Parse("2006-01-02", req.Residencia.DataResidencia)

	input := services.CadastroInput{
		Cliente: models.Cliente{
			Nome:        req.Cliente.Nome,
			CPF:         req.Cliente.CPF,
			RG:          req.Cliente.RG,
			Email:       req.Cliente.Email,
			DataNasc:    dataNasc,
			EstadoCivil: models.EstadoCivil(req.Cliente.EstadoCivil),
			Profissao:   req.Cliente.Profissao,
			Senha:       req.Cliente.Senha,
		},
		Residencia: models.Residencia{
			NumeroCasa:     req.Residencia.NumeroCasa,
			Rua:            req.Residencia.Rua,
			DataResidencia: dataResidencia,
			Tipo:           models.TipoResidencia(req.Residencia.Tipo),
			Proprietario:   req.Cliente.Nome,
		},
		Contato: models.Contato{
			Email:    req.Contato.Email,
			Telefone: req.Contato.Telefone,
			Whatsapp: req.Contato.Whatsapp,
		},
	}

	for _, m := range req.Moradores {
		nasc, _ := time.Parse("2006-01-02", m.DataNasc)
		input.Moradores = append(input.Moradores, models.Morador{
			Nome:        m.Nome,
			Parentesco:  m.Parentesco,
			DataNasc:    nasc,
			CPF:         m.CPF,
			Email:       m.Email,
			Contato:     m.Contato,
			TipoMorador: models.TipoMorador(m.TipoMorador),
		})
	}
	for _, v := range req.Veiculos {
		input.Veiculos = append(input.Veiculos, models.Veiculo{
			Marca:        v.Marca,
			Modelo:       v.Modelo,
			Ano:          v.Ano,
			Cor:          v.Cor,
			Placa:        v.Placa,
			Garagem:      v.Garagem,
			TipoVeiculo:  models.TipoVeiculo(v.TipoVeiculo),
			Proprietario: req.Cliente.Nome,
		})
	}

	cadastroService := c.Container.GetService("cadastro").(services.InterfaceCadastroService)
	cliente, err := cadastroService.CadastrarCompleto(&input)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, cliente)
}

// HandleCadastroFunc returns a gin handler dispatching to the controller
func HandleCadastroFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCadastroController(ctx, container)

		switch method {
		case "cadastrar":
			controller.Cadastrar()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
