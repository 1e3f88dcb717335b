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

// PagamentoController handles payment requests
type PagamentoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPagamentoController creates a new payment controller
func NewPagamentoController(ctx *gin.Context, container *container.ServiceContainer) *PagamentoController {
	return &PagamentoController{
		Ctx:       ctx,
		Container: container,
	}
}

// PagamentoRequest registers a standalone charge (admin only)
type PagamentoRequest struct {
	Boletos        string  `json:"boletos" binding:"required,max=191"`
	DataVencimento string  `json:"dataVencimento" binding:"required,datetime=2006-01-02"`
	Valor          float64 `json:"valor" binding:"required,gt=0"`
	ClienteID      string  `json:"clienteId" binding:"required,uuid"`
}

// PagarRequest is the settlement payload
type PagarRequest struct {
	MetodoPagamento string `json:"metodoPagamento" binding:"omitempty,oneof=BOLETO PIX CARTAO"`
}

func (c *PagamentoController) service() services.InterfacePagamentoService {
	return c.Container.GetService("pagamento").(services.InterfacePagamentoService)
}

func (c *PagamentoController) GetPagamentos() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		pagamentos, err := c.service().GetAllPagamentos()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, pagamentos)
		return
	}

	pagamentos, err := c.service().GetPagamentosByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, pagamentos)
}

func (c *PagamentoController) GetPagamento() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	pagamento, err := c.service().GetPagamentoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, pagamento.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, pagamento)
}

func (c *PagamentoController) CreatePagamento() {
	var req PagamentoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	vencimento, _ := time.Parse("2006-01-02", req.DataVencimento)
	pagamento := models.Pagamento{
		Boletos:        req.Boletos,
		DataVencimento: vencimento,
		Valor:          req.Valor,
		ClienteID:      req.ClienteID,
	}
	if err := c.service().CreatePagamento(&pagamento); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, pagamento)
}

// Pagar é o autoatendimento do morador; o pagamento de boleto de
// reserva também confirma a reserva pendente correspondente
// @Summary      Pagar pagamento
// @Tags         Pagamento
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do pagamento"
// @Param        request body PagarRequest false "Método"
// @Success      200 {object} models.Pagamento
// @Failure      400 {object} response.ErroResponse
// @Router       /pagamentos/{id}/pagar [post]
func (c *PagamentoController) Pagar() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	pagamento, err := c.service().GetPagamentoByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, pagamento.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}

	var req PagarRequest
	if c.Ctx.Request.ContentLength > 0 {
		if err := c.Ctx.ShouldBindJSON(&req); err != nil {
			response.ValidationError(c.Ctx, err)
			return
		}
	}

	pago, err := c.service().Pagar(id, models.MetodoPagamento(req.MetodoPagamento))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, pago)
}

// Confirmar é a confirmação administrativa; mesma liquidação do Pagar
func (c *PagamentoController) Confirmar() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	pago, err := c.service().Pagar(id, "")
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, pago)
}

func (c *PagamentoController) DeletePagamento() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeletePagamento(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandlePagamentoFunc returns a gin handler dispatching to the controller
func HandlePagamentoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPagamentoController(ctx, container)

		switch method {
		case "getPagamentos":
			controller.GetPagamentos()
		case "getPagamento":
			controller.GetPagamento()
		case "createPagamento":
			controller.CreatePagamento()
		case "pagar":
			controller.Pagar()
		case "confirmar":
			controller.Confirmar()
		case "deletePagamento":
			controller.DeletePagamento()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
