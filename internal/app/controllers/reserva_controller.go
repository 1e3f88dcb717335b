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

// ReservaController handles common-area booking requests
type ReservaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReservaController creates a new reservation controller
func NewReservaController(ctx *gin.Context, container *container.ServiceContainer) *ReservaController {
	return &ReservaController{
		Ctx:       ctx,
		Container: container,
	}
}

// ReservaRequest is the booking payload
type ReservaRequest struct {
	Area        string  `json:"area" binding:"required,max=60"`
	DataReserva string  `json:"dataReserva" binding:"required,datetime=2006-01-02"`
	Horario     string  `json:"horario" binding:"required,len=5"`
	Capacidade  int     `json:"capacidade" binding:"omitempty,gt=0"`
	Valor       float64 `json:"valor" binding:"omitempty,gte=0"`
}

// ReservaCriada is the creation response: the booking plus the boleto
type ReservaCriada struct {
	Reserva   *models.Reserva   `json:"reserva"`
	Pagamento *models.Pagamento `json:"pagamento"`
}

// StatusReservaRequest is the admin transition payload
type StatusReservaRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDENTE CONFIRMADA CANCELADA"`
}

func (c *ReservaController) service() services.InterfaceReservaService {
	return c.Container.GetService("reserva").(services.InterfaceReservaService)
}

func (c *ReservaController) GetReservas() {
	if middleware.UserNivel(c.Ctx) >= 2 {
		reservas, err := c.service().GetAllReservas()
		if err != nil {
			trataErro(c.Ctx, err)
			return
		}
		c.Ctx.JSON(http.StatusOK, reservas)
		return
	}

	reservas, err := c.service().GetReservasByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, reservas)
}

// GetDatasOcupadas: datas confirmadas de uma área, para o calendário
// @Summary      Datas ocupadas de uma área
// @Tags         Reserva
// @Produce      json
// @Security     BearerAuth
// @Param        area query string true "Nome da área"
// @Success      200 {array} string
// @Failure      400 {object} response.ErroResponse
// @Router       /reservas/datas-ocupadas [get]
func (c *ReservaController) GetDatasOcupadas() {
	area := c.Ctx.Query("area")
	if area == "" {
		c.Ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "O nome da área é obrigatório."})
		return
	}
	datas, err := c.service().GetDatasOcupadas(area)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, datas)
}

func (c *ReservaController) GetReserva() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	reserva, err := c.service().GetReservaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, reserva.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}
	c.Ctx.JSON(http.StatusOK, reserva)
}

// CreateReserva cria a reserva e o boleto em uma transação
// @Summary      Reservar área comum
// @Description  Cria a reserva PENDENTE e o pagamento correspondente atomicamente
// @Tags         Reserva
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ReservaRequest true "Reserva"
// @Success      201 {object} ReservaCriada
// @Failure      400 {object} response.ErroResponse
// @Failure      409 {object} response.ErroResponse
// @Router       /reservas [post]
func (c *ReservaController) CreateReserva() {
	var req ReservaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	dataReserva, _ := time.Parse("2006-01-02", req.DataReserva)
	reserva := models.Reserva{
		Area:        req.Area,
		DataReserva: dataReserva,
		Horario:     req.Horario,
		Capacidade:  req.Capacidade,
		Valor:       req.Valor,
		ClienteID:   middleware.UserID(c.Ctx),
	}

	criada, pagamento, err := c.service().CreateReserva(&reserva)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusCreated, ReservaCriada{Reserva: criada, Pagamento: pagamento})
}

// AtualizarStatus é a transição administrativa
func (c *ReservaController) AtualizarStatus() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	var req StatusReservaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c.Ctx, err)
		return
	}

	reserva, err := c.service().AtualizarStatus(id, models.StatusReserva(req.Status))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, reserva)
}

// CancelarReserva: morador cancela a própria reserva
func (c *ReservaController) CancelarReserva() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	reserva, err := c.service().GetReservaByID(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	if !podeAcessar(c.Ctx, reserva.ClienteID) {
		response.Forbidden(c.Ctx, "")
		return
	}

	cancelada, err := c.service().CancelarReserva(id)
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, cancelada)
}

func (c *ReservaController) DeleteReserva() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteReserva(id); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleReservaFunc returns a gin handler dispatching to the controller
func HandleReservaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReservaController(ctx, container)

		switch method {
		case "getReservas":
			controller.GetReservas()
		case "getDatasOcupadas":
			controller.GetDatasOcupadas()
		case "getReserva":
			controller.GetReserva()
		case "createReserva":
			controller.CreateReserva()
		case "atualizarStatus":
			controller.AtualizarStatus()
		case "cancelarReserva":
			controller.CancelarReserva()
		case "deleteReserva":
			controller.DeleteReserva()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
