package controllers

import (
	"net/http"

	"github.com/Hellwig19/Com-Dominium-API/internal/app/middleware"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// AtividadeController serves the aggregated activity feed
type AtividadeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAtividadeController creates a new activity-feed controller
func NewAtividadeController(ctx *gin.Context, container *container.ServiceContainer) *AtividadeController {
	return &AtividadeController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *AtividadeController) service() services.InterfaceAtividadeService {
	return c.Container.GetService("atividade").(services.InterfaceAtividadeService)
}

// FeedRecentes retorna as atividades recentes do morador autenticado
// @Summary      Feed de atividades do morador
// @Description  Agrega encomendas, reservas, visitas, sugestões, votos, veículos, moradores e prestadores em ordem decrescente de data
// @Tags         Atividade
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.FeedItem
// @Failure      500 {object} response.ErroResponse
// @Router       /atividades/recentes [get]
func (c *AtividadeController) FeedRecentes() {
	feed, err := c.service().FeedRecentes(c.Ctx.Request.Context(), middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, feed)
}

// FeedGeral retorna a movimentação da portaria (todas as unidades)
func (c *AtividadeController) FeedGeral() {
	feed, err := c.service().FeedGeral(c.Ctx.Request.Context())
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, feed)
}

// HandleAtividadeFunc returns a gin handler dispatching to the controller
func HandleAtividadeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAtividadeController(ctx, container)

		switch method {
		case "feedRecentes":
			controller.FeedRecentes()
		case "feedGeral":
			controller.FeedGeral()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
