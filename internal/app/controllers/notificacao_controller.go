package controllers

import (
	"net/http"

	"github.com/Hellwig19/Com-Dominium-API/internal/app/middleware"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"

	"github.com/gin-gonic/gin"
)

// NotificacaoController handles per-resident notifications. Every
// operation is scoped to the authenticated resident.
type NotificacaoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNotificacaoController creates a new notification controller
func NewNotificacaoController(ctx *gin.Context, container *container.ServiceContainer) *NotificacaoController {
	return &NotificacaoController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *NotificacaoController) service() services.InterfaceNotificacaoService {
	return c.Container.GetService("notificacao").(services.InterfaceNotificacaoService)
}

func (c *NotificacaoController) GetNotificacoes() {
	notificacoes, err := c.service().GetNotificacoesByCliente(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, notificacoes)
}

// GetNaoLidas retorna o contador de não lidas (cacheado no Redis)
func (c *NotificacaoController) GetNaoLidas() {
	total, err := c.service().CountNaoLidas(middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, gin.H{"naoLidas": total})
}

func (c *NotificacaoController) MarcarLida() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	notificacao, err := c.service().MarcarLida(id, middleware.UserID(c.Ctx))
	if err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.JSON(http.StatusOK, notificacao)
}

func (c *NotificacaoController) MarcarTodasLidas() {
	if err := c.service().MarcarTodasLidas(middleware.UserID(c.Ctx)); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

func (c *NotificacaoController) DeleteNotificacao() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	if err := c.service().DeleteNotificacao(id, middleware.UserID(c.Ctx)); err != nil {
		trataErro(c.Ctx, err)
		return
	}
	c.Ctx.Status(http.StatusNoContent)
}

// HandleNotificacaoFunc returns a gin handler dispatching to the controller
func HandleNotificacaoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNotificacaoController(ctx, container)

		switch method {
		case "getNotificacoes":
			controller.GetNotificacoes()
		case "getNaoLidas":
			controller.GetNaoLidas()
		case "marcarLida":
			controller.MarcarLida()
		case "marcarTodasLidas":
			controller.MarcarTodasLidas()
		case "deleteNotificacao":
			controller.DeleteNotificacao()
		default:
			ctx.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "Método inválido."})
		}
	}
}
