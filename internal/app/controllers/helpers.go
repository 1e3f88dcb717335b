package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Hellwig19/Com-Dominium-API/internal/app/middleware"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/error/response"
	"github.com/Hellwig19/Com-Dominium-API/pkg/logger"

	"github.com/gin-gonic/gin"
)

// trataErro translates a service error into the HTTP response. Unknown
// errors become a generic 500 with the detail only in the server log.
func trataErro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNaoEncontrado):
		response.NotFound(c, "")
	case errors.Is(err, services.ErrCredenciaisInvalido):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrCPFJaCadastrado),
		errors.Is(err, services.ErrEmailJaCadastrado),
		errors.Is(err, services.ErrPlacaJaCadastrada),
		errors.Is(err, services.ErrReservaConflito),
		errors.Is(err, services.ErrVotoDuplicado):
		response.Conflict(c, err.Error())
	case errors.Is(err, services.ErrReservaDataPassada),
		errors.Is(err, services.ErrAreaIndisponivel),
		errors.Is(err, services.ErrPagamentoJaPago),
		errors.Is(err, services.ErrVotacaoEncerrada),
		errors.Is(err, services.ErrOpcaoInvalida),
		errors.Is(err, services.ErrManutencaoConcluida),
		errors.Is(err, services.ErrVisitaEncerrada),
		errors.Is(err, services.ErrVisitanteJaDentro),
		errors.Is(err, services.ErrEncomendaEntregue):
		c.JSON(http.StatusBadRequest, response.ErroResponse{Erro: err.Error()})
	default:
		logger.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		response.ServerError(c, "")
	}
}

// parseID reads the :id path param as uint; writes the 400 itself
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErroResponse{Erro: "ID inválido."})
		return 0, false
	}
	return uint(id), true
}

// podeAcessar reports whether the caller may touch records owned by
// clienteID: staff levels always, residents only their own.
func podeAcessar(c *gin.Context, clienteID string) bool {
	if middleware.UserNivel(c) >= 2 {
		return true
	}
	return middleware.UserID(c) == clienteID
}
