package response

import (
	"errors"
	"net/http"

	"github.com/Hellwig19/Com-Dominium-API/internal/error/code"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErroResponse é o corpo de erro padrão da API: {"erro": "..."}
type ErroResponse struct {
	Erro string `json:"erro"`
}

// ErrosResponse carrega a lista de mensagens de validação: {"erros": [...]}
type ErrosResponse struct {
	Erros []string `json:"erros"`
}

// JSON writes a success payload with the given status
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Erro writes {"erro": message} resolving the HTTP status from the error code
func Erro(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErroResponse{Erro: message})
}

// Erros writes {"erros": messages} with status 400
func Erros(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, ErrosResponse{Erros: messages})
}

// Unauthorized writes the standard 401 body
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Token inválido"
	}
	c.JSON(http.StatusUnauthorized, ErroResponse{Erro: message})
}

// Forbidden writes the standard 403 body
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Acesso negado."
	}
	c.JSON(http.StatusForbidden, ErroResponse{Erro: message})
}

// NotFound writes the standard 404 body
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Registro não encontrado."
	}
	c.JSON(http.StatusNotFound, ErroResponse{Erro: message})
}

// Conflict writes the standard 409 body
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErroResponse{Erro: message})
}

// ServerError writes a generic 500 body; details stay in the server log
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Ocorreu um erro interno. Tente novamente."
	}
	c.JSON(http.StatusInternalServerError, ErroResponse{Erro: message})
}

// ValidationError unpacks a gin binding error into the {"erros": [...]}
// shape. Field errors become one Portuguese message each; anything else
// (malformed JSON etc.) becomes a single generic message.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		Erros(c, messages)
		return
	}
	Erro(c, code.ErrBind, "Corpo da requisição inválido.")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "O campo " + fe.Field() + " é obrigatório."
	case "email":
		return "O campo " + fe.Field() + " deve ser um e-mail válido."
	case "min":
		return "O campo " + fe.Field() + " deve ter no mínimo " + fe.Param() + " caracteres."
	case "max":
		return "O campo " + fe.Field() + " deve ter no máximo " + fe.Param() + " caracteres."
	case "len":
		return "O campo " + fe.Field() + " deve ter exatamente " + fe.Param() + " caracteres."
	case "gt":
		return "O campo " + fe.Field() + " deve ser maior que " + fe.Param() + "."
	case "gte":
		return "O campo " + fe.Field() + " não pode ser negativo."
	case "datetime":
		return "O campo " + fe.Field() + " tem formato de data inválido."
	case "oneof":
		return "O campo " + fe.Field() + " tem um valor inválido."
	case "uuid":
		return "O campo " + fe.Field() + " deve ser um UUID válido."
	default:
		return "O campo " + fe.Field() + " é inválido."
	}
}
