package code

import "net/http"

// Códigos de erro da aplicação. A faixa 100xxx cobre erros genéricos,
// as faixas seguintes agrupam por domínio.
const (
	// ErrSuccess - 200: sucesso.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: erro interno.
	ErrUnknown
	// ErrBind - 400: corpo da requisição inválido.
	ErrBind
	// ErrValidation - 400: validação de campos falhou.
	ErrValidation
	// ErrTokenInvalid - 401: token ausente, inválido ou expirado.
	ErrTokenInvalid
	// ErrForbidden - 403: nível de acesso insuficiente.
	ErrForbidden
	// ErrTooManyRequests - 429: frequência de requisições excedida.
	ErrTooManyRequests
)

// Erros de clientes e administradores (101xxx).
const (
	// ErrClienteNotFound - 404: cliente não encontrado.
	ErrClienteNotFound int = iota + 101000
	// ErrClienteAlreadyExists - 400: CPF ou e-mail já cadastrado.
	ErrClienteAlreadyExists
	// ErrCredentials - 400: CPF ou senha incorretos.
	ErrCredentials
)

// Erros de reservas e pagamentos (102xxx).
const (
	// ErrReservaNotFound - 404: reserva não encontrada.
	ErrReservaNotFound int = iota + 102000
	// ErrReservaConflict - 409: área já reservada para a data.
	ErrReservaConflict
	// ErrReservaPastDate - 400: data da reserva no passado.
	ErrReservaPastDate
	// ErrPagamentoNotFound - 404: pagamento não encontrado.
	ErrPagamentoNotFound
	// ErrPagamentoAlreadyPaid - 400: pagamento já confirmado.
	ErrPagamentoAlreadyPaid
)

// Erros de banco de dados (105xxx).
const (
	// ErrDatabase - 500: erro de banco de dados.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: registro não encontrado.
	ErrRecordNotFound
)

var statusByCode = map[int]int{
	ErrSuccess:              http.StatusOK,
	ErrUnknown:              http.StatusInternalServerError,
	ErrBind:                 http.StatusBadRequest,
	ErrValidation:           http.StatusBadRequest,
	ErrTokenInvalid:         http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrTooManyRequests:      http.StatusTooManyRequests,
	ErrClienteNotFound:      http.StatusNotFound,
	ErrClienteAlreadyExists: http.StatusBadRequest,
	ErrCredentials:          http.StatusBadRequest,
	ErrReservaNotFound:      http.StatusNotFound,
	ErrReservaConflict:      http.StatusConflict,
	ErrReservaPastDate:      http.StatusBadRequest,
	ErrPagamentoNotFound:    http.StatusNotFound,
	ErrPagamentoAlreadyPaid: http.StatusBadRequest,
	ErrDatabase:             http.StatusInternalServerError,
	ErrRecordNotFound:       http.StatusNotFound,
}

// GetStatus maps an application error code to its HTTP status
func GetStatus(errorCode int) int {
	if status, ok := statusByCode[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}
