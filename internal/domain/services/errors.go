package services

import "errors"

// Sentinel errors shared by the services. Controllers translate these
// into the HTTP status and the {"erro": ...} body.
var (
	ErrNaoEncontrado       = errors.New("registro não encontrado")
	ErrCredenciaisInvalido = errors.New("CPF ou senha inválidos")
	ErrCPFJaCadastrado     = errors.New("CPF já cadastrado")
	ErrEmailJaCadastrado   = errors.New("email já cadastrado")
	ErrPlacaJaCadastrada   = errors.New("placa já cadastrada")
	ErrContaInativa        = errors.New("conta desativada")

	ErrReservaConflito    = errors.New("já existe uma reserva confirmada para esta área nesta data")
	ErrReservaDataPassada = errors.New("não é possível reservar uma data no passado")
	ErrAreaIndisponivel   = errors.New("área indisponível para reservas")

	ErrPagamentoJaPago = errors.New("pagamento já está pago")

	ErrVotoDuplicado    = errors.New("você já votou nesta votação")
	ErrVotacaoEncerrada = errors.New("votação fora do período de votação")
	ErrOpcaoInvalida    = errors.New("opção não pertence a esta votação")

	ErrManutencaoConcluida = errors.New("manutenção já concluída")
	ErrVisitaEncerrada     = errors.New("visita já encerrada")
	ErrVisitanteJaDentro   = errors.New("esta pessoa já consta como DENTRO do condomínio")
	ErrEncomendaEntregue   = errors.New("encomenda já foi retirada")
)
