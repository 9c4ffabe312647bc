package usecase

import "errors"

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidUserID = errors.New("invalid user id")

	ErrClienteNotFound     = errors.New("cliente not found")
	ErrProdutoNotFound     = errors.New("produto/servico not found")
	ErrPedidoNotFound      = errors.New("pedido not found")
	ErrOrdemNotFound       = errors.New("ordem de producao not found")
	ErrAgendamentoNotFound = errors.New("agendamento not found")
	ErrLancamentoNotFound  = errors.New("lancamento not found")
	ErrVendaNotFound       = errors.New("venda not found")
	ErrCustoFixoNotFound   = errors.New("custo fixo not found")
	ErrSessaoNotFound      = errors.New("sessao de caixa not found")
	ErrMetaNotFound        = errors.New("meta not found")

	ErrSessaoJaAberta  = errors.New("there is already an open cash session")
	ErrSessaoFechada   = errors.New("cash session already closed")
	ErrEstoqueNegativo = errors.New("stock would become negative")
)
