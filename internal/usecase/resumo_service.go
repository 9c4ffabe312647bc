package usecase

import (
	"context"
	"strings"
	"time"

	"atelie_gestor/internal/domain/entities"

	"github.com/rs/zerolog"
)

// ResumoMensal is the month dashboard aggregate. It is computed on demand and
// never persisted.
type ResumoMensal struct {
	Mes              string  `json:"mes"`
	Receitas         float64 `json:"receitas"`
	Despesas         float64 `json:"despesas"`
	Saldo            float64 `json:"saldo"`
	CustosFixos      float64 `json:"custosFixos"`
	VendasQuantidade int     `json:"vendasQuantidade"`
	VendasTotal      float64 `json:"vendasTotal"`
	PedidosAbertos   int     `json:"pedidosAbertos"`
	AgendamentosMes  int     `json:"agendamentosMes"`
}

type IResumoService interface {
	Mensal(ctx context.Context, userID string, ano int, mes time.Month) (ResumoMensal, error)
}

// ResumoService folds the month's documents into one dashboard read. Each
// underlying collection is read independently and fails soft: a collection
// that cannot be read contributes its zero value and a warning, instead of
// sinking the whole summary.
type ResumoService struct {
	lancamentos *LancamentoService
	vendas      *VendaService
	pedidos     *PedidoService
	agendas     *AgendamentoService
	custos      *CustoFixoService
	log         zerolog.Logger
}

var _ IResumoService = (*ResumoService)(nil)

func NewResumoService(lancamentos *LancamentoService, vendas *VendaService, pedidos *PedidoService, agendas *AgendamentoService, custos *CustoFixoService, log zerolog.Logger) *ResumoService {
	return &ResumoService{
		lancamentos: lancamentos,
		vendas:      vendas,
		pedidos:     pedidos,
		agendas:     agendas,
		custos:      custos,
		log:         log,
	}
}

// withFallback runs one sub-read of the summary, replacing a failure with the
// zero value of its result.
func withFallback[T any](log zerolog.Logger, parte string, read func() (T, error)) T {
	out, err := read()
	if err != nil {
		var zero T
		log.Warn().Err(err).Str("parte", parte).Msg("summary sub-read failed, using zero value")
		return zero
	}
	return out
}

func (s *ResumoService) Mensal(ctx context.Context, userID string, ano int, mes time.Month) (ResumoMensal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ResumoMensal{}, ErrInvalidUserID
	}

	inicio := time.Date(ano, mes, 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0)

	resumo := ResumoMensal{Mes: inicio.Format("2006-01")}

	lancamentos := withFallback(s.log, "lancamentos", func() ([]entities.Lancamento, error) {
		return s.lancamentos.ListByPeriodo(ctx, userID, inicio, fim)
	})
	for _, l := range lancamentos {
		switch l.Tipo {
		case entities.LancamentoReceita:
			resumo.Receitas += l.Valor
		case entities.LancamentoDespesa:
			resumo.Despesas += l.Valor
		}
	}

	vendas := withFallback(s.log, "vendas", func() ([]entities.Venda, error) {
		return s.vendas.List(ctx, userID)
	})
	for _, v := range vendas {
		if v.Status != entities.VendaConcluida || v.CreatedAt.Before(inicio) || !v.CreatedAt.Before(fim) {
			continue
		}
		resumo.VendasQuantidade++
		resumo.VendasTotal += v.Total
	}

	pedidos := withFallback(s.log, "pedidos", func() ([]entities.Pedido, error) {
		return s.pedidos.List(ctx, userID)
	})
	for _, p := range pedidos {
		switch p.StatusProducao {
		case entities.ProducaoPendente, entities.ProducaoEmAndamento, entities.ProducaoPronto:
			resumo.PedidosAbertos++
		}
	}

	agendamentos := withFallback(s.log, "agendamentos", func() ([]entities.Agendamento, error) {
		return s.agendas.ListByPeriodo(ctx, userID, inicio, fim)
	})
	for _, a := range agendamentos {
		if a.Status != entities.AgendamentoCancelado {
			resumo.AgendamentosMes++
		}
	}

	custos := withFallback(s.log, "custos_fixos", func() ([]entities.CustoFixo, error) {
		return s.custos.ListAtivos(ctx, userID)
	})
	for _, c := range custos {
		resumo.CustosFixos += c.ValorMensal
	}

	resumo.Saldo = resumo.Receitas - resumo.Despesas
	return resumo, nil
}
