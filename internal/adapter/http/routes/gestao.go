package routes

import (
	"github.com/gin-gonic/gin"

	"atelie_gestor/internal/adapter/http/handlers"
)

func addGestaoRoutes(
	rg *gin.RouterGroup,
	clientes *handlers.ClienteHandler,
	produtos *handlers.ProdutoServicoHandler,
	pedidos *handlers.PedidoHandler,
	ordens *handlers.OrdemProducaoHandler,
	agendamentos *handlers.AgendamentoHandler,
	lancamentos *handlers.LancamentoHandler,
	vendas *handlers.VendaHandler,
	custos *handlers.CustoFixoHandler,
	sessoes *handlers.SessaoCaixaHandler,
	metas *handlers.MetaHandler,
	resumo *handlers.ResumoHandler,
	guia *handlers.GuiaHandler,
) {
	c := rg.Group("/clientes")
	{
		c.POST("", clientes.Create)
		c.GET("", clientes.List)
		c.GET("/:id", clientes.GetByID)
		c.PATCH("/:id", clientes.Update)
		c.DELETE("/:id", clientes.Delete)
	}

	p := rg.Group("/produtos-servicos")
	{
		p.POST("", produtos.Create)
		p.GET("", produtos.List)
		p.GET("/:id", produtos.GetByID)
		p.PATCH("/:id", produtos.Update)
		p.PATCH("/:id/estoque", produtos.AjustarEstoque)
		p.DELETE("/:id", produtos.Delete)
	}

	pe := rg.Group("/pedidos")
	{
		pe.POST("", pedidos.Create)
		pe.GET("", pedidos.List)
		pe.GET("/:id", pedidos.GetByID)
		pe.PATCH("/:id", pedidos.Update)
		pe.POST("/:id/entrada", pedidos.ProcessarEntrada)
		pe.DELETE("/:id", pedidos.Delete)
	}

	o := rg.Group("/ordens-producao")
	{
		o.POST("", ordens.Create)
		o.GET("", ordens.List)
		o.GET("/:id", ordens.GetByID)
		o.PATCH("/:id", ordens.Update)
		o.PATCH("/:id/progresso", ordens.AtualizarProgresso)
		o.DELETE("/:id", ordens.Delete)
	}

	a := rg.Group("/agendamentos")
	{
		a.POST("", agendamentos.Create)
		a.GET("", agendamentos.List)
		a.GET("/:id", agendamentos.GetByID)
		a.PATCH("/:id", agendamentos.Update)
		a.PATCH("/:id/confirmar", agendamentos.Confirmar)
		a.DELETE("/:id", agendamentos.Delete)
	}

	l := rg.Group("/lancamentos")
	{
		l.POST("", lancamentos.Create)
		l.GET("", lancamentos.List)
		l.GET("/:id", lancamentos.GetByID)
		l.PATCH("/:id", lancamentos.Update)
		l.DELETE("/:id", lancamentos.Delete)
	}

	v := rg.Group("/vendas")
	{
		v.POST("", vendas.Create)
		v.GET("", vendas.List)
		v.GET("/:id", vendas.GetByID)
		v.PATCH("/:id/cancelar", vendas.Cancelar)
		v.DELETE("/:id", vendas.Delete)
	}

	cf := rg.Group("/custos-fixos")
	{
		cf.POST("", custos.Create)
		cf.GET("", custos.List)
		cf.GET("/:id", custos.GetByID)
		cf.PATCH("/:id", custos.Update)
		cf.DELETE("/:id", custos.Delete)
	}

	sc := rg.Group("/sessoes-caixa")
	{
		sc.POST("", sessoes.Abrir)
		sc.GET("", sessoes.List)
		sc.GET("/aberta", sessoes.GetAberta)
		sc.GET("/:id", sessoes.GetByID)
		sc.PATCH("/:id/fechar", sessoes.Fechar)
		sc.DELETE("/:id", sessoes.Delete)
	}

	m := rg.Group("/metas")
	{
		m.POST("", metas.Create)
		m.GET("", metas.List)
		m.GET("/:id", metas.GetByID)
		m.PATCH("/:id", metas.Update)
		m.PATCH("/:id/progresso", metas.RegistrarProgresso)
		m.DELETE("/:id", metas.Delete)
	}

	rg.GET("/resumo/mensal", resumo.Mensal)
	rg.POST("/guia/sugerir", guia.Sugerir)
}
