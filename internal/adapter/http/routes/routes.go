package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "atelie_gestor/docs"
	"atelie_gestor/internal/adapter/http/handlers"
	"atelie_gestor/internal/adapter/persistence/store"
	"atelie_gestor/internal/infrastructure/ai"
	"atelie_gestor/internal/infrastructure/database"
	"atelie_gestor/internal/infrastructure/payments"
	"atelie_gestor/internal/usecase"
	"atelie_gestor/internal/usecase/interfaces"
	"atelie_gestor/pkg/config"
)

// Run wires the whole application and starts the server. Optional
// collaborators (payments, AI guide) degrade to unavailable endpoints when
// not configured instead of blocking startup.
func Run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	if err := registerRoutes(router, cfg, log); err != nil {
		return err
	}

	log.Info().Str("port", cfg.App.Port).Msg("starting http server")
	return router.Run(":" + cfg.App.Port)
}

func registerRoutes(router *gin.Engine, cfg *config.Config, log zerolog.Logger) error {
	ddb, err := database.NewDynamoDBClient(context.Background(), cfg.Dynamo)
	if err != nil {
		return err
	}
	st := store.New(ddb, log, cfg.Dynamo.TablePrefix)

	var paymentGateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, log); err != nil {
		log.Warn().Err(err).Msg("payment gateway not configured")
	} else {
		paymentGateway = mp
	}

	var guiaService usecase.IGuiaService
	if openai, err := ai.NewOpenAIGateway(cfg.OpenAI, log); err != nil {
		log.Warn().Err(err).Msg("AI guide not configured")
	} else {
		guiaService = usecase.NewGuiaService(openai)
	}

	clientes := usecase.NewClienteService(st)
	produtos := usecase.NewProdutoServicoService(st)
	lancamentos := usecase.NewLancamentoService(st)
	ordens := usecase.NewOrdemProducaoService(st)
	pedidos := usecase.NewPedidoService(st, lancamentos, ordens, paymentGateway, log)
	agendamentos := usecase.NewAgendamentoService(st, pedidos)
	vendas := usecase.NewVendaService(st, produtos, lancamentos, log)
	custos := usecase.NewCustoFixoService(st)
	sessoes := usecase.NewSessaoCaixaService(st, vendas)
	metas := usecase.NewMetaService(st)
	resumo := usecase.NewResumoService(lancamentos, vendas, pedidos, agendamentos, custos, log)

	v1 := router.Group("/v1")
	v1.Use(handlers.RequireOwner())
	addGestaoRoutes(v1,
		handlers.NewClienteHandler(clientes),
		handlers.NewProdutoServicoHandler(produtos),
		handlers.NewPedidoHandler(pedidos),
		handlers.NewOrdemProducaoHandler(ordens),
		handlers.NewAgendamentoHandler(agendamentos),
		handlers.NewLancamentoHandler(lancamentos),
		handlers.NewVendaHandler(vendas),
		handlers.NewCustoFixoHandler(custos),
		handlers.NewSessaoCaixaHandler(sessoes),
		handlers.NewMetaHandler(metas),
		handlers.NewResumoHandler(resumo),
		handlers.NewGuiaHandler(guiaService),
	)

	return nil
}
