package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/cache"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/access"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/account"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/attribution"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/identity"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/localdate"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.SetLevel(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	accountAccessRepo := repository.NewAccountAccessRepository(pgConn)
	localDateRepo := repository.NewLocalDateRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	crmUserRepo := repository.NewCRMUserRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)
	sessionRepo := repository.NewAttributionSessionRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)

	// A tabela de fusos é pré-carregada com os fusos já declarados pelas contas
	timezones, err := accountRepo.ListTimezones(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar fusos horários das contas, seguindo com tabela vazia")
	}
	zones := localdate.NewZoneTable(timezones...)

	var filterCache cache.FilterOptionsCache
	if redisClient := redisconn(ctx, cfg.Redis); redisClient != nil {
		defer redisClient.Close()
		filterCache = cache.NewFilterOptionsCache(redisClient, cfg.Redis.FilterOptionsTTL())
	}

	authenticator := authenticating.NewService(cfg)
	gate := access.NewService(accountAccessRepo, userRepo)

	localDateService := localdate.NewService(localDateRepo, accountRepo, zones, cfg)
	identityService := identity.NewService(activityRepo, accountAccessRepo, crmUserRepo, cfg)
	attributionService := attribution.NewService(sessionRepo, contactRepo, filterCache, cfg)
	metricsEngine := metrics.NewEngine(metrics.DefaultRegistry(), metricRepo)
	rankingService := ranking.NewLeaderboardService(metricsEngine, accountAccessRepo)
	accountService := account.NewService(accountRepo, zones, localDateService)

	// Inicializa os agendadores
	localDateSyncService := scheduler.NewLocalDateSyncService(accountRepo, localDateService, cfg)
	identityBackfillService := scheduler.NewIdentityBackfillService(accountRepo, identityService, cfg)
	attributionCleanupService := scheduler.NewAttributionCleanupService(attributionService, cfg)

	cronServices := handler.CronJobServices{
		handler.CronJobTypeLocalDateSync:      localDateSyncService,
		handler.CronJobTypeIdentityBackfill:   identityBackfillService,
		handler.CronJobTypeAttributionCleanup: attributionCleanupService,
	}

	// Inicia os agendadores em background
	for jobType, job := range cronServices {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job_type", jobType).Error("Erro ao iniciar agendador")
			continue
		}
		logrus.WithField("job_type", jobType).Info("Agendador iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		gate,
		metricsEngine,
		rankingService,
		attributionService,
		identityService,
		accountService,
		cronServices,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger posiciona o processo no diretório do binário (para achar o .env) e configura os logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))

	log.Setup()
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn abre o cliente do cache; sem REDIS_URL (ou com falha) a API segue sem cache
func redisconn(ctx context.Context, redisConfig config.Redis) *redis.Client {
	if redisConfig.URL == "" {
		logrus.Info("REDIS_URL não configurada, cache de opções de filtro desativado")
		return nil
	}

	client, err := cache.NewRedisClient(ctx, redisConfig.URL)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, cache de opções de filtro desativado")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return client
}
