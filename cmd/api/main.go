package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-performance-api/infrastructure/repository"
	"github.com/vfg2006/store-performance-api/internal/api"
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/scheduler"
	"github.com/vfg2006/store-performance-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-performance-api/internal/usecases/comparing"
	"github.com/vfg2006/store-performance-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)

	reportService := reporting.NewService(salesRepo)
	comparisonService := comparing.NewService(reportService, catalogRepo)
	catalogService := cataloging.NewService(catalogRepo)

	digestService := scheduler.NewDailyDigestService(reportService, catalogRepo, cfg)
	if err := digestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do digest diário de KPIs")
	}

	server, err := api.New(
		cfg,
		reportService,
		comparisonService,
		catalogService,
		digestService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Valores monetários saem como número JSON, não string, como o
	// dashboard espera
	decimal.MarshalJSONWithoutQuotes = true
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
