package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/infrastructure/integrator/openai"
	"github.com/vfg2006/guia-local-api/infrastructure/inventory"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/api"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/scheduler"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/internal/usecases/company"
	"github.com/vfg2006/guia-local-api/internal/usecases/copywriting"
	"github.com/vfg2006/guia-local-api/internal/usecases/directory"
	"github.com/vfg2006/guia-local-api/internal/usecases/offering"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Relógio único da aplicação, sempre no fuso configurado
	now := func() time.Time {
		return time.Now().In(cfg.App.Location)
	}

	companyRepo := repository.NewCompanyRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	offerRepo := repository.NewOfferRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	sponsorshipRepo := repository.NewSponsorshipRepository(pgConn)

	slotInventory := inventory.NewSlotInventory(sponsorshipRepo, cfg.Sponsorship, cfg.App.Location)
	textGenerator := openai.NewClient(cfg.OpenAI)

	authenticator := authenticating.NewService(userRepo, companyRepo, cfg)
	companyService := company.NewService(companyRepo)
	availabilityResolver := availability.NewService(companyRepo, now)
	offeringService := offering.NewService(companyRepo, offerRepo, eventRepo, now)
	sponsorService := sponsoring.NewService(companyRepo, sponsorshipRepo, slotInventory, cfg.Sponsorship, now)
	directoryService := directory.NewService(companyRepo, offeringService, sponsorService, now)
	copywriter := copywriting.NewService(textGenerator)

	expirationSweepService := scheduler.NewExpirationSweepService(offerRepo, eventRepo, cfg, now)
	if err := expirationSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de expiração de ofertas e eventos")
	} else {
		logrus.Info("Agendador de expiração de ofertas e eventos iniciado com sucesso")
	}

	server, err := api.New(cfg, pgConn, api.Services{
		Authenticator:  authenticator,
		Companies:      companyService,
		Availability:   availabilityResolver,
		Offering:       offeringService,
		Sponsor:        sponsorService,
		Directory:      directoryService,
		Copywriter:     copywriter,
		ExpirationSync: expirationSweepService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
