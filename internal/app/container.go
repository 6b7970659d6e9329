package app

import (
	"context"
	"log"
	"time"

	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/agent"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/aggregator"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/config"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/database/migration"
	dbpostgres "github.com/shaktisingh404/Auto-Job-Apply-System/internal/database/postgres"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/infrastructure/cache"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/mailer"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/pkg/jwt"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/provider"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/repository"
	"github.com/shaktisingh404/Auto-Job-Apply-System/internal/usecase"
)

// Container wires every collaborator once at startup. Optional pieces
// (Gemini, SMTP, Redis) degrade to nil or no-op rather than blocking boot.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis

	JWT jwt.Service

	JobSearchUC usecase.JobSearchUsecase
	ApplyUC     usecase.ApplyUsecase
	AuthUC      usecase.AuthUsecase
	UserUC      usecase.UserUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, log.Default())

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	reconciler := repository.NewJobReconciler(db)

	agg := aggregator.New(log.Default(),
		provider.NewLinkedIn(cfg.RapidAPI, log.Default()),
		provider.NewActiveJobs(cfg.RapidAPI, log.Default()),
		provider.NewJSearch(cfg.RapidAPI, log.Default()),
	)

	var inferencer usecase.FilterInferencer
	var drafter usecase.EmailDrafter
	if cfg.Gemini.APIKey != "" {
		agentClient, agentErr := agent.NewClient(ctx, cfg.Gemini)
		if agentErr != nil {
			log.Printf("[App] Gemini client unavailable, agents disabled: %v", agentErr)
		} else {
			inferencer = agentClient
			drafter = agentClient
		}
	}

	var searchCache usecase.SearchCache
	if redisCache != nil {
		searchCache = redisCache
	}

	jobSearchUC := usecase.NewJobSearchUsecase(agg, reconciler, userRepo, appRepo, inferencer, searchCache, log.Default())
	applyUC := usecase.NewApplyUsecase(userRepo, jobRepo, appRepo, drafter, mailer.NewSMTPMailer(cfg.SMTP), log.Default())
	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)

	return &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisCache,
		JWT:         jwtSvc,
		JobSearchUC: jobSearchUC,
		ApplyUC:     applyUC,
		AuthUC:      authUC,
		UserUC:      userUC,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("[App] cache close error: %v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
