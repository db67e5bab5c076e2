package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Doompy/event-reward-system/config"
	"github.com/Doompy/event-reward-system/internal/common"
	"github.com/Doompy/event-reward-system/internal/domain"
	"github.com/Doompy/event-reward-system/internal/domain/issuer"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/internal/repository"
	"github.com/Doompy/event-reward-system/pkg/authenticator"
	"github.com/Doompy/event-reward-system/pkg/logger"
	"github.com/Doompy/event-reward-system/pkg/router"
	"github.com/Doompy/event-reward-system/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs config.Configs
	logger  logger.Logger

	eventRepo         repository.EventRepository
	rewardRepo        repository.RewardRepository
	participationRepo repository.EventParticipationRepository
	rewardRequestRepo repository.RewardRequestRepository
	userRewardRepo    repository.UserRewardRepository
	eventLogRepo      repository.EventLogRepository

	locker *common.KeyLocker
	audit  *common.AuditLogger
	engine *issuer.Engine

	eventDomain         domain.EventDomain
	rewardDomain        domain.RewardDomain
	participationDomain domain.ParticipationDomain
	rewardRequestDomain domain.RewardRequestDomain
	userRewardDomain    domain.UserRewardDomain
	eventLogDomain      domain.EventLogDomain

	tokenEngine authenticator.TokenEngine[model.AccessToken]

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	s.configs = config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "mysql"),
			Password: getEnv("MYSQL_PASSWORD", "mysql"),
			Database: getEnv("MYSQL_DATABASE", "event_reward"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("HOST", "localhost"),
			Port:         getEnv("PORT", "8080"),
			Cert:         getEnv("SERVER_CERT", ""),
			Key:          getEnv("SERVER_KEY", ""),
			MaxLimit:     getEnvAsInt("API_MAX_LIMIT", 50),
			DefaultLimit: getEnvAsInt("API_DEFAULT_LIMIT", 10),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: getEnvAsDuration("ACCESS_TOKEN_DURATION", time.Hour),
			},
		},
		LogLevel: getEnvAsInt("LOG_LEVEL", logger.INFO),
	}
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               s.configs.Database.ConnectionString(),
		DefaultStringSize: 256,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRepos() {
	s.eventRepo = repository.NewEventRepository()
	s.rewardRepo = repository.NewRewardRepository()
	s.participationRepo = repository.NewEventParticipationRepository()
	s.rewardRequestRepo = repository.NewRewardRequestRepository()
	s.userRewardRepo = repository.NewUserRewardRepository()
	s.eventLogRepo = repository.NewEventLogRepository()
}

func (s *srv) loadDomains() {
	s.locker = common.NewKeyLocker()
	s.audit = common.NewAuditLogger(s.eventLogRepo)
	s.engine = issuer.NewEngine(s.rewardRequestRepo, s.rewardRepo, s.userRewardRepo, s.audit)
	s.tokenEngine = authenticator.NewTokenEngine[model.AccessToken](s.configs.Auth)

	s.eventDomain = domain.NewEventDomain(s.eventRepo, s.audit)
	s.rewardDomain = domain.NewRewardDomain(s.rewardRepo, s.eventRepo, s.audit)
	s.participationDomain = domain.NewParticipationDomain(
		s.participationRepo, s.eventRepo, s.rewardRequestRepo, s.locker, s.audit)
	s.rewardRequestDomain = domain.NewRewardRequestDomain(
		s.rewardRequestRepo, s.eventRepo, s.rewardRepo, s.participationRepo,
		s.engine, s.locker, s.audit)
	s.userRewardDomain = domain.NewUserRewardDomain(s.userRewardRepo)
	s.eventLogDomain = domain.NewEventLogDomain(s.eventLogRepo)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}

	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}

	return fallback
}
