package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Doompy/event-reward-system/internal/middleware"
	"github.com/Doompy/event-reward-system/internal/model"
	"github.com/Doompy/event-reward-system/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = context.Background()
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)

	authVerifier := middleware.NewAuthVerifier(s.tokenEngine)

	// Public API
	{
		router.GET(s.router, "/getEvent", s.eventDomain.Get)
		router.GET(s.router, "/getListEvent", s.eventDomain.GetList)
		router.GET(s.router, "/getActiveEvents", s.eventDomain.GetActiveList)
		router.GET(s.router, "/getListReward", s.rewardDomain.GetList)
	}

	// User API
	userRouter := s.router.Branch()
	userRouter.Before(authVerifier.Middleware())
	{
		router.POST(userRouter, "/participate", s.participationDomain.Create)
		router.POST(userRouter, "/requestRewards", s.rewardRequestDomain.RequestRewards)
		router.POST(userRouter, "/cancelRewardRequest", s.rewardRequestDomain.Cancel)
		router.GET(userRouter, "/getRewardRequest", s.rewardRequestDomain.Get)
		router.GET(userRouter, "/getMyRewardRequests", s.rewardRequestDomain.GetMyList)
		router.GET(userRouter, "/getMyRewards", s.userRewardDomain.GetMyRewards)
	}

	// Operator API
	operatorRouter := s.router.Branch()
	operatorRouter.Before(authVerifier.WithRoles(
		model.RoleOperator, model.RoleAdmin).Middleware())
	{
		router.POST(operatorRouter, "/createEvent", s.eventDomain.Create)
		router.POST(operatorRouter, "/updateEventByID", s.eventDomain.UpdateByID)
		router.POST(operatorRouter, "/createReward", s.rewardDomain.Create)
		router.POST(operatorRouter, "/updateRewardByID", s.rewardDomain.UpdateByID)
		router.POST(operatorRouter, "/reviewRewardRequest", s.rewardRequestDomain.Review)
		router.GET(operatorRouter, "/getListRewardRequest", s.rewardRequestDomain.GetList)
		router.GET(operatorRouter, "/getListParticipation", s.participationDomain.GetList)
	}

	// Auditor API
	auditorRouter := s.router.Branch()
	auditorRouter.Before(authVerifier.WithRoles(
		model.RoleAuditor, model.RoleOperator, model.RoleAdmin).Middleware())
	{
		router.GET(auditorRouter, "/getParticipationStats", s.participationDomain.GetStats)
		router.GET(auditorRouter, "/getListEventLog", s.eventLogDomain.GetList)
	}
}
