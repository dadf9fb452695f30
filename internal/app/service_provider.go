package app

import (
	"context"

	lobbyAPI "game_backend/internal/api/lobby"
	soloAPI "game_backend/internal/api/solo"
	"game_backend/internal/config"
	"game_backend/internal/config/env"
	"game_backend/internal/middleware"
	"game_backend/internal/repository"
	"game_backend/internal/repository/ledger_repo"
	"game_backend/internal/repository/round_state_repo"
	"game_backend/internal/repository/user_repo"
	"game_backend/internal/service"
	"game_backend/internal/service/lobby"
	"game_backend/internal/service/solo"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg config.JWTConfig

	// User bits
	userRepo repository.UserRepository

	// Ledger bits
	ledgerRepo repository.LedgerRepository

	// Lobby bits
	lobbyCfg  config.LobbyConfig
	roundRepo repository.RoundStateRepository
	lobbyServ service.LobbyService
	lobbyHand *lobbyAPI.Handler

	// Solo bits
	soloCfg  config.SoloConfig
	soloServ service.SoloService
	soloHand *soloAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) LobbyCfg() config.LobbyConfig {
	if sp.lobbyCfg == nil {
		cfg, err := env.NewLobbyConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get lobby config: " + err.Error())
		}
		sp.lobbyCfg = cfg
	}
	return sp.lobbyCfg
}

func (sp *ServiceProvider) RoundStateRepository() repository.RoundStateRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_state_repo.NewRoundStateRepository(sp.LobbyCfg())
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) LobbyService(ctx context.Context) service.LobbyService {
	if sp.lobbyServ == nil {
		sp.lobbyServ = lobby.NewLobbyService(
			sp.LobbyCfg(),
			sp.RoundStateRepository(),
			sp.UserRepo(ctx),
			sp.LedgerRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.lobbyServ
}

func (sp *ServiceProvider) LobbyHandler(ctx context.Context) *lobbyAPI.Handler {
	if sp.lobbyHand == nil {
		sp.lobbyHand = lobbyAPI.NewHandler(lobbyAPI.HandlerDeps{
			Serv: sp.LobbyService(ctx),
		})
	}
	return sp.lobbyHand
}

func (sp *ServiceProvider) SoloCfg() config.SoloConfig {
	if sp.soloCfg == nil {
		cfg, err := env.NewSoloConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get solo config: " + err.Error())
		}
		sp.soloCfg = cfg
	}
	return sp.soloCfg
}

func (sp *ServiceProvider) SoloService(ctx context.Context) service.SoloService {
	if sp.soloServ == nil {
		sp.soloServ = solo.NewSoloService(
			sp.SoloCfg(),
			sp.UserRepo(ctx),
			sp.LedgerRepo(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.soloServ
}

func (sp *ServiceProvider) SoloHandler(ctx context.Context) *soloAPI.Handler {
	if sp.soloHand == nil {
		sp.soloHand = soloAPI.NewHandler(soloAPI.HandlerDeps{Serv: sp.SoloService(ctx)})
	}
	return sp.soloHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Lobby endpoints (ставки и снимок доступны гостям)
		lobbyHandler := sp.LobbyHandler(ctx)
		r.Route("/lobby", func(rr chi.Router) {
			rr.Group(func(g chi.Router) {
				g.Use(middleware.OptionalAuth(sp.JWTCfg()))
				g.Post("/bet", lobbyHandler.PlaceBet)
				g.Get("/state", lobbyHandler.State)
			})
			rr.Group(func(g chi.Router) {
				g.Use(middleware.Auth(sp.JWTCfg()), middleware.AdminOnly)
				g.Post("/override", lobbyHandler.Override)
			})
		})

		// Solo endpoints
		soloHandler := sp.SoloHandler(ctx)
		r.Route("/solo", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/play", soloHandler.Play)
			rr.Get("/history", soloHandler.History)
			rr.Get("/stats", soloHandler.Stats)
			rr.Get("/check-data", soloHandler.CheckData)
		})

		sp.router = r
	}

	return sp.router
}
