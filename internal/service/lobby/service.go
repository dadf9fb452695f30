package lobby

import (
	"sync/atomic"

	"game_backend/internal/config"
	"game_backend/internal/repository"
	"game_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        config.LobbyConfig
	roundRepo  repository.RoundStateRepository
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	txManager  trm.Manager

	loopStarted int32
}

// NewLobbyService Создать сервис лобби-режима
func NewLobbyService(
	cfg config.LobbyConfig,
	roundRepo repository.RoundStateRepository,
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	txManager trm.Manager,
) service.LobbyService {
	return &serv{
		cfg:        cfg,
		roundRepo:  roundRepo,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

// started Атомарный флаг запуска цикла (ровно один цикл на процесс)
func (s *serv) started() bool {
	return !atomic.CompareAndSwapInt32(&s.loopStarted, 0, 1)
}
