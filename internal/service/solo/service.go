package solo

import (
	"game_backend/internal/config"
	"game_backend/internal/repository"
	"game_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        config.SoloConfig
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	txManager  trm.Manager
}

// NewSoloService Создать сервис одиночного режима
func NewSoloService(
	cfg config.SoloConfig,
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	txManager trm.Manager,
) service.SoloService {
	return &serv{
		cfg:        cfg,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}
