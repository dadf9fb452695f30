package service

import (
	"context"

	"game_backend/internal/model"
)

type LobbyService interface {
	// StartLoop запускает таймерный цикл раунда. Повторные вызовы игнорируются
	StartLoop()

	PlaceBet(ctx context.Context, stake float64, side model.Side) error
	SetOverride(side model.Side) error
	Snapshot(ctx context.Context) model.RoundSnapshot
}

type SoloService interface {
	Play(ctx context.Context, req model.SoloPlay) (*model.SoloPlayResult, error)
	History(ctx context.Context, page, limit int) ([]model.GameRecord, int, error)
	Stats(ctx context.Context) (*model.GameStats, error)
	CheckData(ctx context.Context) (*model.Data, error)
}
