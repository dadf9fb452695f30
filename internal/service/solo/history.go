package solo

import (
	"context"
	"errors"

	"game_backend/internal/middleware"
	"game_backend/internal/model"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// History Постраничная история игр пользователя в этом режиме
func (s *serv) History(ctx context.Context, page, limit int) ([]model.GameRecord, int, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, 0, errors.New("user id not found in context")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	records, err := s.ledgerRepo.ListGameHistory(ctx, userID, model.GameTypeSolo, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.ledgerRepo.CountGameHistory(ctx, userID, model.GameTypeSolo)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Stats Агрегированная статистика игр пользователя в этом режиме
func (s *serv) Stats(ctx context.Context) (*model.GameStats, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.ledgerRepo.GetGameStats(ctx, userID, model.GameTypeSolo)
}

// CheckData Текущий баланс пользователя
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.Data{Balance: balance}, nil
}
