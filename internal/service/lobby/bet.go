package lobby

import (
	"context"
	"math"

	"game_backend/internal/middleware"
	"game_backend/internal/model"
)

// PlaceBet Прием ставки в текущий раунд.
// Принимается только в фазе ставок с остатком таймера >= 1.
// Баланс здесь не трогается — списание только при расчёте раунда.
// Гость (без user_id в контексте) ставит с UserID = 0
func (s *serv) PlaceBet(ctx context.Context, stake float64, side model.Side) error {
	// Валидация ставки
	if stake <= 0 || math.IsNaN(stake) || math.IsInf(stake, 0) {
		return model.ErrInvalidStake
	}
	if side != model.SideWin && side != model.SideLoss {
		return model.ErrInvalidSide
	}

	userID, _ := middleware.UserIDFromContext(ctx)

	return s.roundRepo.AppendBet(model.Bet{
		UserID: userID,
		Stake:  stake,
		Side:   side,
	})
}
