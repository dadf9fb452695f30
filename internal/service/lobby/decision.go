package lobby

import (
	"game_backend/internal/model"
)

// decideRound Алгоритм решения раунда.
// Ручное переопределение используется как есть. Иначе решение зависит
// от позиции в 5-раундовом цикле: позиция 5 отдает раунд стороне
// большинства по сумме ставок, остальные позиции — стороне меньшинства.
// При равенстве сумм большинством считается win
func decideRound(bets []model.Bet, cycle int, override *model.Side) model.Side {
	if override != nil {
		return *override
	}

	var winTotal, lossTotal float64
	for _, b := range bets {
		if b.Side == model.SideWin {
			winTotal += b.Stake
		} else {
			lossTotal += b.Stake
		}
	}

	majority := model.SideWin
	minority := model.SideLoss
	if lossTotal > winTotal {
		majority, minority = model.SideLoss, model.SideWin
	}

	if cycle == model.RoundCycleLen {
		return majority
	}
	return minority
}
