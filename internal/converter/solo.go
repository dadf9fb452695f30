package converter

import (
	"game_backend/internal/api/dto/solo"
	"game_backend/internal/model"
)

func ToSoloPlay(req solo.PlayRequest) model.SoloPlay {
	return model.SoloPlay{
		Bet: req.BetAmount,
	}
}

func ToPlayResponse(res model.SoloPlayResult) solo.PlayResponse {
	return solo.PlayResponse{
		Reels:            res.Board,
		BetAmount:        res.BetAmount,
		WinAmount:        res.WinAmount,
		ActualLoss:       res.ActualLoss,
		NetChange:        res.NetChange,
		NewBalance:       res.NewBalance,
		UserBalance:      res.UserBalance,
		InitialBalance:   res.InitialBalance,
		PercentageChange: res.PercentageChange,
		LossMultiplier:   res.LossMultiplier,
		WinningPositions: ToPositions(res.WinningPositions),
	}
}

func ToHistoryResponse(records []model.GameRecord, total, page, limit int) solo.HistoryResponse {
	result := make([]solo.GameRecord, len(records))
	for i, r := range records {
		result[i] = solo.GameRecord{
			ID:        r.ID,
			Type:      r.Type,
			Amount:    r.Amount,
			RoundID:   r.RoundID,
			CreatedAt: r.CreatedAt,
		}
	}

	return solo.HistoryResponse{
		Records: result,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}
}

func ToStatsResponse(stats model.GameStats) solo.StatsResponse {
	return solo.StatsResponse{
		TotalGames:  stats.TotalGames,
		Wins:        stats.Wins,
		Losses:      stats.Losses,
		TotalStaked: stats.TotalStaked,
		TotalWon:    stats.TotalWon,
		NetProfit:   stats.NetProfit,
		WinRate:     stats.WinRate,
	}
}

func ToDataResponse(data model.Data) solo.DataResponse {
	return solo.DataResponse{
		Balance: data.Balance,
	}
}
