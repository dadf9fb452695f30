package converter

import (
	"game_backend/internal/api/dto/lobby"
	"game_backend/internal/model"
)

func ToSnapshotResponse(snap model.RoundSnapshot) lobby.SnapshotResponse {
	var override *string
	if snap.AdminDecision != nil {
		side := string(*snap.AdminDecision)
		override = &side
	}

	return lobby.SnapshotResponse{
		Phase:         string(snap.Phase),
		TimeLeft:      snap.TimeLeft,
		RoundID:       snap.RoundID,
		RoundCycle:    snap.RoundCycle,
		AdminDecision: override,
		Result:        toOutcome(snap.Result),
		BetsCount:     snap.BetsCount,
		BetsTotals: lobby.BetTotals{
			Win:  snap.BetsTotals.Win,
			Loss: snap.BetsTotals.Loss,
		},
		ViewersCount: snap.ViewersCount,
		TotalPlayers: snap.TotalPlayers,
	}
}

func toOutcome(res *model.Outcome) *lobby.Outcome {
	if res == nil {
		return nil
	}

	winners := make([]lobby.TopWinner, len(res.TopWinners))
	for i, w := range res.TopWinners {
		winners[i] = lobby.TopWinner{
			MaskedID: w.MaskedID,
			Amount:   w.Amount,
			IsReal:   w.IsReal,
		}
	}

	return &lobby.Outcome{
		Board:            res.Board,
		Decision:         string(res.Decision),
		WinAmount:        res.WinAmount,
		WinningPositions: ToPositions(res.WinningPositions),
		TopWinners:       winners,
	}
}

func ToPositions(positions []model.Position) [][2]int {
	result := make([][2]int, len(positions))
	for i, p := range positions {
		result[i] = [2]int{p.Reel, p.Row}
	}
	return result
}
