package lobby

import (
	"math/rand"

	"game_backend/internal/model"
)

const (
	// Барабаны
	reels = 6
	// Ряды
	rows = 5
	// Количество символов (0..8)
	symbolCount = 9
)

// buildOutcome Генерация поля под требуемое решение.
// Выплата на выигрышном поле — флаговое значение 1:
// выплаты лобби считаются от ставки, не от поля
func (s *serv) buildOutcome(decision model.Side) *model.Outcome {
	if decision == model.SideWin {
		board, positions := generateWinBoard(s.cfg.WinForceCount())
		return &model.Outcome{
			Board:            board,
			Decision:         model.SideWin,
			WinAmount:        1,
			WinningPositions: positions,
		}
	}

	return &model.Outcome{
		Board:    generateLossBoard(s.cfg.LossSymbolCap()),
		Decision: model.SideLoss,
	}
}

// generateWinBoard Случайное поле, докрученное до визуально сильного выигрыша:
// случайные несовпадающие ячейки переписываются выбранным символом,
// пока его не станет минимум force
func generateWinBoard(force int) (model.Board, []model.Position) {
	board := randomBoard()

	target := rand.Intn(symbolCount)
	count := 0
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			if board[r][c] == target {
				count++
			}
		}
	}

	for count < force {
		r, c := rand.Intn(reels), rand.Intn(rows)
		if board[r][c] == target {
			continue
		}
		board[r][c] = target
		count++
	}

	var positions []model.Position
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			if board[r][c] == target {
				positions = append(positions, model.Position{Reel: r, Row: c})
			}
		}
	}

	return board, positions
}

// generateLossBoard Случайное поле без выигрышных скоплений:
// лишние вхождения символа, добравшегося до cap, заменяются другим символом
func generateLossBoard(cap int) model.Board {
	board := randomBoard()

	counts := make([]int, symbolCount)
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			counts[board[r][c]]++
		}
	}

	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			sym := board[r][c]
			if counts[sym] < cap {
				continue
			}
			// Подбираем замену, которая сама не доберется до cap
			repl := rand.Intn(symbolCount)
			for repl == sym || counts[repl] >= cap-1 {
				repl = rand.Intn(symbolCount)
			}
			board[r][c] = repl
			counts[sym]--
			counts[repl]++
		}
	}

	return board
}

func randomBoard() model.Board {
	var board model.Board
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			board[r][c] = rand.Intn(symbolCount)
		}
	}
	return board
}
