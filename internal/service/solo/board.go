package solo

import (
	"math/rand"

	"game_backend/internal/config"
	"game_backend/internal/model"
)

const (
	// Барабаны
	reels = 6
	// Ряды
	rows = 5
	// Скаттер — последний символ таблицы весов
	scatterSymbol = 8
)

// generateBoard Генерация поля по таблице весов,
// сильно перекошенной к дешёвым символам
func generateBoard(weights []int) model.Board {
	var board model.Board
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			board[r][c] = drawSymbol(weights)
		}
	}
	return board
}

// drawSymbol Выбор символа на основе весов
func drawSymbol(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	num := rand.Intn(total)
	cumulative := 0
	for sym, w := range weights {
		cumulative += w
		if num < cumulative {
			return sym
		}
	}
	return len(weights) - 1
}

// evaluateBoard Подсчет выигрыша без принудительной перегенерации поля.
// Колонка с 4+ одинаковыми платит по сниженной кратности, 3 одинаковых
// платят только с фиксированным шансом. Скаттеры: 5-6 платят всегда,
// 3-4 — с шансом. Если ничего не сработало, выигрыш ровно 0
func evaluateBoard(board model.Board, bet float64, cfg config.SoloConfig) (float64, []model.Position) {
	var (
		win       float64
		positions []model.Position
	)

	for r := 0; r < reels; r++ {
		// Частоты символов внутри колонки (скаттер не участвует в линиях)
		counts := make(map[int]int)
		for c := 0; c < rows; c++ {
			if board[r][c] != scatterSymbol {
				counts[board[r][c]]++
			}
		}

		best, bestCount := -1, 0
		for sym, n := range counts {
			if n > bestCount {
				best, bestCount = sym, n
			}
		}

		switch {
		case bestCount >= 4:
			if mult, ok := cfg.LineMultipliers()[bestCount]; ok {
				win += bet * mult
				positions = append(positions, columnPositions(board, r, best)...)
			}
		case bestCount == 3:
			// Тройка платит только вероятностно
			if rand.Float64() < cfg.ThreeKindChance() {
				win += bet * cfg.ThreeKindMultiplier()
				positions = append(positions, columnPositions(board, r, best)...)
			}
		}
	}

	// Скаттеры по всему полю
	scatters := 0
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			if board[r][c] == scatterSymbol {
				scatters++
			}
		}
	}
	if scatters > 6 {
		scatters = 6
	}

	if scatters >= 3 {
		pays := scatters >= 5 || rand.Float64() < cfg.ScatterChance()
		if mult, ok := cfg.ScatterMultipliers()[scatters]; ok && pays {
			win += bet * mult
			for r := 0; r < reels; r++ {
				for c := 0; c < rows; c++ {
					if board[r][c] == scatterSymbol {
						positions = append(positions, model.Position{Reel: r, Row: c})
					}
				}
			}
		}
	}

	return win, positions
}

func columnPositions(board model.Board, reel, sym int) []model.Position {
	var positions []model.Position
	for c := 0; c < rows; c++ {
		if board[reel][c] == sym {
			positions = append(positions, model.Position{Reel: reel, Row: c})
		}
	}
	return positions
}

// drawLossMultiplier Множитель проигрыша из взвешенных полос [1.0, 1.8)
func drawLossMultiplier(bands []config.LossBand) float64 {
	total := 0
	for _, b := range bands {
		total += b.Weight
	}

	num := rand.Intn(total)
	cumulative := 0
	for _, b := range bands {
		cumulative += b.Weight
		if num < cumulative {
			return b.Min + rand.Float64()*(b.Max-b.Min)
		}
	}

	last := bands[len(bands)-1]
	return last.Min + rand.Float64()*(last.Max-last.Min)
}
