package solo

import (
	"testing"

	"game_backend/internal/config"
	"game_backend/internal/model"
)

// Тестовая конфигурация, повторяющая боевые значения
type testConfig struct{}

func (testConfig) MinBet() float64 { return 1 }
func (testConfig) MaxBet() float64 { return 10000 }

func (testConfig) SymbolWeights() []int {
	return []int{22, 20, 16, 12, 10, 8, 5, 4, 3}
}

func (testConfig) LineMultipliers() map[int]float64 {
	return map[int]float64{4: 1.4, 5: 3.2}
}

func (testConfig) ThreeKindMultiplier() float64 { return 0.6 }
func (testConfig) ThreeKindChance() float64     { return 0.25 }

func (testConfig) ScatterMultipliers() map[int]float64 {
	return map[int]float64{3: 0.5, 4: 1.0, 5: 2.5, 6: 6.0}
}

func (testConfig) ScatterChance() float64 { return 0.30 }

func (testConfig) LossBands() []config.LossBand {
	return []config.LossBand{
		{Min: 1.00, Max: 1.15, Weight: 25},
		{Min: 1.15, Max: 1.35, Weight: 35},
		{Min: 1.35, Max: 1.60, Weight: 25},
		{Min: 1.60, Max: 1.80, Weight: 15},
	}
}

// Поле без единой выигрышной комбинации: в каждой колонке
// все символы разные, скаттеров нет
func deadBoard() model.Board {
	var board model.Board
	for r := 0; r < reels; r++ {
		for c := 0; c < rows; c++ {
			board[r][c] = (r + c) % 7
		}
	}
	return board
}

func TestEvaluateBoardNoCombos(t *testing.T) {
	win, positions := evaluateBoard(deadBoard(), 100, testConfig{})

	if win != 0 {
		t.Fatalf("win = %f, want exactly 0", win)
	}
	if len(positions) != 0 {
		t.Fatalf("positions = %v, want none", positions)
	}
}

func TestEvaluateBoardFourOfKindColumn(t *testing.T) {
	board := deadBoard()
	board[0] = [rows]int{1, 1, 1, 1, 2}

	win, positions := evaluateBoard(board, 100, testConfig{})

	if win != 100*1.4 {
		t.Fatalf("win = %f, want %f", win, 100*1.4)
	}
	if len(positions) != 4 {
		t.Fatalf("positions = %v, want 4 cells of the winning column", positions)
	}
	for _, p := range positions {
		if p.Reel != 0 || board[p.Reel][p.Row] != 1 {
			t.Fatalf("position %v does not point at the winning symbol", p)
		}
	}
}

func TestEvaluateBoardFiveOfKindColumn(t *testing.T) {
	board := deadBoard()
	board[3] = [rows]int{4, 4, 4, 4, 4}

	win, _ := evaluateBoard(board, 50, testConfig{})

	if win != 50*3.2 {
		t.Fatalf("win = %f, want %f", win, 50*3.2)
	}
}

func TestEvaluateBoardFiveScattersAlwaysPay(t *testing.T) {
	board := deadBoard()
	// Пять скаттеров в разных колонках: платят без броска шанса
	for r := 0; r < 5; r++ {
		board[r][r%rows] = scatterSymbol
	}

	win, positions := evaluateBoard(board, 10, testConfig{})

	if win != 10*2.5 {
		t.Fatalf("win = %f, want %f", win, 10*2.5)
	}
	if len(positions) != 5 {
		t.Fatalf("positions = %v, want the 5 scatter cells", positions)
	}
}

func TestEvaluateBoardScatterDoesNotJoinLines(t *testing.T) {
	board := deadBoard()
	// Четыре скаттера в одной колонке — это не линия,
	// а 4 скаттера (платят только с шансом)
	board[0] = [rows]int{scatterSymbol, scatterSymbol, scatterSymbol, scatterSymbol, 2}

	for i := 0; i < 200; i++ {
		win, _ := evaluateBoard(board, 10, testConfig{})
		if win != 0 && win != 10*1.0 {
			t.Fatalf("win = %f, want 0 or the 4-scatter payout", win)
		}
	}
}

func TestDrawLossMultiplierStaysInRange(t *testing.T) {
	bands := testConfig{}.LossBands()
	hits := make([]int, len(bands))

	for i := 0; i < 10000; i++ {
		m := drawLossMultiplier(bands)
		if m < 1.0 || m >= 1.8 {
			t.Fatalf("multiplier %f outside [1.0, 1.8)", m)
		}
		for bi, b := range bands {
			if m >= b.Min && m < b.Max {
				hits[bi]++
				break
			}
		}
	}

	// Каждая полоса должна быть достижима
	for bi, n := range hits {
		if n == 0 {
			t.Fatalf("band %d was never drawn", bi)
		}
	}
}

func TestGenerateBoardWinRate(t *testing.T) {
	cfg := testConfig{}

	wins := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		board := generateBoard(cfg.SymbolWeights())
		if win, _ := evaluateBoard(board, 10, cfg); win > 0 {
			wins++
		}
	}

	// Частота выигрышей при боевых весах держится около трети спинов
	rate := float64(wins) / float64(trials)
	if rate < 0.20 || rate > 0.55 {
		t.Fatalf("win rate = %f, want roughly one third of spins", rate)
	}
}

func TestDrawSymbolCoversAllSymbols(t *testing.T) {
	weights := testConfig{}.SymbolWeights()
	seen := make(map[int]bool)

	for i := 0; i < 20000; i++ {
		sym := drawSymbol(weights)
		if sym < 0 || sym >= len(weights) {
			t.Fatalf("symbol %d outside the weight table", sym)
		}
		seen[sym] = true
	}

	for sym := range weights {
		if !seen[sym] {
			t.Fatalf("symbol %d was never drawn", sym)
		}
	}
}
