package model

// Сторона ставки (и она же решение раунда)
type Side string

const (
	SideWin  Side = "win"
	SideLoss Side = "loss"
)

// Фаза раунда лобби
type Phase string

const (
	PhaseBetting  Phase = "betting"
	PhaseSpinning Phase = "spinning"
	PhaseResult   Phase = "result"
)

// Количество раундов в цикле решения (позиции 1-5)
const RoundCycleLen = 5

// Board Игровое поле 6x5 (board[reel][row])
type Board [6][5]int

// Position Координата ячейки на игровом поле
type Position struct {
	Reel int
	Row  int
}

// Bet Ставка в лобби. Неизменяема после принятия
type Bet struct {
	UserID int // 0 = гость (не участвует в расчётах баланса)
	Stake  float64
	Side   Side
}

// TopWinner Запись таблицы победителей.
// IsReal = false для синтетических записей (только для отображения)
type TopWinner struct {
	MaskedID string
	Amount   float64
	IsReal   bool
}

// Outcome Результат раунда/спина. После публикации только читается
type Outcome struct {
	Board            Board
	Decision         Side
	WinAmount        float64
	WinningPositions []Position
	TopWinners       []TopWinner
}

// BetTotals Суммы ставок по сторонам
type BetTotals struct {
	Win  float64
	Loss float64
}

// RoundSnapshot Снимок состояния раунда для клиента
type RoundSnapshot struct {
	Phase         Phase
	TimeLeft      int
	RoundID       string
	RoundCycle    int
	AdminDecision *Side
	Result        *Outcome
	BetsCount     int
	BetsTotals    BetTotals
	ViewersCount  int
	TotalPlayers  int
}
