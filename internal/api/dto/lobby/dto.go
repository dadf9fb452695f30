package lobby

// PlaceBetRequest Ставка в лобби
type PlaceBetRequest struct {
	Stake float64 `json:"stake"` // Размер ставки (> 0)
	Side  string  `json:"side"`  // win / loss
}

type PlaceBetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OverrideRequest Ручное решение раунда (только админ, только в spinning)
type OverrideRequest struct {
	Decision string `json:"decision"` // win / loss
}

type BetTotals struct {
	Win  float64 `json:"win"`
	Loss float64 `json:"loss"`
}

type TopWinner struct {
	MaskedID string  `json:"masked_id"`
	Amount   float64 `json:"amount"`
	IsReal   bool    `json:"is_real"`
}

type Outcome struct {
	Board            [6][5]int   `json:"board"`
	Decision         string      `json:"decision"`
	WinAmount        float64     `json:"win_amount"`
	WinningPositions [][2]int    `json:"winning_positions"`
	TopWinners       []TopWinner `json:"top_winners"`
}

// SnapshotResponse Снимок текущего раунда
type SnapshotResponse struct {
	Phase         string    `json:"phase"`
	TimeLeft      int       `json:"time_left"`
	RoundID       string    `json:"round_id"`
	RoundCycle    int       `json:"round_cycle"`
	AdminDecision *string   `json:"admin_decision,omitempty"`
	Result        *Outcome  `json:"result,omitempty"`
	BetsCount     int       `json:"bets_count"`
	BetsTotals    BetTotals `json:"bets_totals"`
	ViewersCount  int       `json:"viewers_count"`
	TotalPlayers  int       `json:"total_players"`
}
