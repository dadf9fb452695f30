package solo

// PlayRequest Одиночная игра
type PlayRequest struct {
	BetAmount float64 `json:"bet_amount"` // Размер ставки
}

type PlayResponse struct {
	Reels            [6][5]int `json:"reels"`
	BetAmount        float64   `json:"bet_amount"`
	WinAmount        float64   `json:"win_amount"`
	ActualLoss       float64   `json:"actual_loss"`
	NetChange        float64   `json:"net_change"`
	NewBalance       float64   `json:"new_balance"`
	UserBalance      float64   `json:"user_balance"`
	InitialBalance   float64   `json:"initial_balance"`
	PercentageChange float64   `json:"percentage_change"`
	LossMultiplier   float64   `json:"loss_multiplier,omitempty"`
	WinningPositions [][2]int  `json:"winning_positions"`
}

type GameRecord struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"` // game_win / game_loss
	Amount    float64 `json:"amount"`
	RoundID   string  `json:"round_id"`
	CreatedAt string  `json:"created_at"`
}

type HistoryResponse struct {
	Records []GameRecord `json:"records"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
}

type StatsResponse struct {
	TotalGames  int     `json:"total_games"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	TotalStaked float64 `json:"total_staked"`
	TotalWon    float64 `json:"total_won"`
	NetProfit   float64 `json:"net_profit"`
	WinRate     float64 `json:"win_rate"`
}

type DataResponse struct {
	Balance float64 `json:"balance"` // Баланс пользователя
}
