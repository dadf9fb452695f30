package model

// SoloPlay Запрос одиночной игры
type SoloPlay struct {
	Bet float64
}

// SoloPlayResult Результат одиночной игры.
// UserBalance дублирует NewBalance (клиент исторически читает оба поля)
type SoloPlayResult struct {
	Board            Board
	BetAmount        float64
	WinAmount        float64
	ActualLoss       float64
	NetChange        float64
	NewBalance       float64
	UserBalance      float64
	InitialBalance   float64
	PercentageChange float64
	LossMultiplier   float64 // 0, если спин выигрышный
	WinningPositions []Position
}

// GameRecord Одна запись истории игр пользователя
type GameRecord struct {
	ID        string
	Type      string // game_win / game_loss
	GameType  string // lobby / solo
	Amount    float64
	RoundID   string
	CreatedAt string
}

// GameStats Агрегированная статистика по играм пользователя
type GameStats struct {
	TotalGames  int
	Wins        int
	Losses      int
	TotalStaked float64
	TotalWon    float64
	NetProfit   float64
	WinRate     float64 // в процентах
}

// Data Баланс пользователя для check-data
type Data struct {
	Balance float64
}
