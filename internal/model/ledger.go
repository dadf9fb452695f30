package model

import "time"

// Типы записей леджера
const (
	TxTypeGameWin  = "game_win"
	TxTypeGameLoss = "game_loss"
)

// Типы игр
const (
	GameTypeLobby = "lobby"
	GameTypeSolo  = "solo"
)

// Transaction Транзакция по результату игры. Неизменяема после записи
type Transaction struct {
	ID        string
	UserID    int
	Type      string  // game_win / game_loss
	GameType  string  // lobby / solo
	Amount    float64 // выплата при выигрыше, списание при проигрыше
	BetAmount float64 // номинальная ставка
	RoundID   string
	CreatedAt time.Time
}

// BalanceHistory Запись истории изменения баланса. Неизменяема после записи
type BalanceHistory struct {
	ID            string
	UserID        int
	Change        float64 // знаковое изменение баланса
	BalanceBefore float64
	BalanceAfter  float64
	Reason        string // game_win / game_loss
	GameType      string // lobby / solo
	RoundID       string
	CreatedAt     time.Time
}
