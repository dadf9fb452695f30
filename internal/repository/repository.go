package repository

import (
	"context"

	"game_backend/internal/model"
)

type UserRepository interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetBalance(ctx context.Context, id int) (float64, error)

	// GetUserForUpdate читает пользователя с блокировкой строки (FOR UPDATE).
	// Имеет смысл только внутри транзакции
	GetUserForUpdate(ctx context.Context, id int) (*model.User, error)
	UpdateBalance(ctx context.Context, id int, amount float64) error
}

type LedgerRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	CreateBalanceHistory(ctx context.Context, h *model.BalanceHistory) error

	ListGameHistory(ctx context.Context, userID int, gameType string, limit, offset int) ([]model.GameRecord, error)
	CountGameHistory(ctx context.Context, userID int, gameType string) (int, error)
	GetGameStats(ctx context.Context, userID int, gameType string) (*model.GameStats, error)
}

// RoundEvent Событие, возвращаемое тиком состояния раунда
type RoundEvent int

const (
	// RoundEventNone Тик без смены фазы
	RoundEventNone RoundEvent = iota
	// RoundEventSpinning Фаза ставок закончилась, ставки заморожены
	RoundEventSpinning
	// RoundEventClose Фаза вращения закончилась: нужно вычислить и опубликовать результат
	RoundEventClose
	// RoundEventNewRound Начался новый раунд
	RoundEventNewRound
)

// ClosingRound Замороженные данные закрывающегося раунда
type ClosingRound struct {
	RoundID  string
	Cycle    int
	Bets     []model.Bet
	Override *model.Side
}

type RoundStateRepository interface {
	// Tick уменьшает таймер фазы на секунду и двигает фазы по кругу.
	// Вызывается ровно одним планировщиком
	Tick() RoundEvent

	Snapshot(callerID int) model.RoundSnapshot
	AppendBet(bet model.Bet) error
	SetOverride(side model.Side) bool

	// ClosingRound возвращает данные раунда после RoundEventClose
	ClosingRound() ClosingRound
	// PublishResult публикует готовый результат и переводит фазу в RESULT
	PublishResult(res *model.Outcome)
	// Reset принудительно возвращает автомат в чистую фазу ставок
	Reset()
}
