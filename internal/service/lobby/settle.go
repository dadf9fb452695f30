package lobby

import (
	"context"
	"log"
	"time"

	"game_backend/internal/model"
	"game_backend/internal/repository"

	"github.com/google/uuid"
)

// settleRound Расчёт всех ставок закрывающегося раунда.
// Каждая ставка рассчитывается в собственной транзакции: сбой одной
// ставки логируется и не останавливает остальные. Гостевые ставки
// пропускаются — их некому зачислять
func (s *serv) settleRound(ctx context.Context, closing repository.ClosingRound, decision model.Side) {
	for i, bet := range closing.Bets {
		if bet.UserID <= 0 {
			continue
		}
		if ctx.Err() != nil {
			log.Printf("round %s settlement timed out, %d bets left unsettled", closing.RoundID, len(closing.Bets)-i)
			return
		}
		if err := s.settleBet(ctx, closing.RoundID, bet, decision); err != nil {
			log.Printf("failed to settle bet user=%d round=%s: %v", bet.UserID, closing.RoundID, err)
		}
	}
}

// settleBet Расчёт одной ставки: изменение баланса и парные записи
// леджера атомарны как единое целое.
// Ставка в лобби не резервируется при приеме — списание проигрыша
// клампится нулем, "мягкий" учет оставлен намеренно
func (s *serv) settleBet(ctx context.Context, roundID string, bet model.Bet, decision model.Side) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUserForUpdate(txCtx, bet.UserID)
		if err != nil {
			return err
		}

		var (
			txType string
			amount float64 // выплата или списание
			change float64 // знаковое изменение баланса
		)
		if bet.Side == decision {
			// Выигрыш: ставка х2
			txType = model.TxTypeGameWin
			amount = bet.Stake * 2
			change = amount
		} else {
			// Проигрыш: списываем ставку, баланс не уходит в минус
			txType = model.TxTypeGameLoss
			amount = bet.Stake
			if amount > user.Balance {
				amount = user.Balance
			}
			change = -amount
		}

		newBalance := user.Balance + change
		if err := s.userRepo.UpdateBalance(txCtx, bet.UserID, newBalance); err != nil {
			return err
		}

		now := time.Now()
		err = s.ledgerRepo.CreateTransaction(txCtx, &model.Transaction{
			ID:        uuid.NewString(),
			UserID:    bet.UserID,
			Type:      txType,
			GameType:  model.GameTypeLobby,
			Amount:    amount,
			BetAmount: bet.Stake,
			RoundID:   roundID,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		return s.ledgerRepo.CreateBalanceHistory(txCtx, &model.BalanceHistory{
			ID:            uuid.NewString(),
			UserID:        bet.UserID,
			Change:        change,
			BalanceBefore: user.Balance,
			BalanceAfter:  newBalance,
			Reason:        txType,
			GameType:      model.GameTypeLobby,
			RoundID:       roundID,
			CreatedAt:     now,
		})
	})
}
