package solo

import (
	"context"
	"errors"
	"math"
	"time"

	"game_backend/internal/middleware"
	"game_backend/internal/model"

	"github.com/google/uuid"
)

// Play Одиночная игра: ставка против взвешенного поля.
// Весь расчёт (чтение баланса под блокировкой строки, изменение баланса,
// транзакция и запись истории) выполняется как единое целое: при любом
// сбое не остается ни частичного изменения баланса, ни осиротевших записей
func (s *serv) Play(ctx context.Context, req model.SoloPlay) (*model.SoloPlayResult, error) {
	// Валидация ставки
	if req.Bet <= 0 || math.IsNaN(req.Bet) || math.IsInf(req.Bet, 0) {
		return nil, model.ErrInvalidStake
	}
	if req.Bet < s.cfg.MinBet() {
		return nil, model.ErrStakeTooSmall
	}
	if req.Bet > s.cfg.MaxBet() {
		return nil, model.ErrStakeTooLarge
	}

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Инициализируем структуру для хранения результата
	var res *model.SoloPlayResult

	// Начало транзакции, где выполняется процесс игры
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Баланс читается под блокировкой строки: одновременные игры
		// одного пользователя сериализуются на уровне аккаунта
		user, err := s.userRepo.GetUserForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.Status != model.UserStatusActive {
			return model.ErrAccountNotPlayable
		}
		if user.Balance < req.Bet {
			return model.ErrInsufficientFunds
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Генерация поля и подсчет выигрыша
		board := generateBoard(s.cfg.SymbolWeights())
		winAmount, positions := evaluateBoard(board, req.Bet, s.cfg)

		roundID := uuid.NewString()
		now := time.Now()

		var (
			txType   string
			amount   float64
			change   float64
			lossMult float64
		)
		if winAmount > 0 {
			// Выигрыш: начисляем посчитанную сумму
			txType = model.TxTypeGameWin
			amount = winAmount
			change = winAmount
		} else {
			// Проигрыш: списываем ставку с перекосом [1.0, 1.8),
			// но не больше текущего баланса
			txType = model.TxTypeGameLoss
			lossMult = drawLossMultiplier(s.cfg.LossBands())
			amount = req.Bet * lossMult
			if amount > user.Balance {
				amount = user.Balance
			}
			change = -amount
		}

		newBalance := user.Balance + change
		if err := s.userRepo.UpdateBalance(txCtx, userID, newBalance); err != nil {
			return err
		}

		// Пара записей леджера в той же транзакции
		err = s.ledgerRepo.CreateTransaction(txCtx, &model.Transaction{
			ID:        uuid.NewString(),
			UserID:    userID,
			Type:      txType,
			GameType:  model.GameTypeSolo,
			Amount:    amount,
			BetAmount: req.Bet,
			RoundID:   roundID,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		err = s.ledgerRepo.CreateBalanceHistory(txCtx, &model.BalanceHistory{
			ID:            uuid.NewString(),
			UserID:        userID,
			Change:        change,
			BalanceBefore: user.Balance,
			BalanceAfter:  newBalance,
			Reason:        txType,
			GameType:      model.GameTypeSolo,
			RoundID:       roundID,
			CreatedAt:     now,
		})
		if err != nil {
			return err
		}

		percentage := 0.0
		if user.Balance > 0 {
			percentage = change / user.Balance * 100
		}

		actualLoss := 0.0
		if change < 0 {
			actualLoss = -change
		}

		res = &model.SoloPlayResult{
			Board:            board,
			BetAmount:        req.Bet,
			WinAmount:        winAmount,
			ActualLoss:       actualLoss,
			NetChange:        change,
			NewBalance:       newBalance,
			UserBalance:      newBalance,
			InitialBalance:   user.Balance,
			PercentageChange: percentage,
			LossMultiplier:   lossMult,
			WinningPositions: positions,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
