package lobby

import (
	"fmt"
	"math/rand"
	"sort"

	"game_backend/internal/model"
)

const (
	// Минимум синтетических кандидатов сверх реальных
	fakePadding = 3
	// Диапазон сумм синтетических записей: [fakeAmountMin, fakeAmountMax)
	fakeAmountMin = 100
	fakeAmountMax = 5000
)

// composeWinners Публичная таблица победителей: реальные победители раунда
// плюс синтетическое заполнение. Синтетические записи не касаются
// балансов и леджера — только отображение
func composeWinners(bets []model.Bet, decision model.Side, cap int) []model.TopWinner {
	var winners []model.TopWinner
	for _, b := range bets {
		if b.Side != decision || b.UserID <= 0 {
			continue
		}
		winners = append(winners, model.TopWinner{
			MaskedID: maskUserID(b.UserID),
			Amount:   b.Stake * 2,
			IsReal:   true,
		})
	}

	target := cap
	if len(winners)+fakePadding > target {
		target = len(winners) + fakePadding
	}
	for len(winners) < target {
		winners = append(winners, model.TopWinner{
			MaskedID: fmt.Sprintf("***%04d", rand.Intn(10000)),
			Amount:   fakeAmountMin + rand.Float64()*(fakeAmountMax-fakeAmountMin),
			IsReal:   false,
		})
	}

	// Реальные впереди, внутри групп по убыванию суммы
	sort.SliceStable(winners, func(i, j int) bool {
		if winners[i].IsReal != winners[j].IsReal {
			return winners[i].IsReal
		}
		return winners[i].Amount > winners[j].Amount
	})

	if len(winners) > cap {
		winners = winners[:cap]
	}
	return winners
}

// maskUserID Маскированный идентификатор из ID аккаунта
func maskUserID(id int) string {
	return fmt.Sprintf("***%04d", id%10000)
}
