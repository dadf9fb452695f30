package model

import "game_backend/internal/model"

// Состояние раунда лобби (один на процесс)
type RoundState struct {
	RoundID    string      // Непрозрачный токен раунда, новый на каждый раунд
	Phase      model.Phase // betting / spinning / result
	TimeLeft   int         // Секунды до конца фазы
	RoundCount int         // Монотонный счетчик раундов
	RoundCycle int         // Позиция в цикле решения: ((RoundCount-1) mod 5) + 1

	Bets          []model.Bet    // Ставки текущего раунда, только добавление
	AdminDecision *model.Side    // Ручное переопределение решения (только в spinning)
	Result        *model.Outcome // Последний опубликованный результат

	ActivePlayers map[int]struct{} // Игроки, замеченные в текущем окне
	WindowTicks   int              // Тики с последней очистки окна
}
