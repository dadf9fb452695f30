package lobby

import (
	"context"
	"log"
	"time"

	"game_backend/internal/repository"
)

// StartLoop запускает таймерный цикл раунда.
// Цикл тикает раз в секунду и не завершается после запуска,
// повторный вызов игнорируется
func (s *serv) StartLoop() {
	if s.started() {
		log.Println("lobby loop already started, ignoring")
		return
	}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			s.safeTick()
		}
	}()
}

// safeTick Один тик с восстановлением: любая паника внутри тика
// возвращает автомат в чистую фазу ставок, цикл продолжает тикать
func (s *serv) safeTick() {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("lobby tick failed: %v, resetting to betting", rec)
			s.roundRepo.Reset()
		}
	}()
	s.tick()
}

// tick Обработка одного тика состояния раунда
func (s *serv) tick() {
	switch s.roundRepo.Tick() {
	case repository.RoundEventClose:
		// КЛЮЧЕВОЙ ПЕРЕХОД: результат считается и расчёт выполняется
		// до того, как фаза result станет видна клиентам
		s.closeRound()
	default:
	}
}

// closeRound Закрытие раунда: решение -> поле -> победители -> расчёт -> публикация
func (s *serv) closeRound() {
	closing := s.roundRepo.ClosingRound()

	decision := decideRound(closing.Bets, closing.Cycle, closing.Override)

	outcome := s.buildOutcome(decision)
	outcome.TopWinners = composeWinners(closing.Bets, decision, s.cfg.WinnersCap())

	// Расчёт ограничен по времени, чтобы медленный леджер
	// не останавливал таймерный цикл
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SettleTimeout())
	s.settleRound(ctx, closing, decision)
	cancel()

	s.roundRepo.PublishResult(outcome)
}
