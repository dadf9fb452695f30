package round_state_repo

import (
	"sync"

	"game_backend/internal/config"
	"game_backend/internal/model"
	"game_backend/internal/repository"
	repoModel "game_backend/internal/repository/round_state_repo/model"

	"github.com/google/uuid"
)

// Реализация репозитория для хранения состояния раунда лобби.
// Все методы сериализованы одним мьютексом: добавление ставки,
// смена фазы и чтение снимка никогда не пересекаются
type StateRepo struct {
	mtx   sync.RWMutex
	cfg   config.LobbyConfig
	state repoModel.RoundState
}

// NewRoundStateRepository Конструктор репозитория с первым раундом в фазе ставок
func NewRoundStateRepository(cfg config.LobbyConfig) *StateRepo {
	initialState := repoModel.RoundState{
		RoundID:       uuid.NewString(),
		Phase:         model.PhaseBetting,
		TimeLeft:      cfg.BettingDuration(),
		RoundCount:    1,
		RoundCycle:    1,
		Bets:          make([]model.Bet, 0),
		ActivePlayers: make(map[int]struct{}),
	}
	return &StateRepo{
		cfg:   cfg,
		state: initialState,
	}
}

// Tick Один тик планировщика: декремент таймера и смена фазы при нуле.
// Переход spinning->result не завершается здесь: репозиторий остается
// в spinning и возвращает RoundEventClose, фаза переключится только
// в PublishResult — клиент никогда не видит result без готового результата
func (r *StateRepo) Tick() repository.RoundEvent {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	// Окно активных игроков чистится тем же планировщиком
	r.state.WindowTicks++
	if r.state.WindowTicks >= r.cfg.ActiveWindowTicks() {
		r.state.ActivePlayers = make(map[int]struct{})
		r.state.WindowTicks = 0
	}

	if r.state.TimeLeft > 0 {
		r.state.TimeLeft--
	}
	if r.state.TimeLeft > 0 {
		return repository.RoundEventNone
	}

	switch r.state.Phase {
	case model.PhaseBetting:
		// Ставки заморожены, другие действия не выполняются
		r.state.Phase = model.PhaseSpinning
		r.state.TimeLeft = r.cfg.SpinningDuration()
		return repository.RoundEventSpinning
	case model.PhaseSpinning:
		// Ждем готовый результат (PublishResult)
		return repository.RoundEventClose
	case model.PhaseResult:
		r.startNewRound()
		return repository.RoundEventNewRound
	}

	return repository.RoundEventNone
}

// startNewRound Начало нового раунда. Вызывается под мьютексом
func (r *StateRepo) startNewRound() {
	r.state.RoundCount++
	r.state.RoundCycle = (r.state.RoundCount-1)%model.RoundCycleLen + 1
	r.state.RoundID = uuid.NewString()
	r.state.Phase = model.PhaseBetting
	r.state.TimeLeft = r.cfg.BettingDuration()
	r.state.Bets = make([]model.Bet, 0)
	r.state.AdminDecision = nil
	r.state.Result = nil
}

// AppendBet Принимает ставку только в фазе ставок и при остатке таймера >= 1
func (r *StateRepo) AppendBet(bet model.Bet) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state.Phase != model.PhaseBetting || r.state.TimeLeft < 1 {
		return model.ErrBettingClosed
	}

	r.state.Bets = append(r.state.Bets, bet)
	return nil
}

// SetOverride Ручное решение. Действует только в фазе вращения,
// иначе возвращает false (вызывающий логирует)
func (r *StateRepo) SetOverride(side model.Side) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state.Phase != model.PhaseSpinning {
		return false
	}

	r.state.AdminDecision = &side
	return true
}

// ClosingRound Копия замороженных данных закрывающегося раунда
func (r *StateRepo) ClosingRound() repository.ClosingRound {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	bets := make([]model.Bet, len(r.state.Bets))
	copy(bets, r.state.Bets)

	var override *model.Side
	if r.state.AdminDecision != nil {
		side := *r.state.AdminDecision
		override = &side
	}

	return repository.ClosingRound{
		RoundID:  r.state.RoundID,
		Cycle:    r.state.RoundCycle,
		Bets:     bets,
		Override: override,
	}
}

// PublishResult Публикация готового результата и переход в фазу result
func (r *StateRepo) PublishResult(res *model.Outcome) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.Result = res
	r.state.Phase = model.PhaseResult
	r.state.TimeLeft = r.cfg.ResultDuration()
}

// Reset Принудительный возврат в чистую фазу ставок.
// Используется восстановлением цикла после сбоя тика
func (r *StateRepo) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.RoundID = uuid.NewString()
	r.state.Phase = model.PhaseBetting
	r.state.TimeLeft = r.cfg.BettingDuration()
	r.state.Bets = make([]model.Bet, 0)
	r.state.AdminDecision = nil
	r.state.Result = nil
}

// Snapshot Снимок раунда для клиента.
// Побочный эффект: не-гостевой callerID попадает в окно активных игроков
func (r *StateRepo) Snapshot(callerID int) model.RoundSnapshot {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if callerID > 0 {
		r.state.ActivePlayers[callerID] = struct{}{}
	}

	var totals model.BetTotals
	betters := make(map[int]struct{})
	for _, b := range r.state.Bets {
		if b.Side == model.SideWin {
			totals.Win += b.Stake
		} else {
			totals.Loss += b.Stake
		}
		if b.UserID > 0 {
			betters[b.UserID] = struct{}{}
		}
	}

	// Зрители = активные игроки минус те, кто уже поставил
	active := len(r.state.ActivePlayers)
	viewers := active - len(betters)
	if viewers < 0 {
		viewers = 0
	}
	totalPlayers := active
	if len(r.state.Bets) > totalPlayers {
		totalPlayers = len(r.state.Bets)
	}

	timeLeft := r.state.TimeLeft
	if timeLeft < 0 {
		timeLeft = 0
	}

	var override *model.Side
	if r.state.AdminDecision != nil {
		side := *r.state.AdminDecision
		override = &side
	}

	return model.RoundSnapshot{
		Phase:         r.state.Phase,
		TimeLeft:      timeLeft,
		RoundID:       r.state.RoundID,
		RoundCycle:    r.state.RoundCycle,
		AdminDecision: override,
		Result:        r.state.Result,
		BetsCount:     len(r.state.Bets),
		BetsTotals:    totals,
		ViewersCount:  viewers,
		TotalPlayers:  totalPlayers,
	}
}
