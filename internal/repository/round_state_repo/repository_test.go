package round_state_repo

import (
	"testing"
	"time"

	"game_backend/internal/model"
	"game_backend/internal/repository"
)

// Тестовая конфигурация лобби с короткими фазами
type testConfig struct {
	betting  int
	spinning int
	result   int
	window   int
}

func (c testConfig) BettingDuration() int         { return c.betting }
func (c testConfig) SpinningDuration() int        { return c.spinning }
func (c testConfig) ResultDuration() int          { return c.result }
func (c testConfig) WinForceCount() int           { return 12 }
func (c testConfig) LossSymbolCap() int           { return 8 }
func (c testConfig) WinnersCap() int              { return 10 }
func (c testConfig) ActiveWindowTicks() int       { return c.window }
func (c testConfig) SettleTimeout() time.Duration { return time.Second }

func newTestRepo() *StateRepo {
	return NewRoundStateRepository(testConfig{betting: 3, spinning: 2, result: 1, window: 60})
}

// Прогоняет тики до события закрытия раунда и публикует результат
func closeRound(t *testing.T, r *StateRepo) {
	t.Helper()
	for i := 0; i < 20; i++ {
		if r.Tick() == repository.RoundEventClose {
			r.PublishResult(&model.Outcome{Decision: model.SideLoss})
			return
		}
	}
	t.Fatal("round never reached close event")
}

func TestPhaseOrder(t *testing.T) {
	r := newTestRepo()

	if got := r.Snapshot(0).Phase; got != model.PhaseBetting {
		t.Fatalf("initial phase = %s, want betting", got)
	}

	// betting: 3 тика до spinning
	for i := 0; i < 2; i++ {
		if ev := r.Tick(); ev != repository.RoundEventNone {
			t.Fatalf("tick %d event = %v, want none", i, ev)
		}
	}
	if ev := r.Tick(); ev != repository.RoundEventSpinning {
		t.Fatalf("event = %v, want spinning", ev)
	}
	if got := r.Snapshot(0).Phase; got != model.PhaseSpinning {
		t.Fatalf("phase = %s, want spinning", got)
	}

	// spinning: 2 тика до закрытия, фаза не меняется до публикации
	r.Tick()
	if ev := r.Tick(); ev != repository.RoundEventClose {
		t.Fatalf("event = %v, want close", ev)
	}
	if got := r.Snapshot(0).Phase; got != model.PhaseSpinning {
		t.Fatalf("phase before publish = %s, want spinning", got)
	}

	res := &model.Outcome{Decision: model.SideWin, WinAmount: 1}
	r.PublishResult(res)
	snap := r.Snapshot(0)
	if snap.Phase != model.PhaseResult {
		t.Fatalf("phase after publish = %s, want result", snap.Phase)
	}
	if snap.Result == nil || snap.Result.Decision != model.SideWin {
		t.Fatal("published result is not visible in snapshot")
	}

	// result: 1 тик до нового раунда
	if ev := r.Tick(); ev != repository.RoundEventNewRound {
		t.Fatalf("event = %v, want new round", ev)
	}
	snap = r.Snapshot(0)
	if snap.Phase != model.PhaseBetting {
		t.Fatalf("phase = %s, want betting", snap.Phase)
	}
	if snap.Result != nil {
		t.Fatal("result must be cleared on new round")
	}
	if snap.RoundCycle != 2 {
		t.Fatalf("round cycle = %d, want 2", snap.RoundCycle)
	}
}

func TestRoundCycleWraps(t *testing.T) {
	r := newTestRepo()

	seen := []int{r.Snapshot(0).RoundCycle}
	for i := 0; i < 9; i++ {
		closeRound(t, r)
		if ev := r.Tick(); ev != repository.RoundEventNewRound {
			t.Fatalf("round %d: expected new round event", i)
		}
		cycle := r.Snapshot(0).RoundCycle
		if cycle < 1 || cycle > model.RoundCycleLen {
			t.Fatalf("round cycle %d out of [1,5]", cycle)
		}
		seen = append(seen, cycle)
	}

	want := []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle sequence = %v, want %v", seen, want)
		}
	}
}

func TestRoundIDRegenerated(t *testing.T) {
	r := newTestRepo()

	first := r.Snapshot(0).RoundID
	closeRound(t, r)
	r.Tick()
	second := r.Snapshot(0).RoundID

	if first == "" || first == second {
		t.Fatalf("round id must be regenerated: %q -> %q", first, second)
	}
}

func TestAppendBetPhases(t *testing.T) {
	r := newTestRepo()

	bet := model.Bet{UserID: 1, Stake: 10, Side: model.SideWin}
	if err := r.AppendBet(bet); err != nil {
		t.Fatalf("bet in betting phase: %v", err)
	}

	snap := r.Snapshot(0)
	if snap.BetsCount != 1 || snap.BetsTotals.Win != 10 {
		t.Fatalf("bet not reflected in snapshot: %+v", snap)
	}

	// В spinning ставки закрыты
	r.Tick()
	r.Tick()
	r.Tick()
	if err := r.AppendBet(bet); err != model.ErrBettingClosed {
		t.Fatalf("bet in spinning: err = %v, want ErrBettingClosed", err)
	}
	if got := r.Snapshot(0).BetsCount; got != 1 {
		t.Fatalf("rejected bet changed state: count = %d", got)
	}

	// В result тоже
	r.Tick()
	r.Tick()
	r.PublishResult(&model.Outcome{Decision: model.SideLoss})
	if err := r.AppendBet(bet); err != model.ErrBettingClosed {
		t.Fatalf("bet in result: err = %v, want ErrBettingClosed", err)
	}

	// Новый раунд чистит ставки
	r.Tick()
	if got := r.Snapshot(0).BetsCount; got != 0 {
		t.Fatalf("new round bets count = %d, want 0", got)
	}
}

func TestSetOverrideOnlyInSpinning(t *testing.T) {
	r := newTestRepo()

	if r.SetOverride(model.SideWin) {
		t.Fatal("override accepted in betting phase")
	}
	if r.Snapshot(0).AdminDecision != nil {
		t.Fatal("ignored override leaked into state")
	}

	r.Tick()
	r.Tick()
	r.Tick()
	if !r.SetOverride(model.SideWin) {
		t.Fatal("override rejected in spinning phase")
	}

	closing := r.ClosingRound()
	if closing.Override == nil || *closing.Override != model.SideWin {
		t.Fatalf("closing round override = %v, want win", closing.Override)
	}

	// Переопределение не переживает раунд
	r.Tick()
	r.Tick()
	r.PublishResult(&model.Outcome{Decision: model.SideWin})
	r.Tick()
	if r.Snapshot(0).AdminDecision != nil {
		t.Fatal("override survived into the next round")
	}
}

func TestActivePlayersWindow(t *testing.T) {
	r := NewRoundStateRepository(testConfig{betting: 100, spinning: 2, result: 1, window: 5})

	r.Snapshot(1)
	r.Snapshot(2)
	r.Snapshot(0) // гость не учитывается

	snap := r.Snapshot(1)
	if snap.TotalPlayers != 2 {
		t.Fatalf("total players = %d, want 2", snap.TotalPlayers)
	}
	if snap.ViewersCount != 2 {
		t.Fatalf("viewers = %d, want 2", snap.ViewersCount)
	}

	// Ставка одного из активных уменьшает зрителей
	if err := r.AppendBet(model.Bet{UserID: 1, Stake: 5, Side: model.SideLoss}); err != nil {
		t.Fatal(err)
	}
	snap = r.Snapshot(2)
	if snap.ViewersCount != 1 {
		t.Fatalf("viewers after bet = %d, want 1", snap.ViewersCount)
	}

	// Окно чистится планировщиком
	for i := 0; i < 5; i++ {
		r.Tick()
	}
	snap = r.Snapshot(0)
	if snap.ViewersCount != 0 {
		t.Fatalf("viewers after window clear = %d, want 0", snap.ViewersCount)
	}
	// Ставок больше активных: totalPlayers берет большее
	if snap.TotalPlayers != 1 {
		t.Fatalf("total players after clear = %d, want 1 (bet count)", snap.TotalPlayers)
	}
}

func TestReset(t *testing.T) {
	r := newTestRepo()

	_ = r.AppendBet(model.Bet{UserID: 1, Stake: 10, Side: model.SideWin})
	r.Tick()
	r.Tick()
	r.Tick()
	r.SetOverride(model.SideLoss)

	r.Reset()

	snap := r.Snapshot(0)
	if snap.Phase != model.PhaseBetting {
		t.Fatalf("phase after reset = %s, want betting", snap.Phase)
	}
	if snap.TimeLeft != 3 {
		t.Fatalf("time left after reset = %d, want full betting duration", snap.TimeLeft)
	}
	if snap.BetsCount != 0 || snap.AdminDecision != nil || snap.Result != nil {
		t.Fatalf("reset left stale state: %+v", snap)
	}
}

func TestTimeLeftNonIncreasing(t *testing.T) {
	r := newTestRepo()

	prev := r.Snapshot(0).TimeLeft
	for i := 0; i < 2; i++ {
		r.Tick()
		cur := r.Snapshot(0).TimeLeft
		if cur > prev {
			t.Fatalf("time left increased within phase: %d -> %d", prev, cur)
		}
		if cur < 0 {
			t.Fatalf("snapshot time left negative: %d", cur)
		}
		prev = cur
	}
}
