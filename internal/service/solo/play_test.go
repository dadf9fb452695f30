package solo

import (
	"context"
	"errors"
	"testing"

	"game_backend/internal/middleware"
	"game_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type fakeUserRepo struct {
	balances map[int]float64
	statuses map[int]string
}

func newFakeUserRepo(balances map[int]float64) *fakeUserRepo {
	return &fakeUserRepo{balances: balances, statuses: map[int]string{}}
}

func (f *fakeUserRepo) user(id int) (*model.User, error) {
	balance, ok := f.balances[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	status, ok := f.statuses[id]
	if !ok {
		status = model.UserStatusActive
	}
	return &model.User{ID: id, Status: status, Balance: balance}, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id int) (*model.User, error) {
	return f.user(id)
}

func (f *fakeUserRepo) GetUserForUpdate(_ context.Context, id int) (*model.User, error) {
	return f.user(id)
}

func (f *fakeUserRepo) GetBalance(_ context.Context, id int) (float64, error) {
	u, err := f.user(id)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

func (f *fakeUserRepo) UpdateBalance(_ context.Context, id int, amount float64) error {
	f.balances[id] = amount
	return nil
}

type fakeLedgerRepo struct {
	transactions []model.Transaction
	history      []model.BalanceHistory
}

func (f *fakeLedgerRepo) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeLedgerRepo) CreateBalanceHistory(_ context.Context, h *model.BalanceHistory) error {
	f.history = append(f.history, *h)
	return nil
}

func (f *fakeLedgerRepo) ListGameHistory(_ context.Context, _ int, _ string, _, _ int) ([]model.GameRecord, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) CountGameHistory(_ context.Context, _ int, _ string) (int, error) {
	return 0, nil
}

func (f *fakeLedgerRepo) GetGameStats(_ context.Context, _ int, _ string) (*model.GameStats, error) {
	return &model.GameStats{}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestServ(users *fakeUserRepo, ledger *fakeLedgerRepo) *serv {
	return &serv{
		cfg:        testConfig{},
		userRepo:   users,
		ledgerRepo: ledger,
		txManager:  fakeTxManager{},
	}
}

func playerCtx(id int) context.Context {
	return middleware.ContextWithUserID(context.Background(), id)
}

func TestPlayStakeValidation(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	s := newTestServ(newFakeUserRepo(map[int]float64{1: 100}), ledger)

	cases := []struct {
		bet  float64
		want error
	}{
		{0, model.ErrInvalidStake},
		{-10, model.ErrInvalidStake},
		{0.5, model.ErrStakeTooSmall},
		{20000, model.ErrStakeTooLarge},
	}
	for _, c := range cases {
		if _, err := s.Play(playerCtx(1), model.SoloPlay{Bet: c.bet}); !errors.Is(err, c.want) {
			t.Fatalf("bet %f: err = %v, want %v", c.bet, err, c.want)
		}
	}

	// Отклоненная ставка ничего не пишет
	if len(ledger.transactions) != 0 || len(ledger.history) != 0 {
		t.Fatal("rejected play must not touch the ledger")
	}
}

func TestPlayRequiresAuthenticatedUser(t *testing.T) {
	s := newTestServ(newFakeUserRepo(map[int]float64{1: 100}), &fakeLedgerRepo{})

	if _, err := s.Play(context.Background(), model.SoloPlay{Bet: 10}); err == nil {
		t.Fatal("play without user in context must fail")
	}
}

func TestPlayInsufficientFunds(t *testing.T) {
	users := newFakeUserRepo(map[int]float64{1: 5})
	ledger := &fakeLedgerRepo{}
	s := newTestServ(users, ledger)

	if _, err := s.Play(playerCtx(1), model.SoloPlay{Bet: 10}); !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if users.balances[1] != 5 || len(ledger.transactions) != 0 {
		t.Fatal("failed play must not change balance or ledger")
	}
}

func TestPlayBlockedAccount(t *testing.T) {
	users := newFakeUserRepo(map[int]float64{1: 100})
	users.statuses[1] = model.UserStatusBlocked
	s := newTestServ(users, &fakeLedgerRepo{})

	if _, err := s.Play(playerCtx(1), model.SoloPlay{Bet: 10}); !errors.Is(err, model.ErrAccountNotPlayable) {
		t.Fatalf("err = %v, want ErrAccountNotPlayable", err)
	}
}

func TestPlayAccounting(t *testing.T) {
	users := newFakeUserRepo(map[int]float64{1: 100})
	ledger := &fakeLedgerRepo{}
	s := newTestServ(users, ledger)

	sawWin, sawLoss := false, false
	for i := 0; i < 500 && !(sawWin && sawLoss); i++ {
		users.balances[1] = 100

		res, err := s.Play(playerCtx(1), model.SoloPlay{Bet: 10})
		if err != nil {
			t.Fatal(err)
		}

		if res.WinAmount > 0 {
			sawWin = true
			if res.ActualLoss != 0 || res.NetChange != res.WinAmount {
				t.Fatalf("winning play has loss fields set: %+v", res)
			}
			if res.NewBalance != 100+res.WinAmount {
				t.Fatalf("new balance = %f, want %f", res.NewBalance, 100+res.WinAmount)
			}
		} else {
			sawLoss = true
			// Списание проигрыша — ставка с перекосом [1.0, 1.8)
			if res.ActualLoss < 10 || res.ActualLoss >= 18 {
				t.Fatalf("actual loss = %f, want within [10, 18)", res.ActualLoss)
			}
			if res.LossMultiplier < 1.0 || res.LossMultiplier >= 1.8 {
				t.Fatalf("loss multiplier = %f outside [1.0, 1.8)", res.LossMultiplier)
			}
			if res.NewBalance != 100-res.ActualLoss {
				t.Fatalf("new balance = %f, want %f", res.NewBalance, 100-res.ActualLoss)
			}
		}

		if users.balances[1] != res.NewBalance {
			t.Fatalf("stored balance %f diverged from result %f", users.balances[1], res.NewBalance)
		}
		if res.InitialBalance != 100 || res.BetAmount != 10 {
			t.Fatalf("result metadata broken: %+v", res)
		}
	}

	if !sawWin || !sawLoss {
		t.Fatal("500 plays produced only one outcome kind")
	}

	// Ровно по паре записей на каждую игру
	if len(ledger.transactions) != len(ledger.history) {
		t.Fatalf("ledger records unpaired: %d tx, %d history", len(ledger.transactions), len(ledger.history))
	}
	for _, tx := range ledger.transactions {
		if tx.GameType != model.GameTypeSolo || tx.BetAmount != 10 || tx.RoundID == "" {
			t.Fatalf("bad transaction metadata: %+v", tx)
		}
	}
}

func TestPlayLossClampedAtBalance(t *testing.T) {
	users := newFakeUserRepo(map[int]float64{1: 10})
	s := newTestServ(users, &fakeLedgerRepo{})

	// Ставка на весь баланс: списание проигрыша не уводит баланс в минус
	for i := 0; i < 200; i++ {
		users.balances[1] = 10

		res, err := s.Play(playerCtx(1), model.SoloPlay{Bet: 10})
		if err != nil {
			t.Fatal(err)
		}
		if res.WinAmount > 0 {
			continue
		}

		if res.ActualLoss != 10 || res.NewBalance != 0 {
			t.Fatalf("loss must clamp at balance: %+v", res)
		}
		return
	}
	t.Fatal("200 plays never produced a loss")
}
