package ledger_repo

import (
	"context"
	"time"

	"game_backend/internal/model"
	"game_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	txTable      = "transactions"
	historyTable = "balance_history"

	colID        = "id"
	colUserID    = "user_id"
	colType      = "type"
	colGameType  = "game_type"
	colAmount    = "amount"
	colBetAmount = "bet_amount"
	colRoundID   = "round_id"
	colCreatedAt = "created_at"

	colChange        = "change"
	colBalanceBefore = "balance_before"
	colBalanceAfter  = "balance_after"
	colReason        = "reason"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateTransaction - добавляет транзакцию. Записи только вставляются, обновлений нет
func (r *repo) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	// Формируем запрос
	query := sq.Insert(txTable).
		Columns(colID, colUserID, colType, colGameType, colAmount, colBetAmount, colRoundID, colCreatedAt).
		Values(tx.ID, tx.UserID, tx.Type, tx.GameType, tx.Amount, tx.BetAmount, tx.RoundID, tx.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// CreateBalanceHistory - добавляет запись истории баланса
func (r *repo) CreateBalanceHistory(ctx context.Context, h *model.BalanceHistory) error {
	// Формируем запрос
	query := sq.Insert(historyTable).
		Columns(colID, colUserID, colChange, colBalanceBefore, colBalanceAfter, colReason, colGameType, colRoundID, colCreatedAt).
		Values(h.ID, h.UserID, h.Change, h.BalanceBefore, h.BalanceAfter, h.Reason, h.GameType, h.RoundID, h.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ListGameHistory - постраничное чтение истории игр пользователя по типу игры
func (r *repo) ListGameHistory(ctx context.Context, userID int, gameType string, limit, offset int) ([]model.GameRecord, error) {
	// Формируем запрос
	query := sq.Select(colID, colType, colGameType, colAmount, colRoundID, colCreatedAt).
		From(txTable).
		Where(sq.Eq{colUserID: userID, colGameType: gameType}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		var createdAt time.Time
		if err := rows.Scan(&rec.ID, &rec.Type, &rec.GameType, &rec.Amount, &rec.RoundID, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountGameHistory - количество записей истории игр пользователя по типу игры
func (r *repo) CountGameHistory(ctx context.Context, userID int, gameType string) (int, error) {
	// Формируем запрос
	query := sq.Select("COUNT(*)").
		From(txTable).
		Where(sq.Eq{colUserID: userID, colGameType: gameType}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// GetGameStats - агрегированная статистика игр пользователя по типу игры
func (r *repo) GetGameStats(ctx context.Context, userID int, gameType string) (*model.GameStats, error) {
	// Формируем запрос
	query := sq.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE type = 'game_win')",
		"COUNT(*) FILTER (WHERE type = 'game_loss')",
		"COALESCE(SUM(bet_amount), 0)",
		"COALESCE(SUM(amount) FILTER (WHERE type = 'game_win'), 0)",
		"COALESCE(SUM(CASE WHEN type = 'game_win' THEN amount ELSE -amount END), 0)",
	).
		From(txTable).
		Where(sq.Eq{colUserID: userID, colGameType: gameType}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stats model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&stats.TotalGames, &stats.Wins, &stats.Losses, &stats.TotalStaked, &stats.TotalWon, &stats.NetProfit)
	if err != nil {
		return nil, err
	}

	if stats.TotalGames > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.TotalGames) * 100
	}

	return &stats, nil
}
