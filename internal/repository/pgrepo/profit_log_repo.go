package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const profitLogColumns = `id, created_at, user_id, amount, deposit_amount, rate, accrued_on`

type ProfitLogRepository struct {
	conn uow.DBTX
}

func NewProfitLogRepository(conn uow.DBTX) *ProfitLogRepository {
	return &ProfitLogRepository{conn: conn}
}

// CreateProfitLog создает запись о начислении. Уникальный индекс (user_id, accrued_on)
// превращает повторное начисление за тот же день в domain.ErrDuplicateKey.
func (r *ProfitLogRepository) CreateProfitLog(
	ctx context.Context,
	args repoargs.CreateProfitLog,
) (*domain.ProfitLog, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO profit_logs (user_id, amount, deposit_amount, rate, accrued_on)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+profitLogColumns,
		args.UserID, args.Amount, args.DepositAmount, args.Rate, args.AccruedOn)

	log, err := scanProfitLog(row)
	if err != nil {
		return nil, convertErr(err, "creating profit log for user %d", args.UserID)
	}
	return log, nil
}

func (r *ProfitLogRepository) GetProfitLogsByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.ProfitLog, int64, error) {
	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM profit_logs WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting profit logs of user %d", userID)
	}

	limit, offset := page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+profitLogColumns+` FROM profit_logs
		WHERE user_id = $1
		ORDER BY accrued_on DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting profit logs of user %d", userID)
	}
	defer rows.Close()

	logs, scanErr := scanProfitLogs(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting profit logs of user %d", userID)
	}
	return logs, total, nil
}

func (r *ProfitLogRepository) GetAllProfitLogsByUserID(
	ctx context.Context,
	userID int64,
) ([]domain.ProfitLog, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+profitLogColumns+` FROM profit_logs
		WHERE user_id = $1
		ORDER BY accrued_on DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting all profit logs of user %d", userID)
	}
	defer rows.Close()

	logs, scanErr := scanProfitLogs(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting all profit logs of user %d", userID)
	}
	return logs, nil
}

func (r *ProfitLogRepository) ProfitLogExists(
	ctx context.Context,
	userID int64,
	accruedOn time.Time,
) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM profit_logs WHERE user_id = $1 AND accrued_on = $2)`,
		userID, accruedOn).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking profit log existence for user %d", userID)
	}
	return exists, nil
}

func scanProfitLog(row pgx.Row) (*domain.ProfitLog, error) {
	var p domain.ProfitLog
	err := row.Scan(&p.ID, &p.CreatedAt, &p.UserID, &p.Amount, &p.DepositAmount, &p.Rate, &p.AccruedOn)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProfitLogs(rows pgx.Rows) ([]domain.ProfitLog, error) {
	var logs []domain.ProfitLog
	for rows.Next() {
		log, err := scanProfitLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, rows.Err()
}
