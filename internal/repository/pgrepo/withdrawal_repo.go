package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, created_at, updated_at, user_id, amount, platform, wallet_address, status, admin_notes`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

func (r *WithdrawalRepository) CreateWithdrawal(
	ctx context.Context,
	args repoargs.CreateWithdrawal,
) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO withdrawals (user_id, amount, platform, wallet_address)
		VALUES ($1, $2, $3, $4)
		RETURNING `+withdrawalColumns,
		args.UserID, args.Amount, string(args.Platform), args.WalletAddress)

	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal")
	}
	return withdrawal, nil
}

func (r *WithdrawalRepository) FindWithdrawalByID(ctx context.Context, id int64) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal %d", id)
	}
	return withdrawal, nil
}

func (r *WithdrawalRepository) FindWithdrawalByIDForUser(
	ctx context.Context,
	id, userID int64,
) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 AND user_id = $2`, id, userID)
	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal %d of user %d", id, userID)
	}
	return withdrawal, nil
}

func (r *WithdrawalRepository) GetWithdrawalsByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Withdrawal, int64, error) {
	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM withdrawals WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting withdrawals of user %d", userID)
	}

	limit, offset := page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting withdrawals of user %d", userID)
	}
	defer rows.Close()

	withdrawals, scanErr := scanWithdrawals(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting withdrawals of user %d", userID)
	}
	return withdrawals, total, nil
}

func (r *WithdrawalRepository) GetAllWithdrawalsByUserID(
	ctx context.Context,
	userID int64,
) ([]domain.Withdrawal, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting all withdrawals of user %d", userID)
	}
	defer rows.Close()

	withdrawals, scanErr := scanWithdrawals(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting all withdrawals of user %d", userID)
	}
	return withdrawals, nil
}

func (r *WithdrawalRepository) GetWithdrawals(
	ctx context.Context,
	filter repoargs.LedgerFilter,
) ([]domain.Withdrawal, int64, error) {
	where := ` WHERE ($1::text IS NULL OR status = $1)`
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM withdrawals`+where, status).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting withdrawals")
	}

	limit, offset := filter.Page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals`+where+`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting withdrawals")
	}
	defer rows.Close()

	withdrawals, scanErr := scanWithdrawals(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting withdrawals")
	}
	return withdrawals, total, nil
}

// SettleWithdrawal переводит заявку из pending в терминальный статус. Если заявка
// существует, но уже не pending, возвращает *domain.SettlementConflictError.
func (r *WithdrawalRepository) SettleWithdrawal(
	ctx context.Context,
	args repoargs.SettleEntry,
) (*domain.Withdrawal, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE withdrawals
		SET status = $2, admin_notes = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+withdrawalColumns,
		args.ID, string(args.Status), args.AdminNotes)

	withdrawal, err := scanWithdrawal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if existing, findErr := r.FindWithdrawalByID(ctx, args.ID); findErr == nil {
				return nil, &domain.SettlementConflictError{ID: existing.ID, Status: existing.Status}
			}
		}
		return nil, convertErr(err, "settling withdrawal %d", args.ID)
	}
	return withdrawal, nil
}

func (r *WithdrawalRepository) CountWithdrawalsByStatus(
	ctx context.Context,
	status domain.SettlementStatusType,
) (int64, error) {
	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM withdrawals WHERE status = $1`, string(status)).Scan(&total); err != nil {
		return 0, convertErr(err, "counting withdrawals by status %s", status)
	}
	return total, nil
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	var platform, status string
	err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.UserID, &w.Amount,
		&platform, &w.WalletAddress, &status, &w.AdminNotes)
	if err != nil {
		return nil, err
	}
	w.Platform = domain.PlatformType(platform)
	w.Status = domain.SettlementStatusType(status)
	return &w, nil
}

func scanWithdrawals(rows pgx.Rows) ([]domain.Withdrawal, error) {
	var withdrawals []domain.Withdrawal
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, rows.Err()
}
