package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const depositColumns = `id, created_at, updated_at, user_id, amount, screenshot_url, status, admin_notes`

type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

func (r *DepositRepository) CreateDeposit(
	ctx context.Context,
	args repoargs.CreateDeposit,
) (*domain.Deposit, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO deposits (user_id, amount, screenshot_url)
		VALUES ($1, $2, $3)
		RETURNING `+depositColumns,
		args.UserID, args.Amount, args.ScreenshotURL)

	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "creating deposit")
	}
	return deposit, nil
}

func (r *DepositRepository) FindDepositByID(ctx context.Context, id int64) (*domain.Deposit, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+depositColumns+` FROM deposits WHERE id = $1`, id)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "finding deposit %d", id)
	}
	return deposit, nil
}

func (r *DepositRepository) FindDepositByIDForUser(
	ctx context.Context,
	id, userID int64,
) (*domain.Deposit, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+depositColumns+` FROM deposits WHERE id = $1 AND user_id = $2`, id, userID)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "finding deposit %d of user %d", id, userID)
	}
	return deposit, nil
}

func (r *DepositRepository) GetDepositsByUserID(
	ctx context.Context,
	userID int64,
	page repoargs.Page,
) ([]domain.Deposit, int64, error) {
	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM deposits WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting deposits of user %d", userID)
	}

	limit, offset := page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+depositColumns+` FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting deposits of user %d", userID)
	}
	defer rows.Close()

	deposits, scanErr := scanDeposits(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting deposits of user %d", userID)
	}
	return deposits, total, nil
}

func (r *DepositRepository) GetAllDepositsByUserID(
	ctx context.Context,
	userID int64,
) ([]domain.Deposit, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+depositColumns+` FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, convertErr(err, "getting all deposits of user %d", userID)
	}
	defer rows.Close()

	deposits, scanErr := scanDeposits(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting all deposits of user %d", userID)
	}
	return deposits, nil
}

func (r *DepositRepository) GetDeposits(
	ctx context.Context,
	filter repoargs.LedgerFilter,
) ([]domain.Deposit, int64, error) {
	where := ` WHERE ($1::text IS NULL OR status = $1)`
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM deposits`+where, status).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting deposits")
	}

	limit, offset := filter.Page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+depositColumns+` FROM deposits`+where+`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting deposits")
	}
	defer rows.Close()

	deposits, scanErr := scanDeposits(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting deposits")
	}
	return deposits, total, nil
}

// SettleDeposit переводит заявку из pending в терминальный статус. Если заявка
// существует, но уже не pending, возвращает *domain.SettlementConflictError.
func (r *DepositRepository) SettleDeposit(
	ctx context.Context,
	args repoargs.SettleEntry,
) (*domain.Deposit, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE deposits
		SET status = $2, admin_notes = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+depositColumns,
		args.ID, string(args.Status), args.AdminNotes)

	deposit, err := scanDeposit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if existing, findErr := r.FindDepositByID(ctx, args.ID); findErr == nil {
				return nil, &domain.SettlementConflictError{ID: existing.ID, Status: existing.Status}
			}
		}
		return nil, convertErr(err, "settling deposit %d", args.ID)
	}
	return deposit, nil
}

func (r *DepositRepository) CountDepositsByStatus(
	ctx context.Context,
	status domain.SettlementStatusType,
) (int64, error) {
	var total int64
	if err := r.conn.QueryRow(ctx,
		`SELECT count(*) FROM deposits WHERE status = $1`, string(status)).Scan(&total); err != nil {
		return 0, convertErr(err, "counting deposits by status %s", status)
	}
	return total, nil
}

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	var status string
	err := row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt, &d.UserID, &d.Amount,
		&d.ScreenshotURL, &status, &d.AdminNotes)
	if err != nil {
		return nil, err
	}
	d.Status = domain.SettlementStatusType(status)
	return &d, nil
}

func scanDeposits(rows pgx.Rows) ([]domain.Deposit, error) {
	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, rows.Err()
}
