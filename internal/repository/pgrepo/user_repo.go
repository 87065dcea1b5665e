package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, first_name, last_name, email, password,
profile_image, deposit_amount, profit_amount, total_amount, status, account_status, role, lock_version`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		args.FirstName, args.LastName, args.Email, args.Password, string(args.Role))

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email")
	}
	return user, nil
}

func (r *UserRepository) UpdateProfile(
	ctx context.Context,
	args repoargs.UpdateUserProfile,
) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, profile_image = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		args.ID, args.FirstName, args.LastName, args.ProfileImage)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "updating profile of user %d", args.ID)
	}
	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE users SET password = $2, updated_at = now() WHERE id = $1`, id, hashedPassword)
	if err != nil {
		return convertErr(err, "updating password of user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating password of user %d", id)
	}
	return nil
}

func (r *UserRepository) SetStatus(
	ctx context.Context,
	id int64,
	status domain.UserStatusType,
) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE users SET status = $2, updated_at = now() WHERE id = $1
		RETURNING `+userColumns, id, string(status))

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting status of user %d", id)
	}
	return user, nil
}

func (r *UserRepository) SetAccountStatus(
	ctx context.Context,
	id int64,
	status domain.AccountStatusType,
) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE users SET account_status = $2, updated_at = now() WHERE id = $1
		RETURNING `+userColumns, id, string(status))

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting account status of user %d", id)
	}
	return user, nil
}

// UpdateBalances обновляет денежные поля с проверкой lock_version. Если версия
// не совпала (параллельная запись успела раньше), возвращает domain.ErrVersionConflict.
func (r *UserRepository) UpdateBalances(
	ctx context.Context,
	args repoargs.UpdateUserBalances,
) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE users
		SET deposit_amount = $2, profit_amount = $3, total_amount = $4,
		    lock_version = lock_version + 1, updated_at = now()
		WHERE id = $1 AND lock_version = $5
		RETURNING `+userColumns,
		args.ID, args.DepositAmount, args.ProfitAmount, args.TotalAmount, args.LockVersion)

	user, err := scanUser(row)
	if err != nil {
		// Отсутствие строки означает либо несуществующего юзера, либо проигранную
		// гонку за lock_version. Различаем по отдельному запросу.
		if errors.Is(err, pgx.ErrNoRows) {
			if _, findErr := r.FindUserByID(ctx, args.ID); findErr == nil {
				return nil, domain.ErrVersionConflict
			}
		}
		return nil, convertErr(err, "updating balances of user %d", args.ID)
	}
	return user, nil
}

// GetEligibleForAccrual возвращает юзеров, подпадающих под ежедневное начисление
// прибыли: активных и с положительным депозитом.
func (r *UserRepository) GetEligibleForAccrual(ctx context.Context) ([]domain.User, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE status = 'active' AND deposit_amount > 0
		ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "getting users eligible for accrual")
	}
	defer rows.Close()

	users, scanErr := scanUsers(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting users eligible for accrual")
	}
	return users, nil
}

func (r *UserRepository) GetUsers(
	ctx context.Context,
	filter repoargs.UserFilter,
) ([]domain.User, int64, error) {
	where := ` WHERE ($1::text IS NULL OR account_status = $1) AND ($2::text IS NULL OR status = $2)`

	var accountStatus, status *string
	if filter.AccountStatus != nil {
		s := string(*filter.AccountStatus)
		accountStatus = &s
	}
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	var total int64
	if err := r.conn.QueryRow(ctx, `SELECT count(*) FROM users`+where,
		accountStatus, status).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting users")
	}

	limit, offset := filter.Page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+userColumns+` FROM users`+where+`
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		accountStatus, status, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting users")
	}
	defer rows.Close()

	users, scanErr := scanUsers(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting users")
	}
	return users, total, nil
}

func (r *UserRepository) GetUserRefs(ctx context.Context, ids []int64) ([]domain.UserRef, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT id, first_name, last_name, email FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, convertErr(err, "getting user refs")
	}
	defer rows.Close()

	var refs []domain.UserRef
	for rows.Next() {
		var ref domain.UserRef
		if scanErr := rows.Scan(&ref.ID, &ref.FirstName, &ref.LastName, &ref.Email); scanErr != nil {
			return nil, convertErr(scanErr, "getting user refs")
		}
		refs = append(refs, ref)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting user refs")
	}
	return refs, nil
}

func (r *UserRepository) CountUsers(ctx context.Context, filter repoargs.UserFilter) (int64, error) {
	var accountStatus, status *string
	if filter.AccountStatus != nil {
		s := string(*filter.AccountStatus)
		accountStatus = &s
	}
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	var total int64
	err := r.conn.QueryRow(ctx, `
		SELECT count(*) FROM users
		WHERE ($1::text IS NULL OR account_status = $1) AND ($2::text IS NULL OR status = $2)`,
		accountStatus, status).Scan(&total)
	if err != nil {
		return 0, convertErr(err, "counting users")
	}
	return total, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var status, accountStatus, role string
	err := row.Scan(
		&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.ProfileImage, &u.DepositAmount, &u.ProfitAmount, &u.TotalAmount,
		&status, &accountStatus, &role, &u.LockVersion,
	)
	if err != nil {
		return nil, err
	}
	u.Status = domain.UserStatusType(status)
	u.AccountStatus = domain.AccountStatusType(accountStatus)
	u.Role = domain.RoleType(role)
	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}
