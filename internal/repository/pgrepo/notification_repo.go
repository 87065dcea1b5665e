package pgrepo

import (
	"context"

	"github.com/fsdevblog/safevault/internal/domain"
	"github.com/fsdevblog/safevault/internal/repository/repoargs"
	"github.com/fsdevblog/safevault/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, created_at, user_id, message, type, user_status, admin_status, action_url`

type NotificationRepository struct {
	conn uow.DBTX
}

func NewNotificationRepository(conn uow.DBTX) *NotificationRepository {
	return &NotificationRepository{conn: conn}
}

func (r *NotificationRepository) CreateNotification(
	ctx context.Context,
	args repoargs.CreateNotification,
) (*domain.Notification, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO notifications (user_id, message, type, action_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+notificationColumns,
		args.UserID, args.Message, string(args.Type), args.ActionURL)

	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "creating notification")
	}
	return notification, nil
}

func (r *NotificationRepository) GetNotifications(
	ctx context.Context,
	filter repoargs.NotificationFilter,
) ([]domain.Notification, int64, error) {
	where := ` WHERE ($1::bigint IS NULL OR user_id = $1)
		AND ($2::text IS NULL OR user_status = $2)
		AND ($3::text IS NULL OR admin_status = $3)`

	var userStatus, adminStatus *string
	if filter.UserStatus != nil {
		s := string(*filter.UserStatus)
		userStatus = &s
	}
	if filter.AdminStatus != nil {
		s := string(*filter.AdminStatus)
		adminStatus = &s
	}

	var total int64
	if err := r.conn.QueryRow(ctx, `SELECT count(*) FROM notifications`+where,
		filter.UserID, userStatus, adminStatus).Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting notifications")
	}

	limit, offset := filter.Page.Normalized()
	rows, err := r.conn.Query(ctx, `
		SELECT `+notificationColumns+` FROM notifications`+where+`
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`,
		filter.UserID, userStatus, adminStatus, limit, offset)
	if err != nil {
		return nil, 0, convertErr(err, "getting notifications")
	}
	defer rows.Close()

	notifications, scanErr := scanNotifications(rows)
	if scanErr != nil {
		return nil, 0, convertErr(scanErr, "getting notifications")
	}
	return notifications, total, nil
}

// MarkUserRead помечает уведомление прочитанным для юзера. Админский флаг не трогает.
func (r *NotificationRepository) MarkUserRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE notifications SET user_status = 'read'
		WHERE id = $1 AND user_id = $2
		RETURNING `+notificationColumns, id, userID)

	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "marking notification %d read for user %d", id, userID)
	}
	return notification, nil
}

func (r *NotificationRepository) MarkAllUserRead(ctx context.Context, userID int64) error {
	_, err := r.conn.Exec(ctx, `
		UPDATE notifications SET user_status = 'read'
		WHERE user_id = $1 AND user_status = 'unread'`, userID)
	return convertErr(err, "marking all notifications read for user %d", userID)
}

// MarkAdminRead помечает уведомление прочитанным для админа. Флаг юзера не трогает.
func (r *NotificationRepository) MarkAdminRead(ctx context.Context, id int64) (*domain.Notification, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE notifications SET admin_status = 'read'
		WHERE id = $1
		RETURNING `+notificationColumns, id)

	notification, err := scanNotification(row)
	if err != nil {
		return nil, convertErr(err, "marking notification %d read for admin", id)
	}
	return notification, nil
}

func (r *NotificationRepository) MarkAllAdminRead(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, `
		UPDATE notifications SET admin_status = 'read' WHERE admin_status = 'unread'`)
	return convertErr(err, "marking all notifications read for admin")
}

func (r *NotificationRepository) DeleteNotificationForUser(ctx context.Context, id, userID int64) error {
	tag, err := r.conn.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return convertErr(err, "deleting notification %d of user %d", id, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting notification %d of user %d", id, userID)
	}
	return nil
}

func (r *NotificationRepository) DeleteAllNotificationsForUser(ctx context.Context, userID int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID)
	return convertErr(err, "deleting all notifications of user %d", userID)
}

func (r *NotificationRepository) CountUserUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx, `
		SELECT count(*) FROM notifications WHERE user_id = $1 AND user_status = 'unread'`,
		userID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting unread notifications of user %d", userID)
	}
	return count, nil
}

func (r *NotificationRepository) CountAdminUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx, `
		SELECT count(*) FROM notifications WHERE admin_status = 'unread'`).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting unread notifications for admin")
	}
	return count, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	var nType, userStatus, adminStatus string
	err := row.Scan(&n.ID, &n.CreatedAt, &n.UserID, &n.Message,
		&nType, &userStatus, &adminStatus, &n.ActionURL)
	if err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(nType)
	n.UserStatus = domain.ReadStatusType(userStatus)
	n.AdminStatus = domain.ReadStatusType(adminStatus)
	return &n, nil
}

func scanNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var notifications []domain.Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *notification)
	}
	return notifications, rows.Err()
}
