package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrStateConflict    = errors.New("state conflict")
	ErrVersionConflict  = errors.New("version conflict")
	ErrAlreadyAccrued   = errors.New("profit already accrued for this day")
	ErrUserNotEligible  = errors.New("user not eligible for profit accrual")
	ErrAccountBlocked   = errors.New("account is blocked")
	ErrAccountPending   = errors.New("account is pending approval")
	ErrAccountRejected  = errors.New("account has been rejected")
)

// SettlementConflictError возвращается при попытке перевести заявку,
// уже находящуюся в терминальном статусе.
type SettlementConflictError struct {
	ID     int64
	Status SettlementStatusType
}

func (e *SettlementConflictError) Error() string {
	return fmt.Sprintf("settlement conflict: entry %d is already %s", e.ID, e.Status)
}

func (e *SettlementConflictError) Unwrap() error {
	return ErrStateConflict
}
