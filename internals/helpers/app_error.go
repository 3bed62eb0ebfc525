package helper

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindStorage    ErrorKind = "storage"
)

// AppError adalah error domain yang aman dikirim ke client.
// errors.Is cocok berdasarkan Code, jadi pesan boleh berbeda per operasi.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithMessage menyalin error dengan pesan lain (kode tetap).
func (e *AppError) WithMessage(msg string) *AppError {
	cp := *e
	cp.Message = msg
	return &cp
}

func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// =========================
// Codes
// =========================

const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeInvalidDateFormat     = "INVALID_DATE_FORMAT"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeDuplicateBilling      = "DUPLICATE_BILLING"
	CodeDuplicateOccupancy    = "DUPLICATE_OCCUPANCY"
	CodeDuplicateRoom         = "DUPLICATE_ROOM"
	CodeDuplicatePhone        = "DUPLICATE_PHONE"
	CodeDuplicateContract     = "DUPLICATE_CONTRACT"
	CodeDuplicateAdmin        = "DUPLICATE_ADMIN"
	CodeNotFound              = "NOT_FOUND"
	CodeRoomHasBillingHistory = "ROOM_HAS_BILLING_HISTORY"
	CodeOpenBillingCycle      = "OPEN_BILLING_CYCLE"
	CodeLastAdmin             = "LAST_ADMIN"
	CodeStorage               = "STORAGE_ERROR"
)

func Validation(code, msg string) *AppError {
	return &AppError{Kind: KindValidation, Code: code, Message: msg}
}

func InvalidInput(msg string) *AppError {
	return Validation(CodeInvalidInput, msg)
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Code: CodeNotFound, Message: msg}
}

func Conflict(code, msg string) *AppError {
	return &AppError{Kind: KindConflict, Code: code, Message: msg}
}

func Storage(msg string, err error) *AppError {
	return &AppError{Kind: KindStorage, Code: CodeStorage, Message: msg, Err: err}
}

// IsKind dipakai controller/test untuk cek kategori error.
func IsKind(err error, kind ErrorKind) bool {
	var e *AppError
	return errors.As(err, &e) && e.Kind == kind
}
