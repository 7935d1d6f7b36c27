package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	HTTPStatus int         `json:"-"`
	Err        error       `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches structured client-facing detail data.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Eligibility (ELG) ----

func ErrUserNotFound() *AppError {
	return New("ELG_001", "User not found", http.StatusNotFound)
}

func ErrRewardTooSoon() *AppError {
	return New("ELG_002", "Reward already generated in the current eligibility window", http.StatusConflict)
}

func ErrInsufficientActivity() *AppError {
	return New("ELG_003", "Not enough bookings for a reward", http.StatusUnprocessableEntity)
}

// ---- Reward Redemption (RWD) ----

func ErrRewardNotFound() *AppError {
	return New("RWD_001", "Reward not found", http.StatusNotFound)
}

func ErrRewardExpired() *AppError {
	return New("RWD_002", "Reward has expired and cannot be redeemed", http.StatusBadRequest)
}

func ErrAlreadyRedeemed() *AppError {
	return New("RWD_003", "Reward already redeemed", http.StatusBadRequest)
}

func ErrNothingPending() *AppError {
	return New("RWD_004", "No pending rewards to redeem", http.StatusBadRequest)
}

// ErrAllExpiredRewards reports that every pending reward is past expiry.
// details carries the expired reward summaries for the client.
func ErrAllExpiredRewards(details interface{}) *AppError {
	return New("RWD_005", "All pending rewards have expired", http.StatusBadRequest).WithDetails(details)
}

// ---- Wallet / Treasury (WAL) ----

func ErrWalletMissing(owner string) *AppError {
	return New("WAL_001", fmt.Sprintf("%s wallet not found", owner), http.StatusInternalServerError)
}

func ErrInsufficientTreasury() *AppError {
	return New("WAL_002", "Insufficient balance in treasury wallet", http.StatusInternalServerError)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Access to this resource is not allowed", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps a store or infrastructure failure as a SYS_001 error.
// The unit of work has been fully rolled back by the time this is reported.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
