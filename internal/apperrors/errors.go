package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("operation not permitted")

// ErrInvalidSplit indicates that a requested expense split is inconsistent:
// non-positive total, a negative share, or shares that do not sum to the total.
var ErrInvalidSplit = errors.New("invalid expense split")

// ErrSettlementMismatch indicates that a payment could not be matched exactly
// against the outstanding debt queue. It never escapes the settlement matcher;
// the payment is then recorded as ordinary share/debt data.
var ErrSettlementMismatch = errors.New("payment does not match outstanding debts exactly")
