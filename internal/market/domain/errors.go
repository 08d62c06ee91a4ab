package domain

import "errors"

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindInvalidArgument
	KindNotFound
	KindFailedPrecondition
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInvalidArgument:
		return "invalid-argument"
	case KindNotFound:
		return "not-found"
	case KindFailedPrecondition:
		return "failed-precondition"
	case KindTransient:
		return "unavailable"
	default:
		return "internal"
	}
}

// KindOf classifies err into the kind reported to callers.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, &UnauthenticatedError{}):
		return KindUnauthenticated
	case errors.Is(err, &InvalidArgumentsError{}):
		return KindInvalidArgument
	case errors.Is(err, &UserNotFoundError{}),
		errors.Is(err, &ProductNotFoundError{}),
		errors.Is(err, &ReceiptNotFoundError{}):
		return KindNotFound
	case errors.Is(err, &OutOfStockError{}),
		errors.Is(err, &InsufficientBalanceError{}):
		return KindFailedPrecondition
	case errors.Is(err, &TransientError{}):
		return KindTransient
	default:
		return KindInternal
	}
}

//region UnauthenticatedError

type UnauthenticatedError struct {
	Msg string
}

func (e *UnauthenticatedError) Error() string {
	return e.Msg
}

func (e *UnauthenticatedError) Is(target error) bool {
	_, ok := target.(*UnauthenticatedError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg       string
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region ReceiptNotFoundError

type ReceiptNotFoundError struct {
	Msg string
}

func (e *ReceiptNotFoundError) Error() string {
	return e.Msg
}

func (e *ReceiptNotFoundError) Is(target error) bool {
	_, ok := target.(*ReceiptNotFoundError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	Msg         string
	ProductName string
}

func (e *OutOfStockError) Error() string {
	return e.Msg
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region TransientError

// TransientError means the purchase lost every conflict retry. The request
// can be repeated as is.
type TransientError struct {
	Msg string
	Err error
}

func (e *TransientError) Error() string {
	return e.Msg
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func (e *TransientError) Is(target error) bool {
	_, ok := target.(*TransientError)
	return ok
}

//endregion
