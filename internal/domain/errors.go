package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested row does not
// exist. Services translate it into a lifecycle error where it matters.
var ErrNotFound = errors.New("not found")

// ErrValidation is the class of every lifecycle rule violation. All RuleError
// values unwrap to it, so handlers can map the whole family to HTTP 422.
var ErrValidation = errors.New("validation error")

// RuleError is a user-facing lifecycle error. Message is safe to show to clients.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// Unwrap makes errors.Is(err, ErrValidation) true for every RuleError.
func (e *RuleError) Unwrap() error { return ErrValidation }

var (
	// ErrInvalidPlate is returned when a plate is absent or does not match LLL-NNNN.
	ErrInvalidPlate = &RuleError{Message: "Invalid Plate"}

	// ErrNoActiveSession is returned by Pay and Leave when the plate has no open session.
	ErrNoActiveSession = &RuleError{Message: "Nenhum registro ativo encontrado para a placa informada"}

	// ErrAlreadyPaid is returned by Pay when the open session was already paid.
	ErrAlreadyPaid = &RuleError{Message: "Pagamento já realizado, faça a baixa do veículo"}

	// ErrPaymentRequired is returned by Leave when the open session is unpaid.
	ErrPaymentRequired = &RuleError{Message: "Pagamento não realizado"}
)
