package service

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores que ve el cliente. El conjunto es cerrado.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindStoreUnavailable Kind = "store_unavailable"
	KindValidationFailed Kind = "validation_failed"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrValidationFailed = errors.New("validation failed")
)

var kindSentinels = map[Kind]error{
	KindNotFound:         ErrNotFound,
	KindStoreUnavailable: ErrStoreUnavailable,
	KindValidationFailed: ErrValidationFailed,
}

var publicMessages = map[Kind]string{
	KindNotFound:         "resource not found",
	KindStoreUnavailable: "the message store is unavailable",
	KindValidationFailed: "the request is invalid",
}

// Error envuelve la causa real con su Kind y la operación que falló.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrValidationFailed) y similares.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf devuelve el Kind de err. Cualquier error sin clasificar se trata
// como falla del store.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		if _, ok := kindSentinels[e.Kind]; ok {
			return e.Kind
		}
	}
	return KindStoreUnavailable
}

// PublicMessage es el texto fijo que se expone al cliente para cada Kind.
func PublicMessage(kind Kind) string {
	if msg, ok := publicMessages[kind]; ok {
		return msg
	}
	return publicMessages[KindStoreUnavailable]
}

// ValidationError construye un error de validación para la capa HTTP.
func ValidationError(op string, err error) error {
	return newError(KindValidationFailed, op, err)
}
