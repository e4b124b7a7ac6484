package domain

import (
	"errors"
	"fmt"
)

// Categorias de erro do núcleo de analytics
var (
	ErrValidation          = errors.New("validation failed")
	ErrAuthorization       = errors.New("not authorized")
	ErrNotFound            = errors.New("not found")
	ErrComputeFailed       = errors.New("failed to compute metric")
	ErrAmbiguousMatch      = errors.New("ambiguous match")
	ErrAttributionConflict = errors.New("conflicting exact attribution")
)

// AnalyticsError é um erro com contexto adicional para a API
type AnalyticsError struct {
	Err       error  // Categoria
	Code      string // Código de erro para API
	AccountID string // Conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
	Cause     error  // Erro de origem, quando houver
}

func (e *AnalyticsError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap expõe a categoria e a causa para errors.Is/errors.As
func (e *AnalyticsError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAnalyticsErrorWithID(err error, code string, accountID string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

// Wrap anexa a causa e devolve o próprio erro
func (e *AnalyticsError) Wrap(cause error) *AnalyticsError {
	e.Cause = cause
	return e
}
