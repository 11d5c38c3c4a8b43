package api

import "github.com/verdant-labs/greengauge/internal/engine"

// requestValidator adapts the shared engine validator to echo's Validator
// interface so handlers can call c.Validate on bound request bodies.
type requestValidator struct{}

func newValidator() *requestValidator {
	return &requestValidator{}
}

func (v *requestValidator) Validate(i any) error {
	return engine.ValidateStruct(i)
}
