// Package report wraps engine results in a stamped analysis envelope so
// downstream consumers (CLI output, HTTP responses, audit trails) can
// correlate and archive individual runs.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Engine identifies which calculation engine produced a report.
type Engine string

const (
	EngineNEC       Engine = "nec"
	EngineHydraulic Engine = "hydraulic"
	EngineEnergy    Engine = "energy"
	EngineNutrient  Engine = "nutrient"
)

// Report is the envelope around one engine result. Payload is the engine's
// own result struct and marshals as-is.
type Report struct {
	ID          string    `json:"id"`
	Engine      Engine    `json:"engine"`
	GeneratedAt time.Time `json:"generatedAt"`
	Payload     any       `json:"payload"`
}

// New stamps payload with a fresh ULID and UTC timestamp.
func New(engine Engine, payload any) Report {
	now := time.Now().UTC()
	return Report{
		ID:          ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Engine:      engine,
		GeneratedAt: now,
		Payload:     payload,
	}
}
