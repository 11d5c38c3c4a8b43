// Package fleet runs the NEC compliance checklist across an equipment
// inventory, loaded from a YAML manifest and checked concurrently under a
// bounded worker pool.
package fleet

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/verdant-labs/greengauge/internal/engine/nec"
)

// DefaultConcurrency bounds the worker pool when the caller passes 0.
const DefaultConcurrency = 4

// DefaultCircuitDistanceFt is assumed for voltage-drop checks when a manifest
// entry omits its circuit distance.
const DefaultCircuitDistanceFt = 50

// Item is one entry in an equipment manifest. A zero CircuitDistanceFt means
// the distance was not recorded and CheckAll uses DefaultCircuitDistanceFt.
type Item struct {
	Equipment         nec.Equipment `json:"equipment"`
	CircuitDistanceFt float64       `json:"circuitDistanceFt"`
}

// manifestEntry is the YAML schema for one manifest item.
type manifestEntry struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	PowerWatts  float64 `yaml:"power_watts"`
	Current     float64 `yaml:"current"`
	Voltage     float64 `yaml:"voltage"`
	Phases      int     `yaml:"phases"`
	Continuous  bool    `yaml:"continuous"`
	Motor       bool    `yaml:"motor"`
	WetLocation bool    `yaml:"wet_location"`
	DistanceFt  float64 `yaml:"distance_ft"`
}

// Load reads a YAML equipment manifest. Phases defaults to 1 when omitted.
func Load(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var entries []manifestEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		phases := e.Phases
		if phases == 0 {
			phases = 1
		}
		items = append(items, Item{
			Equipment: nec.Equipment{
				Name:        e.Name,
				Type:        nec.EquipmentType(e.Type),
				PowerWatts:  e.PowerWatts,
				Current:     e.Current,
				Voltage:     e.Voltage,
				Phases:      phases,
				Continuous:  e.Continuous,
				Motor:       e.Motor,
				WetLocation: e.WetLocation,
			},
			CircuitDistanceFt: e.DistanceFt,
		})
	}
	return items, nil
}

// Result pairs one item's checklist with any per-item error. A failed item
// does not stop the rest of the fleet.
type Result struct {
	Name      string         `json:"name"`
	Checklist *nec.Checklist `json:"checklist,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// CheckAll runs the compliance checklist for every item, at most
// maxConcurrency at a time, and returns results in manifest order. It stops
// early only on context cancellation.
func CheckAll(ctx context.Context, items []Item, maxConcurrency int) ([]Result, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("equipment manifest is empty")
	}
	if maxConcurrency < 1 {
		maxConcurrency = DefaultConcurrency
	}

	results := make([]Result, len(items))
	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, item := range items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(i int, item Item) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := Result{Name: item.Equipment.Name}
			distance := item.CircuitDistanceFt
			if distance <= 0 {
				distance = DefaultCircuitDistanceFt
			}
			checklist, err := nec.PerformCompleteComplianceCheck(ctx, item.Equipment, distance)
			if err != nil {
				result.Error = err.Error()
			} else {
				result.Checklist = checklist
			}
			results[i] = result
		}(i, item)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
