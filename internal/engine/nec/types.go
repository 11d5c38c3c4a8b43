// Package nec evaluates electrical equipment descriptors against National
// Electrical Code (NFPA 70) rules: branch-circuit loading, equipment
// grounding, motor and air-conditioning overcurrent protection, GFCI,
// ampacity correction, conduit fill and voltage drop.
//
// Every function is a pure function of its inputs. Out-of-table values are
// clamped to the nearest table boundary and flagged via Extrapolated rather
// than rejected; see the package tables for the exact boundaries.
package nec

import (
	"encoding/json"
	"fmt"
)

// EquipmentType categorises a piece of electrical equipment. The type drives
// which code articles apply (motors, AC equipment, GFCI locations).
type EquipmentType string

const (
	EquipmentHVAC         EquipmentType = "hvac"
	EquipmentChiller      EquipmentType = "chiller"
	EquipmentDehumidifier EquipmentType = "dehumidifier"
	EquipmentHumidifier   EquipmentType = "humidifier"
	EquipmentIrrigation   EquipmentType = "irrigation"
	EquipmentLighting     EquipmentType = "lighting"
	EquipmentFan          EquipmentType = "fan"
	EquipmentPump         EquipmentType = "pump"
	EquipmentOther        EquipmentType = "other"
)

// validEquipmentTypes is the closed set accepted by ParseEquipmentType.
var validEquipmentTypes = map[EquipmentType]bool{
	EquipmentHVAC:         true,
	EquipmentChiller:      true,
	EquipmentDehumidifier: true,
	EquipmentHumidifier:   true,
	EquipmentIrrigation:   true,
	EquipmentLighting:     true,
	EquipmentFan:          true,
	EquipmentPump:         true,
	EquipmentOther:        true,
}

// ParseEquipmentType validates a string as an EquipmentType.
func ParseEquipmentType(s string) (EquipmentType, error) {
	t := EquipmentType(s)
	if !validEquipmentTypes[t] {
		return "", fmt.Errorf("unknown equipment type: %q", s)
	}
	return t, nil
}

// isACEquipment reports whether t falls under NEC Article 440
// (air-conditioning and refrigeration equipment).
func isACEquipment(t EquipmentType) bool {
	return t == EquipmentHVAC || t == EquipmentChiller || t == EquipmentDehumidifier
}

// requiresGFCIByType reports whether t requires GFCI protection regardless of
// installation location.
func requiresGFCIByType(t EquipmentType) bool {
	return t == EquipmentIrrigation || t == EquipmentDehumidifier || t == EquipmentHumidifier
}

// Equipment describes one electrical load to be checked.
type Equipment struct {
	Name        string        `json:"name" validate:"required"`
	Type        EquipmentType `json:"type" validate:"required"`
	PowerWatts  float64       `json:"powerWatts" validate:"omitempty,gt=0"`
	Current     float64       `json:"current" validate:"required,gt=0"`
	Voltage     float64       `json:"voltage" validate:"required,gt=0"`
	Phases      int           `json:"phases" validate:"required,oneof=1 3"`
	Continuous  bool          `json:"continuous"`
	Motor       bool          `json:"motor"`
	WetLocation bool          `json:"wetLocation"`
}

// Compliance is one entry in a compliance checklist: the article and section
// it was checked against, the requirement as applied to this equipment, the
// verdict, and any notes for the designer.
type Compliance struct {
	Article     string `json:"article"`
	Section     string `json:"section"`
	Requirement string `json:"requirement"`
	IsCompliant bool   `json:"isCompliant"`
	Notes       string `json:"notes,omitempty"`
}

// AmpacityCorrection is the result of applying the Table 310.15(B)(1)
// temperature correction and Table 310.15(B)(3)(a) conductor-count
// adjustment to a base ampacity.
type AmpacityCorrection struct {
	BaseAmpacity          float64 `json:"baseAmpacity"`
	TemperatureCorrection float64 `json:"temperatureCorrection"`
	AdjustmentFactor      float64 `json:"adjustmentFactor"`
	CorrectedAmpacity     float64 `json:"correctedAmpacity"`
	// Extrapolated is set when the ambient temperature or conductor count
	// fell outside the table and was clamped to the nearest boundary.
	Extrapolated bool `json:"extrapolated"`
}

// ConduitFill is the result of sizing a conduit for a wire bundle.
type ConduitFill struct {
	ConduitSize    string  `json:"conduitSize"`
	ConduitType    string  `json:"conduitType"`
	WireAreaSqIn   float64 `json:"wireAreaSqIn"`
	FillPercentage float64 `json:"fillPercentage"`
	IsCompliant    bool    `json:"isCompliant"`
}

// VoltageDrop is the result of a circuit voltage-drop calculation.
type VoltageDrop struct {
	DropVolts      float64 `json:"dropVolts"`
	DropPercentage float64 `json:"dropPercentage"`
	IsCompliant    bool    `json:"isCompliant"`
}

// Checklist is the ordered result of a complete compliance check.
type Checklist struct {
	Equipment Equipment    `json:"equipment"`
	Checks    []Compliance `json:"checks"`
}

// MarshalJSON keeps Checks non-null even when empty.
func (c Checklist) MarshalJSON() ([]byte, error) {
	type alias Checklist
	a := alias(c)
	if a.Checks == nil {
		a.Checks = []Compliance{}
	}
	return json.Marshal(a)
}
