package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verdant-labs/greengauge/internal/engine/energy"
	"github.com/verdant-labs/greengauge/internal/engine/hydraulic"
	"github.com/verdant-labs/greengauge/internal/engine/nec"
	"github.com/verdant-labs/greengauge/internal/engine/nutrient"
	"github.com/verdant-labs/greengauge/internal/fleet"
	"github.com/verdant-labs/greengauge/internal/report"
)

// NECCheckRequest is the body for POST /api/v1/nec/check.
type NECCheckRequest struct {
	Equipment         nec.Equipment `json:"equipment"`
	CircuitDistanceFt float64       `json:"circuitDistanceFt"`
}

func (s *Service) handleNECCheck(c echo.Context) error {
	var req NECCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checklist, err := nec.PerformCompleteComplianceCheck(
		c.Request().Context(), req.Equipment, req.CircuitDistanceFt,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report.New(report.EngineNEC, checklist))
}

// NECFleetRequest is the body for POST /api/v1/nec/fleet.
type NECFleetRequest struct {
	Items       []fleet.Item `json:"items"`
	Concurrency int          `json:"concurrency,omitempty"`
}

func (s *Service) handleNECFleet(c echo.Context) error {
	var req NECFleetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	results, err := fleet.CheckAll(c.Request().Context(), req.Items, req.Concurrency)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, report.New(report.EngineNEC, results))
}

// HydraulicAnalyzeRequest is the body for POST /api/v1/hydraulic/analyze.
// SoilType is optional; when set, the analysis includes infiltration
// guidance for that soil.
type HydraulicAnalyzeRequest struct {
	Params       hydraulic.CalculationParams `json:"params"`
	PipeMaterial hydraulic.PipeMaterial      `json:"pipeMaterial"`
	SoilType     hydraulic.SoilType          `json:"soilType,omitempty"`
}

func (s *Service) handleHydraulicAnalyze(c echo.Context) error {
	var req HydraulicAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pipe, _ := hydraulic.PipeSpecFor(req.PipeMaterial)
	var soil *hydraulic.SoilProperties
	if req.SoilType != "" {
		props, _ := hydraulic.SoilPropertiesFor(req.SoilType)
		soil = &props
	}

	result, err := hydraulic.AnalyzeSystem(c.Request().Context(), req.Params, pipe, soil)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report.New(report.EngineHydraulic, result))
}

// EnergyDemandRequest is the body for POST /api/v1/energy/demand.
type EnergyDemandRequest struct {
	Specs            energy.GreenhouseSpecs   `json:"specs"`
	Setpoints        energy.ClimateSetpoints  `json:"setpoints"`
	Weather          energy.WeatherConditions `json:"weather"`
	ElectricityPrice float64                  `json:"electricityPricePerKWh,omitempty"`
}

func (s *Service) handleEnergyDemand(c echo.Context) error {
	var req EnergyDemandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := energy.CalculateDemand(
		c.Request().Context(), req.Specs, req.Setpoints, req.Weather, req.ElectricityPrice,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report.New(report.EngineEnergy, result))
}

// NutrientRequirementsRequest is the body for POST /api/v1/nutrient/requirements.
type NutrientRequirementsRequest struct {
	Profile     string                           `json:"profile"`
	Plant       nutrient.PlantParameters         `json:"plant"`
	Environment nutrient.EnvironmentalConditions `json:"environment"`
	Targets     nutrient.ProductionTargets       `json:"targets"`
}

func (s *Service) handleNutrientRequirements(c echo.Context) error {
	var req NutrientRequirementsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := nutrient.CalculateRequirements(
		c.Request().Context(), req.Profile, req.Plant, req.Environment, req.Targets,
	)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report.New(report.EngineNutrient, result))
}

// NutrientDiagnosisRequest is the body for POST /api/v1/nutrient/diagnosis.
type NutrientDiagnosisRequest struct {
	Current  nutrient.Nutrients `json:"current"`
	Required nutrient.Nutrients `json:"required"`
}

func (s *Service) handleNutrientDiagnosis(c echo.Context) error {
	var req NutrientDiagnosisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	diag := nutrient.DiagnoseDeficiencies(c.Request().Context(), req.Current, req.Required)
	return c.JSON(http.StatusOK, report.New(report.EngineNutrient, diag))
}
