// Package cost implements the gas-vs-electric vehicle cost comparison.
package cost

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/evdash/internal/model"
)

// Weekly mileage bounds accepted from user input.
const (
	MinWeeklyMiles = 0
	MaxWeeklyMiles = 2000
)

// Cost multipliers. Fixed by contract: a month is four weeks and a year is
// fifty-two, not calendar-accurate.
const (
	weeksPerMonth = 4
	weeksPerYear  = 52
)

// EVCatalog lists electric vehicles with average efficiency in miles per kWh.
var EVCatalog = []model.VehicleProfile{
	{Name: "Tesla Model 3", Efficiency: 4.1, Fuel: model.FuelElectric},
	{Name: "Nissan Leaf", Efficiency: 3.6, Fuel: model.FuelElectric},
	{Name: "Chevrolet Bolt", Efficiency: 3.8, Fuel: model.FuelElectric},
	{Name: "Hyundai Kona Electric", Efficiency: 4.0, Fuel: model.FuelElectric},
	{Name: "Ford Mustang Mach-E", Efficiency: 3.5, Fuel: model.FuelElectric},
	{Name: "Audi e-tron", Efficiency: 2.6, Fuel: model.FuelElectric},
	{Name: "BMW i3", Efficiency: 3.4, Fuel: model.FuelElectric},
	{Name: "Other EV", Efficiency: 3.5, Fuel: model.FuelElectric},
}

// GasCatalog lists gas vehicles with average efficiency in miles per gallon.
var GasCatalog = []model.VehicleProfile{
	{Name: "Toyota Corolla", Efficiency: 32, Fuel: model.FuelGas},
	{Name: "Honda Civic", Efficiency: 33, Fuel: model.FuelGas},
	{Name: "Ford F-150", Efficiency: 20, Fuel: model.FuelGas},
	{Name: "Chevrolet Silverado", Efficiency: 21, Fuel: model.FuelGas},
	{Name: "BMW 3 Series", Efficiency: 27, Fuel: model.FuelGas},
	{Name: "Audi A4", Efficiency: 28, Fuel: model.FuelGas},
	{Name: "Other Gas Car", Efficiency: 25, Fuel: model.FuelGas},
}

// Compute turns weekly mileage, vehicle efficiency, and a unit price into a
// cost breakdown. consumed units = weeklyMiles / efficiency (gallons for gas,
// kWh for electric), weekly cost = units * unitPrice. Pure function.
func Compute(weeklyMiles, efficiency, unitPrice float64) model.CostBreakdown {
	weekly := weeklyMiles / efficiency * unitPrice
	return model.CostBreakdown{
		Weekly:  weekly,
		Monthly: weekly * weeksPerMonth,
		Yearly:  weekly * weeksPerYear,
	}
}

// ClampMiles brings a weekly-miles input into the accepted range.
func ClampMiles(miles float64) float64 {
	if miles < MinWeeklyMiles {
		return MinWeeklyMiles
	}
	if miles > MaxWeeklyMiles {
		return MaxWeeklyMiles
	}
	return miles
}

// Profile finds a vehicle by name in the given catalog.
func Profile(catalog []model.VehicleProfile, name string) (model.VehicleProfile, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return model.VehicleProfile{}, eris.Errorf("cost: unknown vehicle %q", name)
}

// RoundCents rounds each figure of a breakdown to two decimal places,
// independently from the unrounded weekly value.
func RoundCents(b model.CostBreakdown) model.CostBreakdown {
	return model.CostBreakdown{
		Weekly:  math.Round(b.Weekly*100) / 100,
		Monthly: math.Round(b.Monthly*100) / 100,
		Yearly:  math.Round(b.Yearly*100) / 100,
	}
}
