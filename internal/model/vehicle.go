package model

// FuelKind distinguishes the two sides of the cost comparison.
type FuelKind string

const (
	FuelGas      FuelKind = "gas"
	FuelElectric FuelKind = "electric"
)

// VehicleProfile is a catalog entry: a vehicle name and its average
// efficiency. For gas vehicles the unit is miles per gallon, for electric
// vehicles miles per kWh. Catalog efficiencies are always positive.
type VehicleProfile struct {
	Name       string   `json:"name"`
	Efficiency float64  `json:"efficiency"`
	Fuel       FuelKind `json:"fuel"`
}

// CostBreakdown is the derived weekly/monthly/yearly cost for one vehicle.
// Values are unrounded; callers round to cents for display.
type CostBreakdown struct {
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}
