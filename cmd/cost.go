package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/evdash/internal/cost"
	"github.com/sells-group/evdash/internal/model"
)

var (
	costGasCar string
	costEVCar  string
	costMiles  float64
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Compare weekly, monthly, and yearly fuel costs for a gas car and an EV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		miles := cost.ClampMiles(costMiles)

		gas, err := cost.Profile(cost.GasCatalog, costGasCar)
		if err != nil {
			return err
		}
		ev, err := cost.Profile(cost.EVCatalog, costEVCar)
		if err != nil {
			return err
		}

		gasCost := cost.RoundCents(cost.Compute(miles, gas.Efficiency, cfg.Pricing.GasPerGallon))
		evCost := cost.RoundCents(cost.Compute(miles, ev.Efficiency, cfg.Pricing.ElectricityPerKWh))

		fmt.Printf("Weekly miles: %.0f\n\n", miles)
		formatCostPanel(os.Stdout, gas, cfg.Pricing.GasPerGallon, "$/gal", gasCost)
		fmt.Println()
		formatCostPanel(os.Stdout, ev, cfg.Pricing.ElectricityPerKWh, "$/kWh", evCost)
		return nil
	},
}

func init() {
	costCmd.Flags().StringVar(&costGasCar, "gas-car", cost.GasCatalog[0].Name, "gas vehicle name")
	costCmd.Flags().StringVar(&costEVCar, "ev-car", cost.EVCatalog[0].Name, "electric vehicle name")
	costCmd.Flags().Float64Var(&costMiles, "miles", 250, "weekly miles driven (0-2000)")
	rootCmd.AddCommand(costCmd)
}

// formatCostPanel writes one vehicle's cost panel to w.
func formatCostPanel(out io.Writer, p model.VehicleProfile, price float64, unit string, c model.CostBreakdown) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s\t(%s)\n", p.Name, p.Fuel)
	_, _ = fmt.Fprintf(w, "  Efficiency:\t%.1f %s\n", p.Efficiency, efficiencyUnit(p.Fuel))
	_, _ = fmt.Fprintf(w, "  Price:\t%.2f %s\n", price, unit)
	_, _ = fmt.Fprintf(w, "  Weekly:\t$%.2f\n", c.Weekly)
	_, _ = fmt.Fprintf(w, "  Monthly:\t$%.2f\n", c.Monthly)
	_, _ = fmt.Fprintf(w, "  Yearly:\t$%.2f\n", c.Yearly)
	_ = w.Flush()
}

func efficiencyUnit(f model.FuelKind) string {
	if f == model.FuelElectric {
		return "mi/kWh"
	}
	return "mpg"
}
