package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/evdash/internal/boundary"
)

var (
	boundariesShp string
	boundariesOut string
)

var boundariesCmd = &cobra.Command{
	Use:   "boundaries",
	Short: "Manage county boundary data for the map overlay",
}

var boundariesConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a county shapefile to the GeoJSON overlay file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		n, err := boundary.ConvertShapefile(boundariesShp, boundariesOut)
		if err != nil {
			return err
		}
		zap.L().Info("converted shapefile",
			zap.String("shp", boundariesShp),
			zap.String("out", boundariesOut),
			zap.Int("features", n),
		)
		return nil
	},
}

func init() {
	boundariesConvertCmd.Flags().StringVar(&boundariesShp, "shp", "", "input .shp path (required)")
	boundariesConvertCmd.Flags().StringVar(&boundariesOut, "out", "counties.json", "output GeoJSON path")
	_ = boundariesConvertCmd.MarkFlagRequired("shp")

	boundariesCmd.AddCommand(boundariesConvertCmd)
	rootCmd.AddCommand(boundariesCmd)
}
