package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evtrip/core/model"
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Vehicle related commands",
}

var vehiclesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List built-in vehicle presets",
	RunE:  runVehiclesLs,
}

func init() {
	vehiclesCmd.AddCommand(vehiclesLsCmd)
	rootCmd.AddCommand(vehiclesCmd)
}

func runVehiclesLs(cmd *cobra.Command, _ []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NAME\tWEIGHT kg\tAREA m²\tETA\tBATTERY kWh\tAUX W\tCW\tCR\tCHARGING kW"); err != nil {
		return err
	}
	for _, name := range model.PresetNames() {
		v, err := model.Preset(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n", name,
			v.WeightKg, v.FrontalAreaM2, v.DrivetrainEfficiency, v.BatteryKWh,
			v.AuxiliaryPowerW, v.DragCoefficient, v.RollingResistance, v.ChargingPowerKW); err != nil {
			return err
		}
	}
	return tw.Flush()
}
