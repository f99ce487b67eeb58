package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/evtrip/core/sweep"
)

// WriteHTML renders the sweep as an interactive scatter chart: speed on the
// x axis, total trip time on the y axis, colored by consumption. Values are
// rounded for display only.
func WriteHTML(w io.Writer, res sweep.Result) error {
	scatter := charts.NewScatter()

	minC, maxC := math.Inf(1), math.Inf(-1)
	data := make([]opts.ScatterData, len(res.Samples))
	for i, s := range res.Samples {
		c := round(s.ConsumptionKWhPer100Km, 2)
		minC = math.Min(minC, c)
		maxC = math.Max(maxC, c)
		data[i] = opts.ScatterData{
			Value:      []interface{}{round(s.SpeedKmh, 1), round(s.TotalTimeH, 2), c},
			SymbolSize: 8,
		}
	}
	if len(res.Samples) == 0 {
		minC, maxC = 0, 0
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Total trip time over speed", Width: "1600px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Total trip time over speed",
			Subtitle: fmt.Sprintf("%s, trip length %g km. Charging modeled with an average power of %g kW",
				res.Vehicle.Label(), res.Trip.DistanceKm, res.Vehicle.ChargingPowerKW),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Travel speed [km/h] (constant)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total trip time [h]", Type: "value"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:      "continuous",
			Dimension: "2",
			Min:       float32(math.Floor(minC)),
			Max:       float32(math.Ceil(maxC)),
			Text:      []string{"kWh/100km"},
		}),
	)
	scatter.AddSeries("Energy consumption [kWh/100km]", data)
	return scatter.Render(w)
}

func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
