package sweep

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kilianp07/evtrip/app"
	"github.com/kilianp07/evtrip/core/model"
	coresweep "github.com/kilianp07/evtrip/core/sweep"
	"github.com/kilianp07/evtrip/pkg/export"
)

// Sweeper runs a sweep for a scenario.
type Sweeper interface {
	Scenario() app.Scenario
	SweepScenario(ctx context.Context, sc app.Scenario) (coresweep.Result, error)
}

// NewHandler returns an HTTP handler evaluating the configured scenario via
// GET /api/sweep. Query parameters override the scenario: min, max, step,
// distance_km, penalty_h, soc_start, soc_end and format (json, csv, html).
func NewHandler(svc Sweeper) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		format := export.FormatJSON
		if f := q.Get("format"); f != "" {
			parsed, err := export.ParseFormat(f)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			format = parsed
		}
		sc, err := applyOverrides(svc.Scenario(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := svc.SweepScenario(r.Context(), sc)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, model.ErrInvalidInput) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}
		var buf bytes.Buffer
		if err := export.Write(&buf, format, res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		_, _ = buf.WriteTo(w)
	})
}

func applyOverrides(sc app.Scenario, q url.Values) (app.Scenario, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{"min", &sc.Range.MinKmh},
		{"max", &sc.Range.MaxKmh},
		{"step", &sc.Range.StepKmh},
	}
	for _, p := range ints {
		if s := q.Get(p.key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return sc, fmt.Errorf("%s: %w", p.key, err)
			}
			*p.dst = n
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"distance_km", &sc.Trip.DistanceKm},
		{"penalty_h", &sc.Trip.ChargingPenaltyH},
		{"soc_start", &sc.Trip.SoCStart},
		{"soc_end", &sc.Trip.SoCEnd},
	}
	for _, p := range floats {
		if s := q.Get(p.key); s != "" {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return sc, fmt.Errorf("%s: %w", p.key, err)
			}
			*p.dst = f
		}
	}
	return sc, nil
}
