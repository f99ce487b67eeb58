package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/evtrip/core/sweep"
)

// Format names an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the HTTP content type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}

// Write exports res to w in format f.
func Write(w io.Writer, f Format, res sweep.Result) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatHTML:
		return WriteHTML(w, res)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// WriteJSON writes the full result, unrounded, in JSON format.
func WriteJSON(w io.Writer, res sweep.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes one row per sample. Values are written at full precision.
func WriteCSV(w io.Writer, res sweep.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"speed_kmh", "total_time_h", "consumption_kwh_per_100km"}); err != nil {
		return err
	}
	for _, s := range res.Samples {
		rec := []string{
			strconv.FormatFloat(s.SpeedKmh, 'f', -1, 64),
			strconv.FormatFloat(s.TotalTimeH, 'f', -1, 64),
			strconv.FormatFloat(s.ConsumptionKWhPer100Km, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
