package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/evtrip/core/metrics"
	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/infra/logger"
)

// InfluxSink writes sweep results to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSweep writes one sweep_result point.
func (s *InfluxSink) RecordSweep(ev coremetrics.SweepEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("sweep_result").
		AddTag("vehicle", ev.Vehicle).
		AddTag("run_id", ev.RunID).
		AddField("distance_km", round3(ev.DistanceKm)).
		AddField("samples", ev.Samples).
		AddField("fastest_speed_kmh", round3(ev.FastestSpeedKmh)).
		AddField("fastest_time_h", round3(ev.FastestTimeH)).
		AddField("fastest_consumption", round3(ev.FastestConsumption)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordSamples writes one speed_sample point per speed. Points are spaced one
// microsecond apart so they do not overwrite each other.
func (s *InfluxSink) RecordSamples(ev coremetrics.SweepEvent, samples []model.SpeedSample) error {
	if len(samples) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	points := make([]*write.Point, len(samples))
	for i, smp := range samples {
		points[i] = write.NewPointWithMeasurement("speed_sample").
			AddTag("vehicle", ev.Vehicle).
			AddTag("run_id", ev.RunID).
			AddTag("speed_kmh", strconv.FormatFloat(smp.SpeedKmh, 'f', -1, 64)).
			AddField("total_time_h", round3(smp.TotalTimeH)).
			AddField("consumption_kwh_per_100km", round3(smp.ConsumptionKWhPer100Km)).
			SetTime(ev.Time.Add(time.Duration(i) * time.Microsecond))
	}
	return s.writeAPI.WritePoint(ctx, points...)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
