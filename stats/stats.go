package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/der-antikeks/nightcity/stats"

// weight of the newest sample in the smoothed fps
const ratio = 0.01

func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Frames smooths the frame rate, logs it periodically and records
// frame durations.
type Frames struct {
	log      zerolog.Logger
	interval time.Duration

	fps     float64
	elapsed time.Duration
	frames  int64

	duration metric.Float64Histogram
	count    metric.Int64Counter
}

func New(log zerolog.Logger, interval time.Duration, m metric.Meter, initialFps float64) (*Frames, error) {
	f := &Frames{
		log:      log,
		interval: interval,
		fps:      initialFps,
	}

	var err error
	f.duration, err = m.Float64Histogram(
		"frame.duration",
		metric.WithDescription("Time between two rendered frames"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame duration histogram: %w", err)
	}

	f.count, err = m.Int64Counter(
		"frame.count",
		metric.WithDescription("Total frames rendered"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame counter: %w", err)
	}

	return f, nil
}

func (f *Frames) Update(delta time.Duration) error {
	ctx := context.Background()
	f.frames++
	f.count.Add(ctx, 1)

	ds := delta.Seconds()
	if ds <= 0 {
		return nil
	}

	f.duration.Record(ctx, ds)
	f.fps = f.fps*(1-ratio) + (1.0/ds)*ratio

	f.elapsed += delta
	if f.elapsed >= f.interval {
		f.elapsed = 0
		f.log.Info().
			Float64("fps", f.fps).
			Int64("frames", f.frames).
			Msg("frame stats")
	}

	return nil
}

func (f *Frames) FPS() float64 {
	return f.fps
}

func (f *Frames) Frames() int64 {
	return f.frames
}
