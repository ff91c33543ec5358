package stats

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Setup installs the global meter provider. Without export the global
// no-op provider stays in place. With export the instruments are
// collected every interval and written to w as JSON.
// The returned function flushes and stops the provider.
func Setup(export bool, w io.Writer, interval time.Duration) (func(context.Context) error, error) {
	if !export {
		return func(context.Context) error { return nil }, nil
	}

	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}
