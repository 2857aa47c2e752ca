package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/drills/internal/config"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/logging"
	"github.com/agbru/drills/internal/metrics"
)

const tracerName = "github.com/agbru/drills/internal/cli"

// Env carries the streams and services shared by every command.
type Env struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Config  config.AppConfig
	Inputs  config.Inputs
	Factory fibonacci.CalculatorFactory
	Logger  logging.Logger
	Metrics *metrics.Recorder
	Version string

	// TracerProvider supplies the tracer for exercise spans. It defaults to
	// the global provider; --trace replaces it with a stdout exporter.
	TracerProvider trace.TracerProvider
	Tracer         trace.Tracer

	closers []func(context.Context) error
}

// NewEnv returns an Env with default configuration and services.
func NewEnv(in io.Reader, out, errOut io.Writer, version string) *Env {
	return &Env{
		In:      in,
		Out:     out,
		Err:     errOut,
		Config:  config.Default(),
		Factory: fibonacci.NewDefaultFactory(),
		Logger:  logging.NewLogger(io.Discard, "drills"),
		Metrics: metrics.NewRecorder(),
		Version: version,

		TracerProvider: otel.GetTracerProvider(),
		Tracer:         otel.Tracer(tracerName),
	}
}

// setupTracing installs a span exporter writing to Err when tracing is
// enabled, then resolves the tracer.
func (e *Env) setupTracing() error {
	if e.Config.Trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(e.Err), stdouttrace.WithPrettyPrint())
		if err != nil {
			return apperrors.WrapError(err, "creating trace exporter")
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		e.TracerProvider = tp
		e.closers = append(e.closers, tp.Shutdown)
	}
	e.Tracer = e.TracerProvider.Tracer(tracerName)
	return nil
}

// Close flushes and releases what the run set up.
func (e *Env) Close(ctx context.Context) error {
	var errs []error
	for _, c := range e.closers {
		errs = append(errs, c(ctx))
	}
	e.closers = nil
	return errors.Join(errs...)
}

// track runs one exercise inside a span, logging and recording its outcome.
func (e *Env) track(ctx context.Context, exercise string, run func(ctx context.Context) error) error {
	ctx, span := e.Tracer.Start(ctx, "exercise."+exercise, trace.WithAttributes(attribute.String("exercise", exercise)))
	defer span.End()

	start := time.Now()
	err := run(ctx)
	elapsed := time.Since(start)

	e.Metrics.ObserveRun(exercise, elapsed, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		var pe *apperrors.ParseError
		if errors.As(err, &pe) {
			e.Metrics.InputError(pe.Field)
		}
		e.Logger.Debug("exercise failed", logging.Err(err), logging.String("exercise", exercise), logging.Duration("elapsed", elapsed))
		return err
	}
	e.Logger.Debug("exercise done", logging.String("exercise", exercise), logging.Duration("elapsed", elapsed))
	return nil
}
