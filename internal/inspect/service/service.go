package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rtn/internal/inspect/models"
	pstrings "rtn/pkg/platform/strings"
	"rtn/pkg/routing"
)

const tracerName = "rtn/internal/inspect"

// Rejection codes reported on Inspection.Code and as metric labels.
const (
	CodeInvalidInput         = "invalid_input"
	CodeInvalidFormat        = "invalid_format"
	CodeInvalidRoutingSymbol = "invalid_routing_symbol"
	CodeCheckDigitMismatch   = "check_digit_mismatch"
	CodeUnknown              = "unknown"
)

// Metrics records inspection outcomes.
type Metrics interface {
	IncrementAccepted(form string)
	IncrementRejected(form, code string)
}

// Service inspects routing numbers for callers that want a report rather
// than a Go error per value.
type Service struct {
	metrics Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func New(opts ...Option) *Service {
	svc := &Service{
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Inspect parses input in the requested form. A rejected input is not an
// error: it is reported with Valid=false. The only error is an unknown form.
func (s *Service) Inspect(ctx context.Context, input string, form models.Form) (models.Inspection, error) {
	ctx, span := s.tracer.Start(ctx, "rtn.inspect", trace.WithAttributes(
		attribute.String("rtn.form.requested", form.String()),
	))
	defer span.End()

	resolved, parse, err := resolveForm(input, form)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return models.Inspection{}, err
	}
	span.SetAttributes(attribute.String("rtn.form", resolved.String()))

	rn, err := parse(input)
	if err != nil {
		code := RejectionCode(err)
		span.SetAttributes(
			attribute.Bool("rtn.valid", false),
			attribute.String("rtn.rejection", code),
		)
		s.logger.InfoContext(ctx, "routing number rejected",
			"input", input,
			"form", resolved,
			"code", code,
			"reason", err.Error(),
		)
		if s.metrics != nil {
			s.metrics.IncrementRejected(resolved.String(), code)
		}
		return models.Rejected(input, resolved, code, err.Error()), nil
	}

	span.SetAttributes(
		attribute.Bool("rtn.valid", true),
		attribute.String("rtn.fed_reserve_type", rn.FederalReserveType().String()),
	)
	s.logger.DebugContext(ctx, "routing number accepted",
		"micr", rn.MICR(),
		"form", resolved,
		"fed_reserve_type", rn.FederalReserveType(),
	)
	if s.metrics != nil {
		s.metrics.IncrementAccepted(resolved.String())
	}
	return models.Accepted(input, resolved, rn), nil
}

// InspectAll inspects each distinct, trimmed input in order. It stops at
// the first cancelled context and returns what it has so far.
func (s *Service) InspectAll(ctx context.Context, inputs []string, form models.Form) ([]models.Inspection, error) {
	if _, err := models.ParseForm(form.String()); err != nil {
		return nil, err
	}

	values := pstrings.UniqueTrimmed(inputs)
	results := make([]models.Inspection, 0, len(values))
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("inspection cancelled: %w", err)
		}
		res, err := s.Inspect(ctx, v, form)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	s.logger.DebugContext(ctx, "inspection finished", "summary", models.Summarize(results))
	return results, nil
}

// RejectionCode maps a parse error to its rejection code.
func RejectionCode(err error) string {
	switch {
	case errors.Is(err, routing.ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, routing.ErrInvalidFormat):
		return CodeInvalidFormat
	case errors.Is(err, routing.ErrInvalidRoutingSymbol):
		return CodeInvalidRoutingSymbol
	case errors.Is(err, routing.ErrCheckDigitMismatch):
		return CodeCheckDigitMismatch
	default:
		return CodeUnknown
	}
}

func resolveForm(input string, form models.Form) (models.Form, func(string) (routing.RoutingNumber, error), error) {
	switch form {
	case models.FormMICR:
		return models.FormMICR, routing.ParseMICR, nil
	case models.FormFraction:
		return models.FormFraction, routing.ParseFraction, nil
	case models.FormAuto, "":
		if strings.Contains(input, "/") {
			return models.FormFraction, routing.ParseFraction, nil
		}
		return models.FormMICR, routing.ParseMICR, nil
	default:
		return "", nil, fmt.Errorf("unknown form %q", form)
	}
}
