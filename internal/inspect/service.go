// Package inspect parses batches of calendar texts and describes calendar
// years for the chrono CLI.
package inspect

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"chrono/internal/platform/metrics"
	"chrono/pkg/datetime"
	dErrors "chrono/pkg/domain-errors"
)

const defaultWorkers = 4

// Outcome is the result of parsing one input text. Canonical is set when Err
// is nil.
type Outcome struct {
	Input     string
	Kind      Kind
	Canonical string
	Err       error
}

func (o Outcome) OK() bool { return o.Err == nil }

// Today describes the current date in a zone.
type Today struct {
	Zone      string
	Date      datetime.LocalDate
	YearMonth datetime.YearMonth
	Weekday   time.Weekday
}

// MonthRow describes one month of a year.
type MonthRow struct {
	YearMonth      datetime.YearMonth
	Days           int
	FirstWeekday   time.Weekday
	FirstDayOfYear int
}

// Service fans parse work out over a bounded number of goroutines.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	clock   datetime.Clock
	workers int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(clock datetime.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithWorkers bounds the number of texts parsed at once. Values below one
// are ignored.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger:  slog.Default(),
		clock:   datetime.SystemClock(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse parses every text as kind. Outcomes keep the order of texts; a text
// that fails to parse is reported in its Outcome, not as an error.
//
// Errors: CodeInvalidInput for an unknown kind, or the context error when ctx
// ends before the batch completes.
func (s *Service) Parse(ctx context.Context, kind Kind, texts []string) ([]Outcome, error) {
	parse, ok := parsers[kind]
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown kind %q", kind)
	}

	outcomes := make([]Outcome, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.parseOne(kind, parse, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := lo.CountBy(outcomes, func(o Outcome) bool { return !o.OK() })
	s.logger.Info("batch parsed", "kind", kind, "texts", len(texts), "failed", failed)
	if s.metrics != nil {
		s.metrics.IncrementBatches()
	}
	return outcomes, nil
}

func (s *Service) parseOne(kind Kind, parse parseFunc, text string) Outcome {
	out := Outcome{Input: text, Kind: kind}
	value, err := parse(text)
	if err != nil {
		out.Err = err
		s.logger.Debug("parse failed", "kind", kind, "text", text, "error", err)
	} else {
		out.Canonical = value.String()
	}
	if s.metrics != nil {
		s.metrics.ObserveParse(string(kind), outcomeLabel(err))
	}
	return out
}

func outcomeLabel(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	if code := dErrors.CodeOf(err); code != "" {
		return string(code)
	}
	return "error"
}

// Today reads the service clock and returns the date in zone.
func (s *Service) Today(zone datetime.TimeZone) (Today, error) {
	d, err := datetime.LocalDateNow(zone, s.clock)
	if err != nil {
		return Today{}, err
	}
	return Today{
		Zone:      zone.ID(),
		Date:      d,
		YearMonth: d.YearMonth(),
		Weekday:   d.DayOfWeek(),
	}, nil
}

// Months describes the twelve months of year.
//
// Errors: CodeCalendarRange when year is out of range.
func (s *Service) Months(year int) ([]MonthRow, error) {
	y, err := datetime.YearOf(year)
	if err != nil {
		return nil, err
	}
	return lo.Map(lo.RangeFrom(1, 12), func(month int, _ int) MonthRow {
		ym := lo.Must(y.AtMonth(month))
		first := lo.Must(ym.AtDay(1))
		return MonthRow{
			YearMonth:      ym,
			Days:           ym.LengthOfMonth(),
			FirstWeekday:   first.DayOfWeek(),
			FirstDayOfYear: first.DayOfYear(),
		}
	}), nil
}
