package menu

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"covidstat.mindtree.org/internal/analysis"
	"covidstat.mindtree.org/internal/app"
	"covidstat.mindtree.org/internal/logging"
	"covidstat.mindtree.org/internal/models"
)

const (
	OptionRegions = iota + 1
	OptionSubRegions
	OptionDateRange
	OptionCompare
	OptionExit
)

const (
	promptOption       = "Please Select Option : "
	promptRegion       = "Please enter state code : "
	promptStartDate    = "Please enter Start date (yyyy-MM-dd) : "
	promptEndDate      = "Please enter End date (yyyy-MM-dd) : "
	promptFirstRegion  = "Please enter first state code : "
	promptSecondRegion = "Please enter second state code : "
)

// errInputClosed stops the session when input ends or the context is done.
var errInputClosed = errors.New("menu input closed")

// Session is one interactive menu conversation over a loaded record collection.
// It is not safe for concurrent use.
type Session struct {
	ID string

	records   []models.Record
	analyzer  analysis.Analyzer
	presenter *Presenter
	logger    *slog.Logger
	in        io.Reader

	lines   <-chan string
	readErr chan error
}

func NewSession(application *app.Application, in io.Reader, out io.Writer) *Session {
	id := uuid.NewString()
	logger := application.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		ID:        id,
		records:   application.Records,
		analyzer:  application.Analyzer,
		presenter: NewPresenter(out),
		logger:    logger.With(slog.String("session_id", id)),
		in:        in,
	}
}

// Run shows the menu until the operator exits, input ends or ctx is done.
// Report failures are shown and the menu is offered again; only a read
// error from the input is returned.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	s.lines, s.readErr = readLines(ctx, s.in)
	logging.LogOperation(s.logger, "menu_session_started", slog.Int("records", len(s.records)))

	for {
		s.presenter.Menu()
		input, err := s.ask(ctx, promptOption)
		if err != nil {
			return s.finish(start)
		}

		option, err := s.analyzer.ParseOption(input)
		if err != nil {
			s.presenter.Failure(err)
			logging.LogReportAborted(s.logger, "menu_option", err)
			continue
		}

		if option == OptionExit {
			s.presenter.Farewell()
			logging.LogOperation(s.logger, "menu_session_exited",
				slog.Duration("duration", time.Since(start)))
			return nil
		}

		if err := s.dispatch(ctx, option); errors.Is(err, errInputClosed) {
			return s.finish(start)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, option int) error {
	var (
		report string
		err    error
	)
	switch option {
	case OptionRegions:
		report = "regions"
		s.presenter.List(s.analyzer.Regions(s.records))
	case OptionSubRegions:
		report = "sub_regions"
		err = s.subRegions(ctx)
	case OptionDateRange:
		report = "confirmed_by_date"
		err = s.dateRange(ctx)
	case OptionCompare:
		report = "compare_regions"
		err = s.compare(ctx)
	default:
		s.presenter.UnknownOption(option)
		return nil
	}

	if analysis.IsValidationError(err) {
		s.presenter.Failure(err)
		logging.LogReportAborted(s.logger, report, err)
		return nil
	}
	return err
}

func (s *Session) subRegions(ctx context.Context) error {
	code, err := s.ask(ctx, promptRegion)
	if err != nil {
		return err
	}
	names, err := s.analyzer.SubRegionsFor(code, s.records)
	if err != nil {
		return err
	}
	s.presenter.List(names)
	return nil
}

func (s *Session) dateRange(ctx context.Context) error {
	start, end, err := s.askDateRange(ctx)
	if err != nil {
		return err
	}

	inRange := s.analyzer.FilterByDateRange(start, end, s.records)
	if err := s.analyzer.ValidateDateRangeResult(inRange); err != nil {
		return err
	}
	s.presenter.DateAggregate(s.analyzer.AggregateByDate(inRange))
	return nil
}

func (s *Session) compare(ctx context.Context) error {
	start, end, err := s.askDateRange(ctx)
	if err != nil {
		return err
	}

	first, err := s.ask(ctx, promptFirstRegion)
	if err != nil {
		return err
	}
	firstRecords := s.analyzer.FilterByRegion(first, s.records)
	if err := s.analyzer.ValidateRegionSelection(analysis.FieldFirstRegion, first, firstRecords); err != nil {
		return err
	}

	second, err := s.ask(ctx, promptSecondRegion)
	if err != nil {
		return err
	}
	secondRecords := s.analyzer.FilterByRegion(second, s.records)
	if err := s.analyzer.ValidateRegionSelection(analysis.FieldSecondRegion, second, secondRecords); err != nil {
		return err
	}

	comparison := s.analyzer.CompareRegions(first, second, firstRecords, secondRecords, start, end)
	if err := s.analyzer.ValidateComparison(comparison); err != nil {
		return err
	}
	s.presenter.Comparison(comparison)
	return nil
}

// askDateRange prompts for the end date only once the start date parsed.
func (s *Session) askDateRange(ctx context.Context) (time.Time, time.Time, error) {
	startInput, err := s.ask(ctx, promptStartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := s.analyzer.ParseDate(analysis.FieldStartDate, startInput)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endInput, err := s.ask(ctx, promptEndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := s.analyzer.ParseDate(analysis.FieldEndDate, endInput)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := s.analyzer.ValidateDateRange(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	s.presenter.Prompt(prompt)
	select {
	case <-ctx.Done():
		return "", errInputClosed
	case line, ok := <-s.lines:
		if !ok {
			return "", errInputClosed
		}
		return line, nil
	}
}

func (s *Session) finish(start time.Time) error {
	logging.LogOperation(s.logger, "menu_session_ended",
		slog.Duration("duration", time.Since(start)))

	select {
	case err := <-s.readErr:
		return err
	default:
		return nil
	}
}

// readLines feeds scanned lines to the session until input ends or ctx is
// done. A scanner failure is delivered on the error channel after lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			readErr <- err
		}
	}()

	return lines, readErr
}
