package analysis

import (
	"time"

	"covidstat.mindtree.org/internal/models"
)

// Analyzer is the full set of query operations over a loaded record collection.
type Analyzer interface {
	Regions(records []models.Record) []string
	SubRegions(records []models.Record) []string
	FilterByRegion(code string, records []models.Record) []models.Record
	FilterByDateRange(start, end time.Time, records []models.Record) []models.Record
	AggregateByDate(records []models.Record) *models.DateAggregate
	CompareRegions(first, second string, firstRecords, secondRecords []models.Record, start, end time.Time) *models.Comparison

	ParseOption(input string) (int, error)
	ParseDate(field Field, input string) (time.Time, error)
	ParseDateRange(startInput, endInput string) (time.Time, time.Time, error)
	ValidateDateRange(start, end time.Time) error
	ValidateRegionSelection(field Field, code string, records []models.Record) error
	ValidateDateRangeResult(records []models.Record) error
	ValidateComparison(comparison *models.Comparison) error

	SubRegionsFor(code string, records []models.Record) ([]string, error)
	DateRangeReport(records []models.Record, start, end time.Time) (*models.DateAggregate, error)
	CompareReport(records []models.Record, first, second string, start, end time.Time) (*models.Comparison, error)
}

// Engine is the Analyzer implementation. It holds no state; every call
// reads only the records it is given.
type Engine struct{}

var _ Analyzer = (*Engine)(nil)

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Regions(records []models.Record) []string {
	return Regions(records)
}

func (e *Engine) SubRegions(records []models.Record) []string {
	return SubRegions(records)
}

func (e *Engine) FilterByRegion(code string, records []models.Record) []models.Record {
	return FilterByRegion(code, records)
}

func (e *Engine) FilterByDateRange(start, end time.Time, records []models.Record) []models.Record {
	return FilterByDateRange(start, end, records)
}

func (e *Engine) AggregateByDate(records []models.Record) *models.DateAggregate {
	return AggregateByDate(records)
}

func (e *Engine) CompareRegions(first, second string, firstRecords, secondRecords []models.Record, start, end time.Time) *models.Comparison {
	return CompareRegions(first, second, firstRecords, secondRecords, start, end)
}

func (e *Engine) ParseOption(input string) (int, error) {
	return ParseOption(input)
}

func (e *Engine) ParseDate(field Field, input string) (time.Time, error) {
	return ParseDate(field, input)
}

// ParseDateRange parses both bounds and checks their order, stopping at the
// first failure.
func (e *Engine) ParseDateRange(startInput, endInput string) (time.Time, time.Time, error) {
	start, err := ParseDate(FieldStartDate, startInput)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(FieldEndDate, endInput)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := ValidateDateRange(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (e *Engine) ValidateDateRange(start, end time.Time) error {
	return ValidateDateRange(start, end)
}

func (e *Engine) ValidateRegionSelection(field Field, code string, records []models.Record) error {
	return ValidateRegionSelection(field, code, records)
}

func (e *Engine) ValidateDateRangeResult(records []models.Record) error {
	return ValidateDateRangeResult(records)
}

func (e *Engine) ValidateComparison(comparison *models.Comparison) error {
	return ValidateComparison(comparison)
}

// SubRegionsFor lists the sub-regions of one region.
func (e *Engine) SubRegionsFor(code string, records []models.Record) ([]string, error) {
	selected := FilterByRegion(code, records)
	if err := ValidateRegionSelection(FieldRegion, code, selected); err != nil {
		return nil, err
	}
	return SubRegions(selected), nil
}

// DateRangeReport filters to (start, end) and sums confirmed per date and region.
func (e *Engine) DateRangeReport(records []models.Record, start, end time.Time) (*models.DateAggregate, error) {
	if err := ValidateDateRange(start, end); err != nil {
		return nil, err
	}
	inRange := FilterByDateRange(start, end, records)
	if err := ValidateDateRangeResult(inRange); err != nil {
		return nil, err
	}
	agg := AggregateByDate(inRange)
	if err := ValidateDateAggregate(agg); err != nil {
		return nil, err
	}
	return agg, nil
}

// CompareReport selects both regions and merges their series over (start, end).
func (e *Engine) CompareReport(records []models.Record, first, second string, start, end time.Time) (*models.Comparison, error) {
	if err := ValidateDateRange(start, end); err != nil {
		return nil, err
	}
	firstRecords := FilterByRegion(first, records)
	if err := ValidateRegionSelection(FieldFirstRegion, first, firstRecords); err != nil {
		return nil, err
	}
	secondRecords := FilterByRegion(second, records)
	if err := ValidateRegionSelection(FieldSecondRegion, second, secondRecords); err != nil {
		return nil, err
	}
	comparison := CompareRegions(first, second, firstRecords, secondRecords, start, end)
	if err := ValidateComparison(comparison); err != nil {
		return nil, err
	}
	return comparison, nil
}
