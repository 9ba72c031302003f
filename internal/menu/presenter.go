package menu

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"covidstat.mindtree.org/internal/models"
)

const menuRule = "****************************************"

var menuOptions = []string{
	"1. Get States Name.",
	"2. Get District name for given states.",
	"3. Display Data by state with in date range.",
	"4. Display Confirmed cases by comparing two states for a given date range.",
	"5. Exit",
}

// Presenter renders menu text and report tables to an operator terminal.
type Presenter struct {
	out     io.Writer
	rule    *color.Color
	failure *color.Color
	notice  *color.Color
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:     out,
		rule:    color.New(color.FgCyan),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgGreen, color.Bold),
	}
}

func (p *Presenter) Menu() {
	_, _ = p.rule.Fprintln(p.out, menuRule)
	for _, option := range menuOptions {
		_, _ = fmt.Fprintln(p.out, option)
	}
}

func (p *Presenter) Prompt(text string) {
	_, _ = fmt.Fprint(p.out, text)
}

// List prints one value per line.
func (p *Presenter) List(values []string) {
	for _, v := range values {
		_, _ = fmt.Fprintln(p.out, v)
	}
}

// Failure shows the operator-facing message of err.
func (p *Presenter) Failure(err error) {
	_, _ = p.failure.Fprintln(p.out, err.Error())
}

func (p *Presenter) UnknownOption(option int) {
	_, _ = p.failure.Fprintf(p.out, "No option found with : %d\n", option)
}

func (p *Presenter) Farewell() {
	_, _ = p.notice.Fprintln(p.out, "Thank You!")
}

// DateAggregate renders one row per (date, region) in aggregation order.
func (p *Presenter) DateAggregate(agg *models.DateAggregate) {
	table := p.newTable([]string{"Date", "State", "Confirmed total"})
	for _, row := range agg.Rows() {
		table.Append([]string{row.Date, row.Region, strconv.Itoa(row.Confirmed)})
	}
	table.Render()
}

// Comparison renders one row per date in comparison key order.
func (p *Presenter) Comparison(comparison *models.Comparison) {
	table := p.newTable([]string{
		"Date",
		"First state",
		"First state confirmed total",
		"Second state",
		"Second state confirmed total",
	})
	for _, row := range comparison.Rows() {
		table.Append([]string{
			row.Date,
			row.FirstRegion,
			strconv.Itoa(row.FirstConfirmed),
			row.SecondRegion,
			strconv.Itoa(row.SecondConfirmed),
		})
	}
	table.Render()
}

func (p *Presenter) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
