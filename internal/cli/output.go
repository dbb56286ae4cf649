package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Player:
		_, _ = fmt.Fprintf(o.w, "Added player: %s\n", v.Name)
	case Score:
		o.printScore(v)
	case Total:
		o.printTotal(v)
	case Standings:
		o.printStandings(v)
	case CategoryList:
		o.printCategories(v)
	case HealthResult:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Category response type (matches API)
type Category struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Section string `json:"section"`
}

// CategoryList is the categories listing
type CategoryList []Category

// Player response type
type Player struct {
	Name string `json:"name"`
}

// PlayerScorecard response type; nil values are unset cells
type PlayerScorecard struct {
	Player string          `json:"player"`
	Scores map[string]*int `json:"scores"`
	Total  int             `json:"total"`
}

// Session response type
type Session struct {
	Code       string            `json:"code"`
	Phase      string            `json:"phase"`
	Players    []Player          `json:"players"`
	Scorecards []PlayerScorecard `json:"scorecards"`
}

// Score response type
type Score struct {
	Player   string `json:"player"`
	Category string `json:"category"`
	Value    *int   `json:"value"`
}

// Total response type
type Total struct {
	Player string `json:"player"`
	Total  int    `json:"total"`
	Upper  int    `json:"upper"`
	Lower  int    `json:"lower"`
}

// Standing response type
type Standing struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Total  int    `json:"total"`
}

// Standings response type
type Standings struct {
	Standings []Standing `json:"standings"`
	Leader    *string    `json:"leader"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func cellText(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func (o *Output) printSession(s Session) {
	_, _ = fmt.Fprintf(o.w, "Session: %s\n", s.Code)
	_, _ = fmt.Fprintf(o.w, "Phase: %s\n", s.Phase)

	names := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		names = append(names, p.Name)
	}
	_, _ = fmt.Fprintf(o.w, "Players (%d): %s\n", len(names), strings.Join(names, ", "))

	if s.Phase != string(model.PhaseInProgress) || len(s.Scorecards) == 0 {
		return
	}

	_, _ = fmt.Fprintln(o.w)
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Category\t%s\n", strings.Join(names, "\t"))

	for _, c := range model.Categories() {
		row := make([]string, 0, len(s.Scorecards))
		for _, card := range s.Scorecards {
			row = append(row, cellText(card.Scores[string(c)]))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", c.DisplayName(), strings.Join(row, "\t"))
	}

	totals := make([]string, 0, len(s.Scorecards))
	for _, card := range s.Scorecards {
		totals = append(totals, strconv.Itoa(card.Total))
	}
	_, _ = fmt.Fprintf(tw, "Total\t%s\n", strings.Join(totals, "\t"))
	_ = tw.Flush()
}

func (o *Output) printScore(s Score) {
	_, _ = fmt.Fprintf(o.w, "%s / %s: %s\n", s.Player, s.Category, cellText(s.Value))
}

func (o *Output) printTotal(t Total) {
	_, _ = fmt.Fprintf(o.w, "%s: %d (upper %d, lower %d)\n", t.Player, t.Total, t.Upper, t.Lower)
}

func (o *Output) printStandings(s Standings) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Rank\tPlayer\tTotal")
	for _, st := range s.Standings {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\n", st.Rank, st.Player, st.Total)
	}
	_ = tw.Flush()

	if s.Leader != nil {
		_, _ = fmt.Fprintf(o.w, "Leader: %s\n", *s.Leader)
	}
}

func (o *Output) printCategories(cats CategoryList) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Slug\tName\tSection")
	for _, c := range cats {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Slug, c.Name, c.Section)
	}
	_ = tw.Flush()
}
