package teamsummary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/league-history/internal/domain/season"
)

// Chart geometry. Rank 1 sits at the top padding line, MaxRank at the bottom.
const (
	ChartWidth   = 600.0
	ChartHeight  = 300.0
	ChartPadding = 40.0
	MinRank      = 1
	MaxRank      = 12
)

// Filter restricts the chart to one league type.
type Filter string

const (
	FilterBoth    Filter = "both"
	FilterDynasty Filter = "dynasty"
	FilterRedraft Filter = "redraft"
)

// ParseFilter accepts "", "both", "dynasty" or "redraft" in any case.
func ParseFilter(raw string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FilterBoth:
		return FilterBoth, nil
	case FilterDynasty:
		return FilterDynasty, nil
	case FilterRedraft:
		return FilterRedraft, nil
	default:
		return "", fmt.Errorf("unknown league filter %q", raw)
	}
}

// AllFilters lists every filter a team page can be rendered with.
func AllFilters() []Filter {
	return []Filter{FilterBoth, FilterDynasty, FilterRedraft}
}

func (f Filter) matches(l season.LeagueType) bool {
	if f == FilterBoth || f == "" {
		return true
	}
	return string(f) == string(l)
}

// EmptyMessage is the text shown when the filter leaves nothing to plot.
func (f Filter) EmptyMessage() string {
	if f == FilterBoth || f == "" {
		return "No seasons to display."
	}
	return fmt.Sprintf("No %s seasons to display.", season.LeagueType(f).Title())
}

// Point is one plotted season.
type Point struct {
	X      float64
	Y      float64
	Place  int
	Year   int
	League season.LeagueType
}

// Chart is the finishing-position line chart for one filter.
type Chart struct {
	Filter       Filter
	Points       []Point
	Empty        bool
	EmptyMessage string
}

// BuildChart filters, orders and clamps results, then maps them onto the
// chart area. results is not modified.
func BuildChart(results []season.TeamResult, filter Filter) Chart {
	selected := make([]season.TeamResult, 0, len(results))
	for _, r := range results {
		if filter.matches(r.League) {
			selected = append(selected, r)
		}
	}
	if len(selected) == 0 {
		return Chart{Filter: filter, Empty: true, EmptyMessage: filter.EmptyMessage()}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Year != selected[j].Year {
			return selected[i].Year < selected[j].Year
		}
		return leagueOrder(selected[i].League) < leagueOrder(selected[j].League)
	})

	points := make([]Point, 0, len(selected))
	for i, r := range selected {
		place := ClampPlace(r.Place)
		points = append(points, Point{
			X:      xAt(i, len(selected)),
			Y:      yFor(place),
			Place:  place,
			Year:   r.Year,
			League: r.League,
		})
	}

	return Chart{Filter: filter, Points: points}
}

// ClampPlace maps a finish onto [MinRank, MaxRank]. Unrecorded finishes plot
// at the bottom.
func ClampPlace(place *int) int {
	if place == nil || *place > MaxRank {
		return MaxRank
	}
	if *place < MinRank {
		return MinRank
	}
	return *place
}

func leagueOrder(l season.LeagueType) int {
	if l == season.LeagueRedraft {
		return 0
	}
	return 1
}

func xAt(i, count int) float64 {
	if count <= 1 {
		return ChartWidth / 2
	}
	step := (ChartWidth - 2*ChartPadding) / float64(count-1)
	return ChartPadding + float64(i)*step
}

func yFor(place int) float64 {
	span := ChartHeight - 2*ChartPadding
	return ChartPadding + float64(place-MinRank)/float64(MaxRank-MinRank)*span
}
