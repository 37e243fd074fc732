// Package teamsummary derives a team's career summary and the finishing
// position chart shown on its page.
package teamsummary

import (
	"fmt"
	"math"
	"strings"

	"github.com/riskibarqy/league-history/internal/domain/season"
)

// NoValue is shown wherever a figure has no denominator to divide by.
const NoValue = "-"

const ringGlyph = "💍"

// Summary is the scalar header of a team page.
type Summary struct {
	SeasonsPlayed      int
	MinYear            int
	MaxYear            int
	TotalWins          int
	TotalLosses        int
	WinPct             *int
	PlayoffAppearances int
	PlayoffPct         *int
	AvgRegFinish       *float64
	AvgPlayoffFinish   *float64
	NumRings           int
}

// Summarize computes the summary over results. Nil fields mark figures that
// cannot be computed because a count is zero.
func Summarize(results []season.TeamResult) Summary {
	out := Summary{SeasonsPlayed: len(results)}
	if len(results) == 0 {
		return out
	}

	out.MinYear, out.MaxYear = results[0].Year, results[0].Year
	var regSum, placeSum int
	for _, r := range results {
		if r.Year < out.MinYear {
			out.MinYear = r.Year
		}
		if r.Year > out.MaxYear {
			out.MaxYear = r.Year
		}
		out.TotalWins += r.WinsOrZero()
		out.TotalLosses += r.LossesOrZero()
		if r.MadePlayoffs() {
			out.PlayoffAppearances++
		}
		if r.IsChampion() {
			out.NumRings++
		}
		regSum += r.RegularSeasonRankOrZero()
		placeSum += r.PlaceOrZero()
	}

	if games := out.TotalWins + out.TotalLosses; games > 0 {
		out.WinPct = roundPercent(out.TotalWins, games)
	}
	out.PlayoffPct = roundPercent(out.PlayoffAppearances, out.SeasonsPlayed)

	n := float64(out.SeasonsPlayed)
	avgReg := float64(regSum) / n
	avgPlace := float64(placeSum) / n
	out.AvgRegFinish = &avgReg
	out.AvgPlayoffFinish = &avgPlace

	return out
}

func (s Summary) WinPctDisplay() string {
	return formatPercent(s.WinPct)
}

func (s Summary) PlayoffPctDisplay() string {
	return formatPercent(s.PlayoffPct)
}

func (s Summary) AvgRegFinishDisplay() string {
	return formatAverage(s.AvgRegFinish)
}

func (s Summary) AvgPlayoffFinishDisplay() string {
	return formatAverage(s.AvgPlayoffFinish)
}

// Rings repeats the ring glyph once per championship.
func (s Summary) Rings() string {
	return strings.Repeat(ringGlyph, s.NumRings)
}

// YearSpan renders "2019-2024", a single year, or NoValue without seasons.
func (s Summary) YearSpan() string {
	switch {
	case s.SeasonsPlayed == 0:
		return NoValue
	case s.MinYear == s.MaxYear:
		return fmt.Sprintf("%d", s.MinYear)
	default:
		return fmt.Sprintf("%d-%d", s.MinYear, s.MaxYear)
	}
}

func roundPercent(part, whole int) *int {
	if whole == 0 {
		return nil
	}
	v := int(math.Round(float64(part) / float64(whole) * 100))
	return &v
}

func formatPercent(v *int) string {
	if v == nil {
		return NoValue
	}
	return fmt.Sprintf("%d%%", *v)
}

func formatAverage(v *float64) string {
	if v == nil {
		return NoValue
	}
	return fmt.Sprintf("%.2f", *v)
}
