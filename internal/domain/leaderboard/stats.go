package leaderboard

import "github.com/riskibarqy/league-history/internal/domain/season"

// Metric names a per-team statistic a category ranks by.
type Metric string

const (
	MetricWinPct     Metric = "winPct"
	MetricPlayoffPct Metric = "playoffPct"
	MetricAvgFinish  Metric = "avgFinish"
	MetricAvgReg     Metric = "avgReg"
	MetricAvgDelta   Metric = "avgDelta"
	MetricRings      Metric = "rings"
	MetricTop3       Metric = "top3"
	MetricBestReg    Metric = "bestReg"
)

// TeamStats holds the aggregate metrics for one eligible team.
type TeamStats struct {
	TeamID     string
	Owner      string
	Seasons    int
	WinPct     float64
	PlayoffPct float64
	AvgFinish  float64
	AvgReg     float64
	AvgDelta   float64
	Rings      int
	Top3       int
	BestReg    float64
}

// Value returns the metric as a float for sorting and filtering.
func (s TeamStats) Value(m Metric) float64 {
	switch m {
	case MetricWinPct:
		return s.WinPct
	case MetricPlayoffPct:
		return s.PlayoffPct
	case MetricAvgFinish:
		return s.AvgFinish
	case MetricAvgReg:
		return s.AvgReg
	case MetricAvgDelta:
		return s.AvgDelta
	case MetricRings:
		return float64(s.Rings)
	case MetricTop3:
		return float64(s.Top3)
	case MetricBestReg:
		return s.BestReg
	default:
		return 0
	}
}

// ComputeStats aggregates a team's results. Missing numbers count as 0 and
// records are never skipped, so every mean divides by len(results).
func ComputeStats(teamID, owner string, results []season.TeamResult) TeamStats {
	out := TeamStats{TeamID: teamID, Owner: owner, Seasons: len(results)}
	if len(results) == 0 {
		return out
	}

	var winSum, finishSum, regSum, deltaSum float64
	playoffs := 0
	for _, r := range results {
		ratio := r.WinRatio()
		winSum += ratio
		if r.Games() > 0 && ratio > out.BestReg {
			out.BestReg = ratio
		}
		if r.MadePlayoffs() {
			playoffs++
		}
		finishSum += float64(r.PlaceOrZero())
		regSum += float64(r.RegularSeasonRankOrZero())
		deltaSum += float64(r.PlayoffDelta())
		if r.IsChampion() {
			out.Rings++
		}
		if r.IsTopThree() {
			out.Top3++
		}
	}

	n := float64(len(results))
	out.WinPct = winSum / n
	out.PlayoffPct = float64(playoffs) / n
	out.AvgFinish = finishSum / n
	out.AvgReg = regSum / n
	out.AvgDelta = deltaSum / n

	return out
}

// IsEligible reports whether a team with resultCount results may be ranked
// when the history holds totalSeasons seasons.
func IsEligible(resultCount, totalSeasons int) bool {
	if resultCount == 0 {
		return false
	}
	return 2*resultCount >= totalSeasons
}
