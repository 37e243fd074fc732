package leaderboard

import "fmt"

// Direction is the sort order a category ranks in.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// Format selects how a metric value is displayed.
type Format int

const (
	FormatPercent Format = iota
	FormatFixed
	FormatSignedFixed
	FormatCount
)

// CategoryID identifies a leaderboard category.
type CategoryID string

const (
	CategoryGOAT             CategoryID = "goat"
	CategoryWinner           CategoryID = "winner"
	CategoryPlayoffPerennial CategoryID = "playoffPerennial"
	CategoryPostseason       CategoryID = "postseason"
	CategoryMeltdown         CategoryID = "meltdown"
	CategoryBustDown         CategoryID = "bustDown"
	CategoryPodium           CategoryID = "podium"
	CategoryZeroRings        CategoryID = "zeroRings"
)

// Category describes one leaderboard: what it ranks, in which order, who may
// appear, and how the value is shown.
type Category struct {
	ID        CategoryID
	Title     string
	Subtitle  string
	Metric    Metric
	Direction Direction
	Format    Format
	Eligible  func(TeamStats) bool
	// HideRankWhenTied drops the rank label when every listed entry shares
	// the same value.
	HideRankWhenTied bool
}

// Categories returns the fixed, ordered category table.
func Categories() []Category {
	return []Category{
		{
			ID:        CategoryGOAT,
			Title:     "Mr. GOAT 🐐",
			Subtitle:  "Highest Average Final Ranking",
			Metric:    MetricAvgFinish,
			Direction: Ascending,
			Format:    FormatFixed,
		},
		{
			ID:        CategoryWinner,
			Title:     "Mr. Winner Winner Chicken Dinner 🍗",
			Subtitle:  "Highest Win Percentage",
			Metric:    MetricWinPct,
			Direction: Descending,
			Format:    FormatPercent,
		},
		{
			ID:        CategoryPlayoffPerennial,
			Title:     "Mr. Playoff Perennial 📈",
			Subtitle:  "Highest Playoff Appearance Percentage",
			Metric:    MetricPlayoffPct,
			Direction: Descending,
			Format:    FormatPercent,
			Eligible:  func(s TeamStats) bool { return s.PlayoffPct > 0.5 },
		},
		{
			ID:        CategoryPostseason,
			Title:     "Mr. Postseason 🔥",
			Subtitle:  "Best Playoff Performer",
			Metric:    MetricAvgDelta,
			Direction: Descending,
			Format:    FormatSignedFixed,
			Eligible:  func(s TeamStats) bool { return s.AvgDelta > 0 },
		},
		{
			ID:        CategoryMeltdown,
			Title:     "Mr. Meltdown 😬",
			Subtitle:  "Worst Playoff Performer",
			Metric:    MetricAvgDelta,
			Direction: Ascending,
			Format:    FormatFixed,
			Eligible:  func(s TeamStats) bool { return s.AvgDelta < 0 },
		},
		{
			ID:               CategoryBustDown,
			Title:            "Mr. Bust Down 💍",
			Subtitle:         "Most Rings",
			Metric:           MetricRings,
			Direction:        Descending,
			Format:           FormatCount,
			Eligible:         func(s TeamStats) bool { return s.Rings >= 2 },
			HideRankWhenTied: true,
		},
		{
			ID:        CategoryPodium,
			Title:     "Mr. Podium 🏆",
			Subtitle:  "Most Top 3 Finishes",
			Metric:    MetricTop3,
			Direction: Descending,
			Format:    FormatCount,
			Eligible:  func(s TeamStats) bool { return s.Top3 >= 4 },
		},
		{
			ID:               CategoryZeroRings,
			Title:            "Mr. No Clothes No Money No Hoes 🫵😹",
			Subtitle:         "Zero Rings",
			Metric:           MetricRings,
			Direction:        Descending,
			Format:           FormatCount,
			Eligible:         func(s TeamStats) bool { return s.Rings == 0 },
			HideRankWhenTied: true,
		},
	}
}

// FormatValue renders v according to f.
func FormatValue(f Format, v float64) string {
	switch f {
	case FormatPercent:
		return fmt.Sprintf("%.1f%%", v*100)
	case FormatFixed:
		return fmt.Sprintf("%.2f", v)
	case FormatSignedFixed:
		return fmt.Sprintf("+%.2f", v)
	default:
		return fmt.Sprintf("%d", int(v))
	}
}
