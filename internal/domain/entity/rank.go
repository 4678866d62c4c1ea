// Package entity contains the core business objects of the project.
package entity

// Rank is a display label derived purely from a diver's total dive count.
// It is never stored; RankForDives recomputes it on every read.
type Rank string

const (
	RankRookie   Rank = "Rookie Diver"
	RankIron     Rank = "Iron Diver"
	RankBronze   Rank = "Bronze Diver"
	RankSilver   Rank = "Silver Diver"
	RankGold     Rank = "Gold Diver"
	RankPlatinum Rank = "Platinum Diver"
	RankEmerald  Rank = "Emerald Diver"
	RankDiamond  Rank = "Diamond Diver"
)

// rankThresholds maps inclusive lower bounds to ranks, ordered highest
// first so the first threshold not exceeding the count wins.
var rankThresholds = []struct {
	minDives int
	rank     Rank
}{
	{1000, RankDiamond},
	{500, RankEmerald},
	{200, RankPlatinum},
	{100, RankGold},
	{50, RankSilver},
	{25, RankBronze},
	{10, RankIron},
}

// String returns the display name of the rank, e.g. "Gold Diver".
func (r Rank) String() string {
	return string(r)
}

// RankForDives determines the rank for a total dive count.
func RankForDives(totalDives int) Rank {
	for _, threshold := range rankThresholds {
		if totalDives >= threshold.minDives {
			return threshold.rank
		}
	}

	return RankRookie
}
