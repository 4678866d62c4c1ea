package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankForDives(t *testing.T) {
	tests := []struct {
		name       string
		totalDives int
		expected   Rank
	}{
		{"zero dives", 0, RankRookie},
		{"just below iron", 9, RankRookie},
		{"iron threshold", 10, RankIron},
		{"bronze threshold", 25, RankBronze},
		{"silver threshold", 50, RankSilver},
		{"gold threshold", 100, RankGold},
		{"platinum threshold", 200, RankPlatinum},
		{"emerald threshold", 500, RankEmerald},
		{"diamond threshold", 1000, RankDiamond},
		{"beyond diamond", 4242, RankDiamond},
		{"between thresholds", 137, RankGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RankForDives(tt.totalDives))
		})
	}
}

func TestDiverRankDerivedFromTotalDives(t *testing.T) {
	diver := &Diver{TotalDives: 3}
	assert.Equal(t, RankRookie, diver.Rank())

	diver.TotalDives = 10
	assert.Equal(t, RankIron, diver.Rank())
}
