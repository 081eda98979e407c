package data

import "strings"

// rankDef is one step of the 15-tier rank ladder.
type rankDef struct {
	name    string
	baseHP  float64
	scaling float64 // buff scaling, 1.0 at the bottom → 1.7 at the top
}

// rankLadder is ordered lowest → highest.
var rankLadder = [...]rankDef{
	{"novice", 50, 1.00},
	{"apprentice", 80, 1.05},
	{"adept", 120, 1.10},
	{"journeyman", 170, 1.15},
	{"veteran", 230, 1.20},
	{"expert", 300, 1.25},
	{"elite", 380, 1.30},
	{"master", 470, 1.35},
	{"grandmaster", 570, 1.40},
	{"champion", 680, 1.45},
	{"hero", 800, 1.50},
	{"legend", 930, 1.55},
	{"mythic", 1070, 1.60},
	{"immortal", 1220, 1.65},
	{"divine", 1400, 1.70},
}

// NeutralRankScaling is used for an empty or unrecognized rank.
const NeutralRankScaling = 1.0

// RankCount is the number of tiers on the ladder.
const RankCount = len(rankLadder)

func findRank(rank string) (rankDef, bool) {
	rank = strings.ToLower(rank)
	for _, r := range rankLadder {
		if r.name == rank {
			return r, true
		}
	}
	return rankDef{}, false
}

// Ranks returns rank names ordered lowest → highest.
func Ranks() []string {
	out := make([]string, len(rankLadder))
	for i, r := range rankLadder {
		out[i] = r.name
	}
	return out
}

// RankBaseHP returns the base HP of rank, or fallback when rank is unknown.
func RankBaseHP(rank string, fallback float64) float64 {
	if r, ok := findRank(rank); ok {
		return r.baseHP
	}
	return fallback
}

// RankScaling returns the buff scaling multiplier for rank.
// Unknown ranks fall back to NeutralRankScaling.
func RankScaling(rank string) float64 {
	if r, ok := findRank(rank); ok {
		return r.scaling
	}
	return NeutralRankScaling
}

// RankTier returns the 0-based ladder position of rank, or -1 if unknown.
func RankTier(rank string) int {
	rank = strings.ToLower(rank)
	for i, r := range rankLadder {
		if r.name == rank {
			return i
		}
	}
	return -1
}
