// Package levels implements the experience-to-level curve.
//
// A user's level is floor(sqrt(xp)); the minimum xp to sit at level n is n^2.
// Both directions are exact at integer boundaries, so crossing a perfect
// square is the one and only way to level up.
package levels

import "math"

// LevelFromXP returns the level for an xp total: floor(sqrt(xp)).
// Negative xp (possible after an admin removes more than a user has) maps
// to level 0.
func LevelFromXP(xp int64) int64 {
	if xp <= 0 {
		return 0
	}

	lvl := int64(math.Sqrt(float64(xp)))
	// float sqrt can land one off near perfect squares; correct both ways
	for (lvl+1)*(lvl+1) <= xp {
		lvl++
	}
	for lvl*lvl > xp {
		lvl--
	}
	return lvl
}

// XPForLevel returns the minimum xp required to be at the given level: level^2.
func XPForLevel(level int64) int64 {
	if level <= 0 {
		return 0
	}
	return level * level
}

// XPToNextLevel returns how much more xp is needed to reach the next level
func XPToNextLevel(xp int64) int64 {
	return XPForLevel(LevelFromXP(xp)+1) - xp
}
