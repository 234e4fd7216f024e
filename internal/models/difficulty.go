package models

import "strings"

// Difficulty is a practice tier. Tiers are ordered EASY < MEDIUM < HARD.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// DefaultDifficulty is the tier a session starts at when none is given.
const DefaultDifficulty = Medium

var tiers = []Difficulty{Easy, Medium, Hard}

// Difficulties returns all tiers in ascending order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(tiers))
	copy(out, tiers)
	return out
}

// ParseDifficulty accepts any casing of a tier name.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	return d, d.Valid()
}

func (d Difficulty) Valid() bool {
	return d.Rank() >= 0
}

// Rank is the zero-based position of d in the tier order, or -1.
func (d Difficulty) Rank() int {
	for i, t := range tiers {
		if t == d {
			return i
		}
	}
	return -1
}

// Promote returns the next harder tier. HARD stays HARD.
func (d Difficulty) Promote() Difficulty {
	r := d.Rank()
	if r < 0 || r == len(tiers)-1 {
		return d
	}
	return tiers[r+1]
}

// Demote returns the next easier tier. EASY stays EASY.
func (d Difficulty) Demote() Difficulty {
	r := d.Rank()
	if r <= 0 {
		return d
	}
	return tiers[r-1]
}

func (d Difficulty) String() string {
	return string(d)
}
