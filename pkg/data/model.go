package data

import (
	"math"
	"strconv"
)

type Champion struct {
	ID      int
	Key     string
	Name    string
	Title   string
	Blurb   string
	Partype string // resource bar: "Mana", "Energy", ...
	Image   Image
	Tags    []string
	Stats   Stats
}

// Image holds absolute URLs for the square icon and the loading-screen art.
type Image struct {
	Full    string
	Loading string
}

type Stats struct {
	HP           float64
	AttackDamage float64
	Armor        float64
	SpellBlock   float64
	MoveSpeed    float64
	AttackRange  float64
}

// FindChampion returns the champion with the given id, or nil.
func FindChampion(champions []Champion, id int) *Champion {
	for i := range champions {
		if champions[i].ID == id {
			return &champions[i]
		}
	}
	return nil
}

type StatRow struct {
	Label string
	Value string
}

// Rows returns the base stats in display order.
func (s Stats) Rows() []StatRow {
	return []StatRow{
		{"HP", FormatStat(s.HP)},
		{"Attack damage", FormatStat(s.AttackDamage)},
		{"Armor", FormatStat(s.Armor)},
		{"Magic resist", FormatStat(s.SpellBlock)},
		{"Move speed", FormatStat(s.MoveSpeed)},
		{"Attack range", FormatStat(s.AttackRange)},
	}
}

// FormatStat prints whole numbers without decimals.
func FormatStat(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
