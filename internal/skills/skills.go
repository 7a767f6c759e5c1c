// Package skills holds the skill table, the XP curve and the tracker that
// turns experience gains into HUD updates.
package skills

import (
	"strconv"
	"strings"

	"skillhud/hud"
)

const (
	Farming hud.SkillID = iota
	Fishing
	Foraging
	Mining
	Combat
	Luck

	Count = int(Luck) + 1
)

// MaxLevel is the highest attainable skill level.
const MaxLevel = 10

// levelXP[i] is the total experience needed to reach level i+1.
var levelXP = [MaxLevel]int{100, 380, 770, 1300, 2150, 3300, 4800, 6900, 10000, 15000}

var names = [Count]string{"Farming", "Fishing", "Foraging", "Mining", "Combat", "Luck"}

// Valid reports whether id names a known skill.
func Valid(id hud.SkillID) bool { return id >= 0 && int(id) < Count }

// Notifies reports whether gains for id are shown on the HUD. Luck is hidden.
func Notifies(id hud.SkillID) bool { return Valid(id) && id != Luck }

// Name returns the display name of id, or "" for unknown skills.
func Name(id hud.SkillID) string {
	if !Valid(id) {
		return ""
	}
	return names[id]
}

// Parse resolves a skill by name (case-insensitive) or numeric id.
func Parse(s string) (hud.SkillID, bool) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return hud.SkillID(i), true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Valid(hud.SkillID(n)) {
		return 0, false
	}
	return hud.SkillID(n), true
}

// BaseXP returns the total experience needed to reach level, or -1 above MaxLevel.
func BaseXP(level int) int {
	switch {
	case level <= 0:
		return 0
	case level > MaxLevel:
		return -1
	default:
		return levelXP[level-1]
	}
}

// LevelFor returns the level reached with total experience.
func LevelFor(total int) int {
	lvl := 0
	for lvl < MaxLevel && total >= levelXP[lvl] {
		lvl++
	}
	return lvl
}

// Progress splits total experience into the current level, the experience
// earned inside that level and the experience the level spans. At MaxLevel
// both progress and required are 0.
func Progress(total int) (level, progress, required int) {
	level = LevelFor(total)
	if level >= MaxLevel {
		return level, 0, 0
	}
	base := BaseXP(level)
	return level, total - base, BaseXP(level+1) - base
}
