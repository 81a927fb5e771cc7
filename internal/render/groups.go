package render

import "github.com/jonathan/resume-builder/internal/types"

// UncategorizedGroup is the display bucket for skills without a category.
const UncategorizedGroup = "Other"

// SkillGroup is a display grouping of skills sharing a category. Grouping
// is a derived, non-persisted projection; the category is free text with no
// referential integrity anywhere.
type SkillGroup struct {
	Category string
	Skills   []types.Skill
}

// GroupSkills buckets skills by category in order of first appearance,
// preserving the skill order within each bucket. It is recomputed from
// current skill data on every render.
func GroupSkills(skills []types.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)

	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = UncategorizedGroup
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
