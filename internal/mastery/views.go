package mastery

import (
	"sort"

	"github.com/mathmate/mathmate/internal/taxonomy"
)

// ProblemSkill is one active problem area ready for display.
type ProblemSkill struct {
	SkillID    string
	Name       string
	ErrorCount int
}

// ProblemGroup is the active skills of one taxonomy subcategory.
type ProblemGroup struct {
	SubCategory string
	Skills      []ProblemSkill
}

// ProblemCategory aggregates a taxonomy category's active problem areas.
type ProblemCategory struct {
	Category    string
	TotalErrors int
	Groups      []ProblemGroup
}

// ProblemAreas partitions the active records by taxonomy category, with
// an extra bucket for tracked ids the taxonomy cannot resolve. Display
// names for uncategorized skills fall back to the record's cached name,
// then the raw id.
type ProblemAreas struct {
	Categories    []ProblemCategory
	Uncategorized []ProblemSkill
}

// Empty reports whether there is nothing to practice.
func (p ProblemAreas) Empty() bool {
	return len(p.Categories) == 0 && len(p.Uncategorized) == 0
}

// ProblemAreas builds the dashboard view of active skills grouped by
// taxonomy category, in catalog order.
func (t *Tracker) ProblemAreas() ProblemAreas {
	var areas ProblemAreas
	categorized := make(map[string]bool)

	for _, cat := range taxonomy.Categories() {
		pc := ProblemCategory{Category: cat.Name}
		for _, sub := range cat.SubCategories {
			group := ProblemGroup{SubCategory: sub.Name}
			for _, skill := range sub.Skills {
				rec, ok := t.records[skill.ID]
				if !ok || !rec.Active() {
					continue
				}
				categorized[skill.ID] = true
				group.Skills = append(group.Skills, ProblemSkill{
					SkillID:    skill.ID,
					Name:       skill.Name,
					ErrorCount: rec.ErrorCount,
				})
				pc.TotalErrors += rec.ErrorCount
			}
			if len(group.Skills) > 0 {
				pc.Groups = append(pc.Groups, group)
			}
		}
		if len(pc.Groups) > 0 {
			areas.Categories = append(areas.Categories, pc)
		}
	}

	for id, rec := range t.records {
		if !rec.Active() || categorized[id] {
			continue
		}
		name := rec.Name
		if name == "" {
			name = id
		}
		areas.Uncategorized = append(areas.Uncategorized, ProblemSkill{
			SkillID:    id,
			Name:       name,
			ErrorCount: rec.ErrorCount,
		})
	}
	sort.Slice(areas.Uncategorized, func(i, j int) bool {
		return areas.Uncategorized[i].SkillID < areas.Uncategorized[j].SkillID
	})

	return areas
}
