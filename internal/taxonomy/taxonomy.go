// Package taxonomy holds the static math skill catalog: a three-level
// hierarchy of category, subcategory and skill. The catalog is immutable
// reference data, loaded once at init and safe for concurrent reads.
package taxonomy

import (
	"fmt"
	"strings"
)

// Skill is a leaf node identifying one specific math competency.
// IDs follow the uppercase dotted-segment convention, e.g. "EQ.QUAD.FACTOR".
type Skill struct {
	ID   string
	Name string
}

// SubCategory groups related skills.
type SubCategory struct {
	ID     string
	Name   string
	Skills []Skill
}

// Category is the top-level grouping node.
type Category struct {
	ID            string
	Name          string
	SubCategories []SubCategory
}

// Entry is the result of a skill lookup: the skill together with its
// grouping nodes.
type Entry struct {
	Category    *Category
	SubCategory *SubCategory
	Skill       *Skill
}

// byID indexes every skill by its id.
var byID map[string]Entry

func init() {
	byID = make(map[string]Entry)
	for ci := range seedCategories {
		cat := &seedCategories[ci]
		for si := range cat.SubCategories {
			sub := &cat.SubCategories[si]
			for ki := range sub.Skills {
				skill := &sub.Skills[ki]
				if _, dup := byID[skill.ID]; dup {
					panic(fmt.Sprintf("taxonomy: duplicate skill id %q", skill.ID))
				}
				byID[skill.ID] = Entry{Category: cat, SubCategory: sub, Skill: skill}
			}
		}
	}
}

// Categories returns all categories in display order.
func Categories() []Category {
	return seedCategories
}

// FindSkillByID resolves a skill id to its entry.
// Returns (Entry{}, false) when the id is unknown; callers must fall back
// to a cached display name or the raw id, never fail.
func FindSkillByID(id string) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// SkillName returns the canonical display name for a skill id, or the
// id itself when the taxonomy cannot resolve it.
func SkillName(id string) string {
	if e, ok := byID[id]; ok {
		return e.Skill.Name
	}
	return id
}

// AllSkillIDs returns every skill id in catalog order.
func AllSkillIDs() []string {
	ids := make([]string, 0, len(byID))
	for _, cat := range seedCategories {
		for _, sub := range cat.SubCategories {
			for _, s := range sub.Skills {
				ids = append(ids, s.ID)
			}
		}
	}
	return ids
}

// PromptContext renders the catalog as the id vocabulary handed to the
// analysis prompt, one category per line.
func PromptContext() string {
	var b strings.Builder
	for i, cat := range seedCategories {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cat.Name)
		b.WriteString(": ")
		first := true
		for _, sub := range cat.SubCategories {
			for _, s := range sub.Skills {
				if !first {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s (%s)", s.ID, s.Name)
				first = false
			}
		}
	}
	return b.String()
}
