package taxonomy

import (
	"strings"
	"testing"
)

func TestFindSkillByID(t *testing.T) {
	e, ok := FindSkillByID("META.NUM.READ.INT")
	if !ok {
		t.Fatal("expected known skill id to resolve")
	}
	if e.Skill.Name != "Reading integers" {
		t.Errorf("Skill.Name = %q", e.Skill.Name)
	}
	if e.Category == nil || e.SubCategory == nil {
		t.Error("expected grouping nodes to be populated")
	}
}

func TestFindSkillByID_Unknown(t *testing.T) {
	if _, ok := FindSkillByID("NOPE.NOT.REAL"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestSkillName_FallsBackToID(t *testing.T) {
	if got := SkillName("CUSTOM.THING"); got != "CUSTOM.THING" {
		t.Errorf("SkillName fallback = %q", got)
	}
}

func TestAllSkillIDs_UniqueAndUppercase(t *testing.T) {
	ids := AllSkillIDs()
	if len(ids) == 0 {
		t.Fatal("catalog is empty")
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate skill id %q", id)
		}
		seen[id] = true
		if id != strings.ToUpper(id) {
			t.Errorf("skill id %q is not uppercase", id)
		}
	}
}

func TestPromptContext_ContainsEveryID(t *testing.T) {
	ctx := PromptContext()
	for _, id := range AllSkillIDs() {
		if !strings.Contains(ctx, id) {
			t.Fatalf("prompt context missing %q", id)
		}
	}
}
