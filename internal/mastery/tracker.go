// Package mastery maintains per-skill error counts and resolves skills
// once the learner demonstrates mastery in practice.
package mastery

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mathmate/mathmate/internal/store"
)

// Record tracks the learner's error history for one skill.
// A record is never deleted: resolving a skill resets ErrorCount to 0 so
// the "ever struggled with this" history is retained while the skill
// leaves active problem-area views.
type Record struct {
	ErrorCount         int    `json:"errorCount"`
	LastErrorTimestamp int64  `json:"lastErrorTimestamp"`
	Name               string `json:"name,omitempty"`
}

// Active reports whether the skill currently appears in problem-area views.
func (r Record) Active() bool {
	return r.ErrorCount > 0
}

// Tracker manages the skill-id → Record mapping backed by the store.
type Tracker struct {
	kv      store.KV
	records map[string]*Record
	now     func() time.Time
}

// NewTracker loads the mastery mapping from the store. A missing or
// corrupt record starts the tracker empty.
func NewTracker(kv store.KV) *Tracker {
	t := &Tracker{
		kv:      kv,
		records: make(map[string]*Record),
		now:     time.Now,
	}

	raw, ok, err := kv.Get(store.KeyMastery)
	if err != nil || !ok {
		return t
	}
	if err := json.Unmarshal(raw, &t.records); err != nil {
		t.records = make(map[string]*Record)
	}
	return t
}

// NormalizeID canonicalizes a skill id: trimmed, uppercase. Case-variant
// ids of the same logical skill must coalesce into one record.
func NormalizeID(skillID string) string {
	return strings.ToUpper(strings.TrimSpace(skillID))
}

// TrackMistake records one mistake against a skill. An empty id is a
// no-op: a skill-less mistake must not corrupt state. The display name
// hint, when supplied, overwrites the cached name (last-write-wins).
func (t *Tracker) TrackMistake(skillID, nameHint string) {
	id := NormalizeID(skillID)
	if id == "" {
		return
	}

	rec, ok := t.records[id]
	if !ok {
		rec = &Record{Name: nameHint}
		if rec.Name == "" {
			rec.Name = id
		}
		t.records[id] = rec
	}
	rec.ErrorCount++
	rec.LastErrorTimestamp = t.now().UnixMilli()
	if nameHint != "" {
		rec.Name = nameHint
	}

	t.persist()
}

// ResolveSkill clears a skill's error count, removing it from active
// views without deleting its history. No-op for untracked ids.
func (t *Tracker) ResolveSkill(skillID string) {
	id := NormalizeID(skillID)
	if id == "" {
		return
	}
	rec, ok := t.records[id]
	if !ok {
		return
	}
	rec.ErrorCount = 0
	t.persist()
}

// Mastery returns a copy of the full mapping, resolved records included.
func (t *Tracker) Mastery() map[string]Record {
	out := make(map[string]Record, len(t.records))
	for id, rec := range t.records {
		out[id] = *rec
	}
	return out
}

// ActiveSkillIDs returns the ids of every skill with errors outstanding.
func (t *Tracker) ActiveSkillIDs() []string {
	var ids []string
	for id, rec := range t.records {
		if rec.Active() {
			ids = append(ids, id)
		}
	}
	return ids
}

// TotalErrors sums the outstanding error counts across all skills.
func (t *Tracker) TotalErrors() int {
	total := 0
	for _, rec := range t.records {
		total += rec.ErrorCount
	}
	return total
}

func (t *Tracker) persist() {
	data, err := json.Marshal(t.records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: marshal mastery map: %v\n", err)
		return
	}
	if err := t.kv.Set(store.KeyMastery, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist mastery map: %v\n", err)
	}
}
