package history

import (
	"encoding/json"
	"testing"

	"github.com/mathmate/mathmate/internal/store"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func TestAppend_NewestFirst(t *testing.T) {
	svc := NewService(newMemKV())
	svc.Append(ExerciseResult{ID: "1", Topic: "first"})
	svc.Append(ExerciseResult{ID: "2", Topic: "second"})

	entries := svc.List()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != "2" {
		t.Errorf("newest entry first: got id %q", entries[0].ID)
	}
}

func TestUpdate_ByID(t *testing.T) {
	svc := NewService(newMemKV())
	svc.Append(ExerciseResult{ID: "a", IsCorrect: false})
	svc.Append(ExerciseResult{ID: "b", IsCorrect: false})

	if err := svc.Update(ExerciseResult{ID: "a", IsCorrect: true, Topic: "fixed"}); err != nil {
		t.Fatal(err)
	}
	entries := svc.List()
	if len(entries) != 2 {
		t.Fatalf("update must not grow the list: %d entries", len(entries))
	}
	if !entries[1].IsCorrect || entries[1].Topic != "fixed" {
		t.Errorf("entry a not updated in place: %+v", entries[1])
	}
}

func TestUpdate_UnknownIDAppends(t *testing.T) {
	svc := NewService(newMemKV())
	svc.Update(ExerciseResult{ID: "new"})
	if len(svc.List()) != 1 {
		t.Error("unknown id should be treated as new")
	}
}

func TestList_CorruptRecordIsEmpty(t *testing.T) {
	kv := newMemKV()
	kv.Set(store.KeyHistory, []byte("[{"))
	if entries := NewService(kv).List(); entries != nil {
		t.Errorf("corrupt record should load empty, got %v", entries)
	}
}

func TestMistake_AcceptsBareStringAndObject(t *testing.T) {
	raw := `[
		"forgot to carry",
		{"description": "sign flip", "box_2d": [10, 20, 110, 320]}
	]`
	var mistakes []Mistake
	if err := json.Unmarshal([]byte(raw), &mistakes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if mistakes[0].Description != "forgot to carry" || mistakes[0].Box != nil {
		t.Errorf("bare string mistake = %+v", mistakes[0])
	}
	if mistakes[1].Description != "sign flip" || len(mistakes[1].Box) != 4 {
		t.Errorf("structured mistake = %+v", mistakes[1])
	}
}

func TestRoundTrip_StructuralEquality(t *testing.T) {
	kv := newMemKV()
	svc := NewService(kv)
	in := ExerciseResult{
		ID:          "r1",
		Timestamp:   1700000000000,
		IsCorrect:   false,
		Mistakes:    []Mistake{{Description: "dropped a term", Box: []int{0, 0, 500, 500}}},
		NextSteps:   []string{"revisit distribution"},
		Explanation: "expand before collecting terms",
		Topic:       "Algebra",
		SkillID:     "ALG.EXPAND.DIST",
		StepDetails: []StepDetail{{Text: "2(x+3)", Explanation: "distribute the 2"}},
	}
	svc.Append(in)

	out := NewService(kv).List()
	if len(out) != 1 {
		t.Fatalf("entries = %d", len(out))
	}
	got, _ := json.Marshal(out[0])
	want, _ := json.Marshal(in)
	if string(got) != string(want) {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, want)
	}
}
