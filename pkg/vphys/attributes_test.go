package vphys

import (
	"fmt"
	"testing"
)

// mapStore is a PropertyStore backed by a plain map, shared by the
// tests in this package.
type mapStore map[string]string

func (m mapStore) Get(path string) (string, bool) {
	v, ok := m[path]
	return v, ok
}

func attrStore(labels ...string) mapStore {
	store := mapStore{}
	for i, label := range labels {
		store[fmt.Sprintf("m_collisionAttributes[%d].m_CollisionGroupString", i)] = label
	}
	return store
}

func TestDefaultAttributeIndices_CaseAndQuotes(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{"plain lowercase", "default", true},
		{"capitalized", "Default", true},
		{"uppercase", "DEFAULT", true},
		{"quoted", `"default"`, true},
		{"quoted with trailing newline", "\"default\"\n", true},
		{"quoted capitalized", `"Default"`, true},
		{"other group", "Debris", false},
		{"empty string", "", false},
		{"quotes only", `""`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultAttributeIndices(attrStore(tt.label))
			_, accepted := got[0]
			if accepted != tt.want {
				t.Errorf("label %q accepted = %v, want %v", tt.label, accepted, tt.want)
			}
		})
	}
}

func TestAttributeIndices_ScanStopsOnAbsence(t *testing.T) {
	// Slot 1 is present but non-matching; the scan must continue past
	// it and accept slot 2. Slot 3 is absent and ends the scan.
	store := attrStore(`"Default"`, `"Debris"`, `"default"`)

	got := DefaultAttributeIndices(store)
	if len(got) != 2 {
		t.Fatalf("got %d accepted indices, want 2", len(got))
	}
	for _, want := range []int{0, 2} {
		if _, ok := got[want]; !ok {
			t.Errorf("index %d missing from accepted set", want)
		}
	}
	if _, ok := got[1]; ok {
		t.Error("non-matching index 1 was accepted")
	}
}

func TestAttributeIndices_EmptyLabelContinuesScan(t *testing.T) {
	// Present-but-empty does not terminate the scan.
	store := attrStore("", `"default"`)

	got := DefaultAttributeIndices(store)
	if _, ok := got[1]; !ok {
		t.Error("scan stopped at empty label instead of continuing")
	}
}

func TestAttributeIndices_CustomGroup(t *testing.T) {
	store := attrStore(`"Default"`, `"Debris"`)

	got := AttributeIndices(store, "debris")
	if _, ok := got[1]; !ok {
		t.Error("custom group label not matched")
	}
	if _, ok := got[0]; ok {
		t.Error("default group matched under custom label")
	}
}

func TestAttributeIndices_NoAttributes(t *testing.T) {
	got := DefaultAttributeIndices(mapStore{})
	if len(got) != 0 {
		t.Errorf("got %d indices from empty store, want 0", len(got))
	}
}
