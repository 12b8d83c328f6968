package vphys

import (
	"fmt"
	"strings"
)

// DefaultGroup is the collision group whose shapes are extracted
// unless configured otherwise.
const DefaultGroup = "default"

// PropertyStore is the query boundary to the parsed document. Get
// must distinguish an absent path from a present-but-empty value.
type PropertyStore interface {
	Get(path string) (string, bool)
}

// AttributeIndices scans the document's collision attribute slots and
// returns the set of slot indices whose group label equals group
// (case-insensitive, outer quotes stripped). The scan stops at the
// first absent slot; present-but-non-matching slots are passed over
// but do not stop it.
func AttributeIndices(store PropertyStore, group string) map[int]struct{} {
	accepted := make(map[int]struct{})
	group = strings.ToLower(group)

	for i := 0; ; i++ {
		label, ok := store.Get(fmt.Sprintf("m_collisionAttributes[%d].m_CollisionGroupString", i))
		if !ok {
			return accepted
		}
		if cleanGroupLabel(label) == group {
			accepted[i] = struct{}{}
		}
	}
}

// DefaultAttributeIndices is AttributeIndices for the "default" group.
func DefaultAttributeIndices(store PropertyStore) map[int]struct{} {
	return AttributeIndices(store, DefaultGroup)
}

// cleanGroupLabel strips one outer pair of double quotes and folds to
// lower case. The closing quote is located from the end so trailing
// whitespace or a newline after it does not defeat the strip.
func cleanGroupLabel(s string) string {
	if len(s) >= 2 && s[0] == '"' {
		if last := strings.LastIndexByte(s, '"'); last > 0 {
			s = s[1:last]
		}
	}
	return strings.ToLower(s)
}
