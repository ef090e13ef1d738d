package cryptotree

import (
	"strings"
	"testing"
)

// Corrupting any cached field must be caught by the integrity check,
// and the error must name the offending id.
func TestCheckIntegrityDetectsTampering(t *testing.T) {
	build := func() *Tree {
		m := New()
		mustInsert(t, m, "d", "b", "f", "a", "c", "e", "g")
		return m
	}

	m := build()
	m.root.digest[0] ^= 1
	assertViolation(t, m, "d", "node digest")

	m = build()
	m.root.left.content[0] ^= 1
	assertViolation(t, m, "b", "content digest")

	m = build()
	m.root.height = 7
	assertViolation(t, m, "d", "height")

	m = build()
	m.root.left.record["amount"] = 999
	assertViolation(t, m, "b", "content digest")

	m = build()
	m.root.left.id = "z" // breaks BST ordering
	if m.CheckIntegrity() == nil {
		t.Error("Key-order violation not detected")
	}
}

func assertViolation(t *testing.T, m *Tree, id, kind string) {
	t.Helper()
	if m.VerifyIntegrity() {
		t.Error("Tampered tree passed integrity check:", kind)
		return
	}
	err := m.CheckIntegrity()
	if err == nil || !strings.Contains(err.Error(), `"`+id+`"`) {
		t.Errorf("Expected %s violation at %q, got %v", kind, id, err)
	}
}
