package cryptotree

import (
	"encoding/json"
	"testing"
)

func TestProveAndVerifyInclusion(t *testing.T) {
	m := New()
	ids := []string{"tx_005", "tx_003", "tx_007", "tx_001", "tx_009"}
	mustInsert(t, m, ids...)
	root := m.RootDigest()

	for _, id := range ids {
		proof := m.ProveInclusion(id)
		if proof == nil {
			t.Fatal("No proof for present id", id)
		}
		if !VerifyInclusion(testRecord(id), proof, root) {
			t.Error("Proof of inclusion verification failed for", id)
		}
	}

	if m.ProveInclusion("tx_999") != nil {
		t.Error("Got a proof for an absent id")
	}
}

func TestVerifyInclusionTamperedRecord(t *testing.T) {
	m := New()
	mustInsert(t, m, "tx_001", "tx_002", "tx_003")
	root := m.RootDigest()
	proof := m.ProveInclusion("tx_002")
	if proof == nil {
		t.Fatal("No proof for tx_002")
	}

	tampered := testRecord("tx_002")
	tampered["amount"] = 101
	if VerifyInclusion(tampered, proof, root) {
		t.Error("Proof verified a tampered record")
	}

	other := testRecord("tx_001")
	if VerifyInclusion(other, proof, root) {
		t.Error("Proof verified a different record")
	}
}

func TestVerifyInclusionTamperedProof(t *testing.T) {
	m := New()
	mustInsert(t, m, "a", "b", "c", "d", "e", "f", "g")
	root := m.RootDigest()
	rec := testRecord("a")

	proof := m.ProveInclusion("a")
	if len(proof.Steps) == 0 {
		t.Fatal("Expected ancestor steps for a leaf")
	}

	for i := range proof.Steps {
		fresh := m.ProveInclusion("a")
		fresh.Steps[i].SiblingDigest[0] ^= 1
		if VerifyInclusion(rec, fresh, root) {
			t.Error("Proof with substituted sibling digest verified, step", i)
		}

		fresh = m.ProveInclusion("a")
		fresh.Steps[i].ContentDigest[0] ^= 1
		if VerifyInclusion(rec, fresh, root) {
			t.Error("Proof with substituted content digest verified, step", i)
		}

		fresh = m.ProveInclusion("a")
		fresh.Steps[i].Direction = flip(fresh.Steps[i].Direction)
		if VerifyInclusion(rec, fresh, root) {
			t.Error("Proof with flipped direction verified, step", i)
		}
	}

	fresh := m.ProveInclusion("a")
	fresh.Leaf.LeftDigest[0] ^= 1
	if VerifyInclusion(rec, fresh, root) {
		t.Error("Proof with tampered leaf child digest verified")
	}

	if VerifyInclusion(rec, nil, root) {
		t.Error("nil proof verified")
	}
}

func flip(direction string) string {
	if direction == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// A proof taken before a mutation must keep verifying against the root
// digest it was generated under.
func TestProofOutlivesMutation(t *testing.T) {
	m := New()
	mustInsert(t, m, "a", "b", "c", "d", "e")
	oldRoot := m.RootDigest()
	proof := m.ProveInclusion("c")

	mustInsert(t, m, "f", "g")
	if !m.Delete("a") {
		t.Fatal("Could not delete a")
	}

	if !VerifyInclusion(testRecord("c"), proof, oldRoot) {
		t.Error("Old proof no longer verifies against its root digest")
	}
	if VerifyInclusion(testRecord("c"), proof, m.RootDigest()) {
		t.Error("Old proof verifies against the new root digest")
	}
}

func TestProofSerialization(t *testing.T) {
	m := New()
	mustInsert(t, m, "tx_001", "tx_002", "tx_003")
	root := m.RootDigest()
	proof := m.ProveInclusion("tx_003")

	buf, err := json.Marshal(proof)
	if err != nil {
		t.Fatal(err)
	}
	decoded := new(Proof)
	if err := json.Unmarshal(buf, decoded); err != nil {
		t.Fatal(err)
	}
	if !VerifyInclusion(testRecord("tx_003"), decoded, root) {
		t.Error("Decoded proof does not verify")
	}
}
