package cryptotree

import (
	"bytes"
)

// Directions a lookup can take at an ancestor on the proof path.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// A ProofStep describes one ancestor strictly above the proven node:
// the direction the lookup took there, the ancestor's height and
// content digest, and the digest of the child subtree not on the path.
// The ancestor's raw record is never revealed; its content digest
// binds the step to the ancestor's actual payload all the same.
type ProofStep struct {
	Direction     string `json:"direction"`
	Height        uint32 `json:"height"`
	ContentDigest []byte `json:"contentDigest"`
	SiblingDigest []byte `json:"siblingDigest"`
}

// A ProofLeaf carries the proven node's own content digest, the
// digests of its two children (EmptyDigest when absent), and its
// height.
type ProofLeaf struct {
	ContentDigest []byte `json:"contentDigest"`
	LeftDigest    []byte `json:"leftDigest"`
	RightDigest   []byte `json:"rightDigest"`
	Height        uint32 `json:"height"`
}

// A Proof is a compact inclusion proof for one record: the proven
// node's ProofLeaf plus its ancestors ordered from the target up to
// the root, so verification is a single forward fold. A Proof is an
// independent value with no ties to the tree that produced it; it
// stays verifiable against the root digest in effect at generation
// time regardless of later mutations.
type Proof struct {
	Leaf  ProofLeaf   `json:"leaf"`
	Steps []ProofStep `json:"steps"`
}

// ProveInclusion builds an inclusion proof for the record stored under
// id against the tree's current root digest. It returns nil if the id
// is not present.
func (t *Tree) ProveInclusion(id string) *Proof {
	t.mu.RLock()
	defer t.mu.RUnlock()

	type hop struct {
		n        *node
		wentLeft bool
	}
	var path []hop
	n := t.root
	for n != nil && n.id != id {
		if id < n.id {
			path = append(path, hop{n, true})
			n = n.left
		} else {
			path = append(path, hop{n, false})
			n = n.right
		}
	}
	if n == nil {
		return nil
	}

	proof := &Proof{
		Leaf: ProofLeaf{
			ContentDigest: copyDigest(n.content),
			LeftDigest:    copyDigest(digestOf(n.left)),
			RightDigest:   copyDigest(digestOf(n.right)),
			Height:        n.height,
		},
		Steps: make([]ProofStep, 0, len(path)),
	}
	for i := len(path) - 1; i >= 0; i-- {
		a := path[i]
		step := ProofStep{
			Height:        a.n.height,
			ContentDigest: copyDigest(a.n.content),
		}
		if a.wentLeft {
			step.Direction = DirectionLeft
			step.SiblingDigest = copyDigest(digestOf(a.n.right))
		} else {
			step.Direction = DirectionRight
			step.SiblingDigest = copyDigest(digestOf(a.n.left))
		}
		proof.Steps = append(proof.Steps, step)
	}
	return proof
}

// VerifyInclusion recomputes the root digest from the record and the
// proof, and compares it to rootDigest. It is a pure function and does
// not require the tree: a remote light client holding only the digest
// can run it on untrusted input. A false result is an expected,
// handleable outcome, not an error.
func VerifyInclusion(record Record, proof *Proof, rootDigest []byte) bool {
	if proof == nil {
		return false
	}
	encoded, err := record.Encode()
	if err != nil {
		return false
	}
	if !bytes.Equal(contentDigest(encoded), proof.Leaf.ContentDigest) {
		return false
	}

	current := nodeDigest(proof.Leaf.ContentDigest, proof.Leaf.LeftDigest, proof.Leaf.RightDigest, proof.Leaf.Height)
	for _, step := range proof.Steps {
		switch step.Direction {
		case DirectionLeft:
			current = nodeDigest(step.ContentDigest, current, step.SiblingDigest, step.Height)
		case DirectionRight:
			current = nodeDigest(step.ContentDigest, step.SiblingDigest, current, step.Height)
		default:
			return false
		}
	}
	return bytes.Equal(current, rootDigest)
}

func copyDigest(d []byte) []byte {
	return append([]byte(nil), d...)
}
