package cryptotree

import (
	"bytes"
	"fmt"
)

// VerifyIntegrity reports whether every reachable node's cached height
// and digest match a full recomputation and the tree is a well-formed
// AVL search tree. A failed check signals tampering or a bug, not an
// unrecoverable state; the tree is left untouched either way, so
// calling VerifyIntegrity repeatedly without mutation always yields
// the same result.
func (t *Tree) VerifyIntegrity() bool {
	return t.CheckIntegrity() == nil
}

// CheckIntegrity is VerifyIntegrity with diagnostics: it returns nil
// on success, or an error naming the id of the first offending node.
func (t *Tree) CheckIntegrity() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, err := checkNode(t.root, nil, nil)
	return err
}

// checkNode re-derives the height and digest of every node under n,
// children first, and checks the search-tree ordering against the
// exclusive (lo, hi) key bounds inherited from n's ancestors. It
// returns the recomputed height of n.
func checkNode(n *node, lo, hi *string) (uint32, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.id <= *lo {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: key order", n.id)
	}
	if hi != nil && n.id >= *hi {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: key order", n.id)
	}

	lh, err := checkNode(n.left, lo, &n.id)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right, &n.id, hi)
	if err != nil {
		return 0, err
	}

	if bf := int(lh) - int(rh); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: balance factor %d", n.id, bf)
	}
	h := lh
	if rh > h {
		h = rh
	}
	h++
	if n.height != h {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: cached height %d, recomputed %d", n.id, n.height, h)
	}

	id, err := n.record.ID()
	if err != nil || id != n.id {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: record id mismatch", n.id)
	}
	encoded, err := n.record.Encode()
	if err != nil {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: %v", n.id, err)
	}
	if !bytes.Equal(n.content, contentDigest(encoded)) {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: content digest mismatch", n.id)
	}
	if !bytes.Equal(n.digest, nodeDigest(n.content, digestOf(n.left), digestOf(n.right), n.height)) {
		return 0, fmt.Errorf("[cryptotree] integrity violation at %q: node digest mismatch", n.id)
	}
	return h, nil
}
