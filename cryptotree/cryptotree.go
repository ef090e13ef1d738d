package cryptotree

import (
	"sync"
)

// Tree represents the authenticated AVL tree: a dictionary keyed by
// record id whose root digest commits to its entire contents.
//
// A Tree is safe for concurrent use: mutations are serialized by an
// internal lock, and all structural change is copy-on-write, so
// lookups and proofs taken from a Clone stay valid no matter how the
// source tree mutates afterwards.
type Tree struct {
	mu   sync.RWMutex
	root *node
	size int
}

// New returns an empty tree. The root digest of an empty tree is
// EmptyDigest.
func New() *Tree {
	return &Tree{}
}

// Insert adds the record to the tree. It returns true if the record
// was newly added, and false if a record with the same id is already
// present; in that case the tree, including its root digest, is left
// unchanged. Records lacking a well-formed id are rejected with
// ErrMalformedRecord before any mutation.
func (t *Tree) Insert(record Record) (bool, error) {
	id, err := record.ID()
	if err != nil {
		return false, err
	}
	encoded, err := record.Encode()
	if err != nil {
		return false, err
	}
	leaf := newLeaf(id, record.Clone(), contentDigest(encoded))

	t.mu.Lock()
	defer t.mu.Unlock()
	root, inserted := insert(t.root, leaf)
	if inserted {
		t.root = root
		t.size++
	}
	return inserted, nil
}

// insert returns the root of the subtree rooted at n with leaf added,
// cloning every node it descends through. The returned subtree is
// height-balanced and carries fresh digests.
func insert(n, leaf *node) (*node, bool) {
	if n == nil {
		return leaf, true
	}
	if leaf.id == n.id {
		return n, false
	}
	c := n.clone()
	var inserted bool
	if leaf.id < n.id {
		c.left, inserted = insert(n.left, leaf)
	} else {
		c.right, inserted = insert(n.right, leaf)
	}
	if !inserted {
		return n, false
	}
	c.update()
	return rebalance(c), true
}

// Delete removes the record stored under id. It returns true if a
// record was removed, and false if the id is absent; in that case the
// tree, including its root digest, is left unchanged.
func (t *Tree) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	root, removed := remove(t.root, id)
	if removed {
		t.root = root
		t.size--
	}
	return removed
}

// remove returns the root of the subtree rooted at n with the node
// keyed by id removed, cloning every node it touches. Unlike
// insertion, deletion may rotate at more than one ancestor on the way
// back up.
func remove(n *node, id string) (*node, bool) {
	if n == nil {
		return nil, false
	}
	if id != n.id {
		child, removed := remove(childOf(n, id), id)
		if !removed {
			return n, false
		}
		c := n.clone()
		if id < n.id {
			c.left = child
		} else {
			c.right = child
		}
		c.update()
		return rebalance(c), true
	}
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	// two children: take over the in-order successor's record, then
	// remove the successor from the right subtree. The successor has
	// no left child, so that removal cannot recurse into this case
	// again.
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	c := n.clone()
	c.id = succ.id
	c.record = succ.record
	c.content = succ.content
	c.right, _ = remove(n.right, succ.id)
	c.update()
	return rebalance(c), true
}

func childOf(n *node, id string) *node {
	if id < n.id {
		return n.left
	}
	return n.right
}

// rebalance applies at most one rotation at n, dispatched on the signs
// of n's and the taller child's balance factors (the LL, LR, RR and RL
// cases). n must be owned by the caller and already carry a fresh
// height and digest.
func rebalance(n *node) *node {
	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 { // left-right
			n.left = rotateLeft(n.left.clone())
		}
		return rotateRight(n)
	case bf < -1:
		if n.right.balanceFactor() > 0 { // right-left
			n.right = rotateRight(n.right.clone())
		}
		return rotateLeft(n)
	}
	return n
}

// rotateRight lifts n's left child above n. n must be owned by the
// caller; the lifted child is cloned before it is mutated. Heights and
// digests are recomputed innermost first.
func rotateRight(n *node) *node {
	l := n.left.clone()
	n.left = l.right
	l.right = n
	n.update()
	l.update()
	return l
}

// rotateLeft lifts n's right child above n; the mirror of rotateRight.
func rotateLeft(n *node) *node {
	r := n.right.clone()
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}

// Search returns the record stored under id, or nil if the id is
// absent. The returned record is a copy; the tree's contents cannot be
// mutated through it.
func (t *Tree) Search(id string) Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for n := t.root; n != nil; {
		switch {
		case id == n.id:
			return n.record.Clone()
		case id < n.id:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// RootDigest returns the tree's authenticated commitment: the digest
// of the root node, or EmptyDigest when the tree is empty. The
// returned slice is a copy.
func (t *Tree) RootDigest() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]byte(nil), digestOf(t.root)...)
}

// Size returns the number of records in the tree.
func (t *Tree) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Clone returns a snapshot of the tree in O(1). The snapshot shares
// structure with t; later mutations of either tree never become
// visible through the other.
func (t *Tree) Clone() *Tree {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &Tree{root: t.root, size: t.size}
}
