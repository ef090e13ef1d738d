package cryptotree

// A node owns one record and at most two children. Its digest caches
// the authenticated hash binding the record's content digest, both
// children's digests and the node's height; it is never allowed to go
// stale across an exported operation.
type node struct {
	id      string
	record  Record
	content []byte // content digest of record
	left    *node
	right   *node
	height  uint32
	digest  []byte
}

// newLeaf creates a leaf node at height 1 owning the given record.
func newLeaf(id string, record Record, content []byte) *node {
	return &node{
		id:      id,
		record:  record,
		content: content,
		height:  1,
		digest:  nodeDigest(content, EmptyDigest, EmptyDigest, 1),
	}
}

// clone returns a copy of n sharing its record and both subtrees.
// Mutating operations clone every node on their path, so readers
// holding an older root keep observing a consistent tree.
func (n *node) clone() *node {
	c := *n
	return &c
}

func height(n *node) uint32 {
	if n == nil {
		return 0
	}
	return n.height
}

func digestOf(n *node) []byte {
	if n == nil {
		return EmptyDigest
	}
	return n.digest
}

// balanceFactor is the left subtree height minus the right subtree
// height. AVL balancing keeps it within [-1, 1] for every node.
func (n *node) balanceFactor() int {
	return int(height(n.left)) - int(height(n.right))
}

// update recomputes n's height and digest from its children. Callers
// must update every node whose children changed, innermost first.
func (n *node) update() {
	h := height(n.left)
	if r := height(n.right); r > h {
		h = r
	}
	n.height = h + 1
	n.digest = nodeDigest(n.content, digestOf(n.left), digestOf(n.right), n.height)
}
