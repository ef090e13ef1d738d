package cryptotree

import (
	"github.com/mustafatiftikci/crypto-tree/crypto"
	"github.com/mustafatiftikci/crypto-tree/utils"
)

// EmptyDigest is the sentinel digest contributed by an absent child,
// and the root digest of an empty tree. It is all-zero of the full
// hash width, so a node with only a left child hashes differently
// from one with only a right child.
var EmptyDigest = make([]byte, crypto.HashSizeByte)

// contentDigest computes the digest of a record's canonical encoding.
// It is independent of the record's position in the tree.
func contentDigest(encoded []byte) []byte {
	return crypto.Digest(encoded)
}

// nodeDigest computes the hash of a tree node as:
// H(content || left || right || height).
// Absent children must be passed as EmptyDigest.
func nodeDigest(content, left, right []byte, height uint32) []byte {
	return crypto.Digest(content, left, right, utils.UInt32ToBytes(height))
}
