package cryptotree

import (
	"bytes"

	"github.com/mustafatiftikci/crypto-tree/crypto"
	"github.com/mustafatiftikci/crypto-tree/utils"
)

// SignedTreeRoot represents a signed tree root (STR), which is
// generated at the beginning of every epoch. It binds the tree's root
// digest and size to the issuer's signing key and to the previous
// epoch's STR through a hash chain. The epoch number is a counter from
// 0, and increases by 1 when a new signed tree root is issued.
type SignedTreeRoot struct {
	tree            *Tree
	RootDigest      []byte `json:"rootDigest"`
	TreeSize        int    `json:"treeSize"`
	Epoch           uint64 `json:"epoch"`
	PreviousEpoch   uint64 `json:"previousEpoch"`
	PreviousSTRHash []byte `json:"previousStrHash"`
	Signature       []byte `json:"signature"`
}

// NewSTR constructs a SignedTreeRoot over the snapshot m for the given
// epoch and previous STR hash, and digitally signs it using the given
// signing key.
func NewSTR(key crypto.SigningKey, m *Tree, epoch uint64, prevHash []byte) *SignedTreeRoot {
	prevEpoch := epoch - 1
	if epoch == 0 {
		prevEpoch = 0
	}
	str := &SignedTreeRoot{
		tree:            m,
		RootDigest:      m.RootDigest(),
		TreeSize:        m.Size(),
		Epoch:           epoch,
		PreviousEpoch:   prevEpoch,
		PreviousSTRHash: prevHash,
	}
	str.Signature = key.Sign(str.Serialize())
	return str
}

// Serialize serializes the signed tree root into a specified format
// for signing.
func (str *SignedTreeRoot) Serialize() []byte {
	var strBytes []byte
	strBytes = append(strBytes, utils.ULongToBytes(str.Epoch)...) // t - epoch number
	if str.Epoch > 0 {
		strBytes = append(strBytes, utils.ULongToBytes(str.PreviousEpoch)...) // t_prev - previous epoch number
	}
	strBytes = append(strBytes, str.RootDigest...)                           // root
	strBytes = append(strBytes, utils.ULongToBytes(uint64(str.TreeSize))...) // n - tree size
	strBytes = append(strBytes, str.PreviousSTRHash...)                      // previous STR hash
	return strBytes
}

// VerifySignature verifies the STR's signature under the issuer's
// verification key.
func (str *SignedTreeRoot) VerifySignature(pk crypto.VerifKey) bool {
	return pk.Verify(str.Serialize(), str.Signature)
}

// VerifyHashChain computes the hash of savedSTR's signature, and
// compares it to the hash of the previous STR included in the issued
// STR. The hash chain is valid if these two hash values are equal and
// the epochs are consecutive.
func (str *SignedTreeRoot) VerifyHashChain(savedSTR *SignedTreeRoot) bool {
	hash := crypto.Digest(savedSTR.Signature)
	return str.PreviousEpoch == savedSTR.Epoch &&
		str.Epoch == savedSTR.Epoch+1 &&
		bytes.Equal(hash, str.PreviousSTRHash)
}

// Tree returns the snapshot the STR was issued over.
func (str *SignedTreeRoot) Tree() *Tree {
	return str.tree
}
