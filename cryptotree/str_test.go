package cryptotree

import (
	"fmt"
	"testing"

	"github.com/mustafatiftikci/crypto-tree/crypto"
)

var signKey crypto.SigningKey

func init() {
	var err error
	signKey, err = crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
}

func TestVerifyHashChain(t *testing.T) {
	var N uint64 = 100

	log, err := NewRootLog(signKey, 10)
	if err != nil {
		t.Fatal(err)
	}
	savedSTR := log.LatestSTR().Signature

	pk, ok := signKey.Public()
	if !ok {
		t.Fatal("Couldn't retrieve public-key.")
	}

	for i := uint64(1); i < N; i++ {
		if _, err := log.Insert(testRecord(fmt.Sprintf("tx_%03d", i))); err != nil {
			t.Fatal(err)
		}
		prev := log.LatestSTR()
		str := log.Update()

		// verify STR signature
		if !str.VerifySignature(pk) {
			t.Fatal("Invalid STR signature at epoch", i)
		}

		// verify hash chain
		if !str.VerifyHashChain(prev) {
			t.Fatal("Spurious STR at epoch", i)
		}
		if str.Signature == nil || string(str.Signature) == string(savedSTR) {
			t.Fatal("STR signature did not advance at epoch", i)
		}
		savedSTR = str.Signature
	}
}

func TestSTRBindsContents(t *testing.T) {
	m := New()
	mustInsert(t, m, "a", "b", "c")
	str := NewSTR(signKey, m.Clone(), 1, crypto.Digest([]byte("prev")))

	pk, ok := signKey.Public()
	if !ok {
		t.Fatal("Couldn't retrieve public-key.")
	}
	if !str.VerifySignature(pk) {
		t.Fatal("Signature over the STR serialization does not verify")
	}

	// any change to the committed fields must break the signature
	str.TreeSize++
	if str.VerifySignature(pk) {
		t.Error("Signature verified after tree size changed")
	}
	str.TreeSize--

	str.RootDigest[0] ^= 1
	if str.VerifySignature(pk) {
		t.Error("Signature verified after root digest changed")
	}
}
