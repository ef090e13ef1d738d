package crypto

import (
	"bytes"
	"testing"
)

func TestDigest(t *testing.T) {
	d := Digest([]byte("message"))
	if len(d) != HashSizeByte {
		t.Fatal("Unexpected digest size", len(d))
	}

	if !bytes.Equal(d, Digest([]byte("message"))) {
		t.Error("Digest is not deterministic")
	}

	// hashing the concatenation and hashing the parts must agree
	if !bytes.Equal(Digest([]byte("mes"), []byte("sage")), d) {
		t.Error("Digest differs when input is split")
	}

	if bytes.Equal(d, Digest([]byte("messagf"))) {
		t.Error("Digests of different messages collide")
	}
}

func TestSignVerify(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("test message")
	sig := key.Sign(message)

	pk, ok := key.Public()
	if !ok {
		t.Errorf("bad PK?")
	}

	if !pk.Verify(message, sig) {
		t.Errorf("valid signature rejected")
	}

	wrongMessage := []byte("wrong message")
	if pk.Verify(wrongMessage, sig) {
		t.Errorf("signature of different message accepted")
	}
}

func TestMakeRand(t *testing.T) {
	r1, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	r2, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	if len(r1) != HashSizeByte {
		t.Fatal("Unexpected size", len(r1))
	}
	if bytes.Equal(r1, r2) {
		t.Error("Two random slices are equal")
	}
}
