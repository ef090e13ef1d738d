package utils

import (
	"bytes"
	"testing"
)

func TestUInt32ToBytes(t *testing.T) {
	if got := UInt32ToBytes(0x01020304); !bytes.Equal(got, []byte{4, 3, 2, 1}) {
		t.Error("Unexpected encoding", got)
	}
	if got := len(UInt32ToBytes(0)); got != 4 {
		t.Error("Unexpected length", got)
	}
}

func TestULongToBytes(t *testing.T) {
	if got := ULongToBytes(0x0102030405060708); !bytes.Equal(got, []byte{8, 7, 6, 5, 4, 3, 2, 1}) {
		t.Error("Unexpected encoding", got)
	}
	if got := len(ULongToBytes(0)); got != 8 {
		t.Error("Unexpected length", got)
	}
}
