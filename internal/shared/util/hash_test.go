package util

import "testing"

func TestChecksum(t *testing.T) {
	data := []byte("resume bytes")
	got := Checksum(data)
	if got != Checksum(data) {
		t.Fatalf("expected stable checksum, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("checksum contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if Checksum([]byte("other bytes")) == got {
		t.Fatal("different inputs produced the same checksum")
	}
}
