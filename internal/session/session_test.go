package session

import "testing"

func TestNewIDIsValid(t *testing.T) {
	id := NewID()
	if !Valid(id) {
		t.Fatalf("freshly issued id %q must validate", id)
	}
	if id == NewID() {
		t.Fatalf("ids must be unique")
	}
}

func TestValidRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "   ", "not-a-uuid", "12345"} {
		if Valid(id) {
			t.Fatalf("expected %q to be rejected", id)
		}
	}
}

func TestValidTrimsWhitespace(t *testing.T) {
	if !Valid("  " + NewID() + " ") {
		t.Fatalf("padded ids should validate")
	}
}
