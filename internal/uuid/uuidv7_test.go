package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("expected valid uuid, got %q", id)
	}
	if id[14] != '7' {
		t.Errorf("expected version 7 uuid, got %q", id)
	}
}

func TestNew_TimeOrdered(t *testing.T) {
	a := New()
	b := New()
	if strings.Compare(a[:8], b[:8]) > 0 {
		t.Errorf("expected %s to sort before %s", a, b)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("0190F0E1-AAAA-7BBB-8CCC-DDDDDDDDDDDD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0190f0e1-aaaa-7bbb-8ccc-dddddddddddd" {
		t.Errorf("expected lower-cased uuid, got %s", got)
	}

	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for malformed uuid")
	}
	if IsValid("12345") {
		t.Error("expected 12345 to be invalid")
	}
}
