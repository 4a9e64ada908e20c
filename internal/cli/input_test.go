package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestIsCancel(t *testing.T) {
	for _, line := range []string{"cancel", "CANCEL", "  Cancel  "} {
		if !IsCancel(line) {
			t.Fatalf("expected %q to be the cancel sentinel", line)
		}
	}
	for _, line := range []string{"", "cancel it", "yes"} {
		if IsCancel(line) {
			t.Fatalf("expected %q not to be the cancel sentinel", line)
		}
	}
}

func TestAskFieldCancel(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("cancel\n"), &out)

	_, err := p.AskField("Name: ")
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
	if !strings.Contains(out.String(), "Name: ") {
		t.Fatalf("expected prompt to be written, got %q", out.String())
	}
}

func TestAskTrimsLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  hello \r\n"), &out)

	got, err := p.Ask("? ")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "hello" {
		t.Fatalf("Ask = %q, want %q", got, "hello")
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("ParseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "-1", "0", "1.5"} {
		if _, err := ParseID(bad); err == nil {
			t.Fatalf("expected ParseID(%q) to fail", bad)
		}
	}
}

func TestParseOptionalNumbers(t *testing.T) {
	if v, err := ParseOptionalInt(""); err != nil || v != 0 {
		t.Fatalf("empty int should mean skip, got %d, %v", v, err)
	}
	if v, err := ParseOptionalInt("2023"); err != nil || v != 2023 {
		t.Fatalf("ParseOptionalInt(2023) = %d, %v", v, err)
	}
	if _, err := ParseOptionalInt("20x3"); err == nil {
		t.Fatalf("expected non-numeric year to fail")
	}
	if _, err := ParseOptionalInt("-2005"); err == nil {
		t.Fatalf("expected negative year to fail")
	}

	if v, err := ParseOptionalFloat(""); err != nil || v != 0 {
		t.Fatalf("empty float should mean skip, got %v, %v", v, err)
	}
	if v, err := ParseOptionalFloat("15.5"); err != nil || v != 15.5 {
		t.Fatalf("ParseOptionalFloat(15.5) = %v, %v", v, err)
	}
	if _, err := ParseOptionalFloat("abc"); err == nil {
		t.Fatalf("expected non-numeric price to fail")
	}
	if _, err := ParseOptionalFloat("-9.5"); err == nil {
		t.Fatalf("expected negative price to fail")
	}
}
