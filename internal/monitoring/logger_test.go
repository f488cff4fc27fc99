package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLoggerCaptures(t *testing.T) {
	defer SetLogger(nil)

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})

	Logf("plain %d", 1)
	Tagf("search", "split %d/%d", 2, 7)

	if len(got) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(got))
	}
	if got[0] != "plain 1" {
		t.Errorf("unexpected first line: %q", got[0])
	}
	if got[1] != "[search] split 2/7" {
		t.Errorf("unexpected tagged line: %q", got[1])
	}
}

func TestSetLoggerNilMutes(t *testing.T) {
	SetLogger(nil)
	// Must not panic.
	Logf("dropped %s", "line")
	Tagf("x", "dropped")
	SetLogger(nil)
}
