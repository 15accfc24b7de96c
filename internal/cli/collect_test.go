package cli

import (
	"bytes"
	"strings"
	"testing"
)

var rows = []string{
	"530070000", "600195000", "098000060",
	"800060003", "400803001", "700020006",
	"060000280", "000419005", "000080079",
}

func TestCollectPipedInput(t *testing.T) {
	in := strings.NewReader(strings.Join(rows, "\n") + "\n")
	var out bytes.Buffer
	b, err := NewCollector(in, &out, false).Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if b.Get(0, 0) != 5 || b.Get(8, 8) != 9 {
		t.Fatal("board not populated from rows")
	}
	if out.Len() != 0 {
		t.Fatalf("non-prompting collector wrote output: %q", out.String())
	}
}

func TestCollectRepromptsOnBadRow(t *testing.T) {
	lines := append([]string{"notarow"}, rows...)
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	b, err := NewCollector(in, &out, true).Collect()
	if err != nil {
		t.Fatalf("Collect failed after reprompt: %v", err)
	}
	if b.Get(0, 0) != 5 {
		t.Fatal("board not populated after reprompt")
	}
	if !strings.Contains(out.String(), "try again") {
		t.Fatalf("expected a reprompt message, got %q", out.String())
	}
}

func TestCollectBadRowFailsWhenPiped(t *testing.T) {
	lines := append([]string{"notarow"}, rows...)
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if _, err := NewCollector(in, &bytes.Buffer{}, false).Collect(); err == nil {
		t.Fatal("piped bad row should be an error")
	}
}

func TestCollectTruncatedInput(t *testing.T) {
	in := strings.NewReader(rows[0] + "\n" + rows[1] + "\n")
	if _, err := NewCollector(in, &bytes.Buffer{}, false).Collect(); err == nil {
		t.Fatal("truncated input should be an error")
	}
}
