package app

import (
	"bytes"
	"strings"
	"testing"

	"example.com/tsview/pkg/config"
)

func TestPrintTerminalPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	term := NewPrintTerminal(&buf, config.DefaultTheme())
	v, _, _, _ := newTestView(t, "x = 1", "(identifier) @var")
	if err := v.Draw(term, config.DefaultKeymap()); err != nil {
		t.Fatalf("draw: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		`program  0..5 "x = 1"`,
		`|  name identifier @var  0..1 "x"`,
		`|  value literal  4..5 "1"`,
		``,
		`(>) increase indent`,
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
	if last := lines[len(lines)-1]; last != "(C-c) quit" {
		t.Fatalf("expected quit help last, got %q", last)
	}
}

func TestPrintTerminalShowResets(t *testing.T) {
	var buf bytes.Buffer
	term := NewPrintTerminal(&buf, config.TerminalTheme())
	v, _, _, _ := newTestView(t, "x", "")
	if err := v.Draw(term, config.DefaultKeymap()); err != nil {
		t.Fatalf("draw: %v", err)
	}
	first := buf.String()
	buf.Reset()
	if err := term.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing after the frame was shown, got %q", buf.String())
	}
	if !strings.HasPrefix(first, `program  0..1 "x"`) {
		t.Fatalf("unexpected frame %q", first)
	}
}
