package cursor

import "testing"

func TestMatchAnyChar(t *testing.T) {
	c := New("ab")

	if got := c.MatchAnyChar(); got != 'a' {
		t.Fatalf("first MatchAnyChar wrong. expected=%q, got=%q", byte('a'), got)
	}
	if got := c.MatchAnyChar(); got != 'b' {
		t.Fatalf("second MatchAnyChar wrong. expected=%q, got=%q", byte('b'), got)
	}
	if got := c.MatchAnyChar(); got != NoChar {
		t.Fatalf("exhausted MatchAnyChar wrong. expected=NoChar, got=%q", got)
	}
	if c.Offset() != 2 {
		t.Fatalf("offset wrong after exhaustion. expected=2, got=%d", c.Offset())
	}
}

func TestMatchChar(t *testing.T) {
	tests := []struct {
		input      string
		ch         byte
		expected   bool
		wantOffset int
	}{
		{"abc", 'a', true, 1},
		{"abc", 'b', false, 0},
		{"", 'a', false, 0},
	}

	for i, tt := range tests {
		c := New(tt.input)
		if got := c.MatchChar(tt.ch); got != tt.expected {
			t.Fatalf("tests[%d] - MatchChar wrong. expected=%v, got=%v", i, tt.expected, got)
		}
		if c.Offset() != tt.wantOffset {
			t.Fatalf("tests[%d] - offset wrong. expected=%d, got=%d", i, tt.wantOffset, c.Offset())
		}
	}
}

func TestMatchCharNotIn(t *testing.T) {
	tests := []struct {
		input      string
		set        string
		expected   byte
		wantOffset int
	}{
		{"abc", "xyz", 'a', 1},
		{"abc", "abc", NoChar, 0},
		{"", "xyz", NoChar, 0},
		{"\\n", "|*+?()", '\\', 1},
	}

	for i, tt := range tests {
		c := New(tt.input)
		if got := c.MatchCharNotIn(tt.set); got != tt.expected {
			t.Fatalf("tests[%d] - MatchCharNotIn wrong. expected=%q, got=%q", i, tt.expected, got)
		}
		if c.Offset() != tt.wantOffset {
			t.Fatalf("tests[%d] - offset wrong. expected=%d, got=%d", i, tt.wantOffset, c.Offset())
		}
	}
}

func TestMatchAnyCharIn(t *testing.T) {
	tests := []struct {
		input      string
		set        string
		expected   byte
		wantOffset int
	}{
		{"+rest", "+?*", '+', 1},
		{"a", "+?*", NoChar, 0},
		{"", "+?*", NoChar, 0},
	}

	for i, tt := range tests {
		c := New(tt.input)
		if got := c.MatchAnyCharIn(tt.set); got != tt.expected {
			t.Fatalf("tests[%d] - MatchAnyCharIn wrong. expected=%q, got=%q", i, tt.expected, got)
		}
		if c.Offset() != tt.wantOffset {
			t.Fatalf("tests[%d] - offset wrong. expected=%d, got=%d", i, tt.wantOffset, c.Offset())
		}
	}
}

func TestMarkReset(t *testing.T) {
	c := New("abcdef")

	c.MatchAnyChar()
	mark := c.Mark()

	c.MatchAnyChar()
	c.MatchAnyChar()
	if c.Rest() != "def" {
		t.Fatalf("rest before reset wrong. expected=%q, got=%q", "def", c.Rest())
	}

	c.Reset(mark)
	if c.Rest() != "bcdef" {
		t.Fatalf("rest after reset wrong. expected=%q, got=%q", "bcdef", c.Rest())
	}
	if got := c.MatchAnyChar(); got != 'b' {
		t.Fatalf("read after reset wrong. expected=%q, got=%q", byte('b'), got)
	}
}

func TestRestAndExhausted(t *testing.T) {
	c := New("xy")
	if c.Exhausted() {
		t.Fatal("fresh cursor reported exhausted")
	}
	c.MatchAnyChar()
	if c.Rest() != "y" {
		t.Fatalf("rest wrong. expected=%q, got=%q", "y", c.Rest())
	}
	c.MatchAnyChar()
	if !c.Exhausted() {
		t.Fatal("drained cursor not reported exhausted")
	}
	if c.Rest() != "" {
		t.Fatalf("rest of drained cursor wrong. expected=%q, got=%q", "", c.Rest())
	}
}
