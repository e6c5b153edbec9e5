// Package cursor provides the forward-only character scanner the
// pattern parser reads from. A Cursor borrows its input string and
// never copies it; the read offset is its only mutable state.
// Backtracking belongs to the caller, via Mark and Reset.
package cursor

import "strings"

// NoChar is the sentinel returned by the Match* operations when the
// input is exhausted or the next character is rejected. The input
// alphabet is ASCII, so byte 0 never collides with real pattern text.
const NoChar byte = 0

// Snapshot is an immutable cursor position. Obtain one with Mark and
// hand it back to Reset to undo everything consumed in between.
type Snapshot int

// Cursor scans a fixed string one byte at a time. It never fails and
// never allocates; rejected or exhausted reads return NoChar and
// leave the position unchanged.
//
// A Cursor is created per parse and must not be shared between
// concurrent parses.
type Cursor struct {
	src string
	pos int
}

// New returns a cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src}
}

// MatchAnyChar consumes and returns the next character, or returns
// NoChar without consuming when the input is exhausted.
func (c *Cursor) MatchAnyChar() byte {
	if c.pos >= len(c.src) {
		return NoChar
	}
	ch := c.src[c.pos]
	c.pos++
	return ch
}

// MatchChar consumes the next character iff it equals ch. It reports
// whether it consumed.
func (c *Cursor) MatchChar(ch byte) bool {
	if c.pos < len(c.src) && c.src[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

// MatchCharNotIn consumes and returns the next character iff it is
// absent from set; otherwise it returns NoChar and does not consume.
func (c *Cursor) MatchCharNotIn(set string) byte {
	if c.pos >= len(c.src) {
		return NoChar
	}
	ch := c.src[c.pos]
	if strings.IndexByte(set, ch) >= 0 {
		return NoChar
	}
	c.pos++
	return ch
}

// MatchAnyCharIn consumes and returns the next character iff it is
// present in set; otherwise it returns NoChar and does not consume.
func (c *Cursor) MatchAnyCharIn(set string) byte {
	if c.pos >= len(c.src) {
		return NoChar
	}
	ch := c.src[c.pos]
	if strings.IndexByte(set, ch) < 0 {
		return NoChar
	}
	c.pos++
	return ch
}

// Mark returns a snapshot of the current position.
func (c *Cursor) Mark() Snapshot {
	return Snapshot(c.pos)
}

// Reset rewinds the cursor to a snapshot previously taken with Mark.
// Snapshots from a different cursor are not meaningful here.
func (c *Cursor) Reset(s Snapshot) {
	c.pos = int(s)
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.pos
}

// Rest returns the unconsumed suffix of the input.
func (c *Cursor) Rest() string {
	return c.src[c.pos:]
}

// Exhausted reports whether the whole input has been consumed.
func (c *Cursor) Exhausted() bool {
	return c.pos >= len(c.src)
}
