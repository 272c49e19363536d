package explain

import (
	"strings"
)

// An indenter builds a string where every line break is followed by an indent
// that reflects the current level. Indenting the indenter yields a copy that
// shares the underlying builder but writes one level deeper.
type indenter struct {
	b *strings.Builder
	i int
	s string
}

func newIndenter(indent string) *indenter {
	return &indenter{b: &strings.Builder{}, i: 0, s: indent}
}

func (w *indenter) append(s string) {
	w.b.WriteString(s)
}

func (w *indenter) appendRune(r rune) {
	w.b.WriteRune(r)
}

func (w *indenter) indent() *indenter {
	c := *w
	c.i++
	return &c
}

func (w *indenter) len() int {
	return w.b.Len()
}

func (w *indenter) level() int {
	return w.i
}

func (w *indenter) newLine() {
	w.b.WriteByte('\n')
	for n := 0; n < w.i; n++ {
		w.b.WriteString(w.s)
	}
}

func (w *indenter) String() string {
	return w.b.String()
}
