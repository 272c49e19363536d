package api_test

import (
	"fmt"
	"testing"

	"github.com/lyraproj/provide/api"
	"github.com/stretchr/testify/require"
)

func ExampleParseName_simple() {
	n := api.ParseName(`simple`)
	fmt.Printf(`%s, %d`, n.Source(), len(n.Parts()))
	// Output: simple, 1
}

func ExampleParseName_dotted() {
	n := api.ParseName(`a.b.c`)
	fmt.Printf(`%s, %d`, n.Source(), len(n.Parts()))
	// Output: a.b.c, 3
}

func ExampleParseName_dottedInt() {
	n := api.ParseName(`a.3`)
	fmt.Printf(`%T`, n.Parts()[1])
	// Output: int
}

func ExampleParseName_quoted() {
	n := api.ParseName(`'a.b.c'`)
	fmt.Printf(`%s, %d`, n.Source(), len(n.Parts()))
	// Output: 'a.b.c', 1
}

func ExampleParseName_doubleQuoted() {
	n := api.ParseName(`"a.b.c"`)
	fmt.Printf(`%s, %d`, n.Source(), len(n.Parts()))
	// Output: "a.b.c", 1
}

func ExampleParseName_quotedDot() {
	n := api.ParseName(`a.'b.c'`)
	fmt.Printf(`%s, %d, %s`, n.Source(), len(n.Parts()), n.Parts()[1])
	// Output: a.'b.c', 2, b.c
}

func TestParseName_quotedDotX(t *testing.T) {
	n := api.ParseName(`a.'b.c'.d`)
	require.Equal(t, 3, len(n.Parts()))
	require.Equal(t, `b.c`, n.Parts()[1])
}

func TestParseName_quotedQuote(t *testing.T) {
	n := api.ParseName(`a.b.'c"d"e'`)
	require.Equal(t, `c"d"e`, n.Parts()[2])
}

func TestParseName_doubleQuotedQuote(t *testing.T) {
	n := api.ParseName(`a.b."c'd'e"`)
	require.Equal(t, `c'd'e`, n.Parts()[2])
}

func TestParseName_unterminatedQuote(t *testing.T) {
	require.PanicsWithError(t, `unterminated quote in name 'a.b."c'`, func() { api.ParseName(`a.b."c`) })
}

func TestParseName_empty(t *testing.T) {
	require.PanicsWithError(t, `name '' contains an empty segment`, func() { api.ParseName(``) })
}

func TestParseName_emptySegment(t *testing.T) {
	require.PanicsWithError(t, `name 'a..b' contains an empty segment`, func() { api.ParseName(`a..b`) })
}

func TestParseName_emptySegmentStart(t *testing.T) {
	require.PanicsWithError(t, `name 'a.' contains an empty segment`, func() { api.ParseName(`a.`) })
}

func TestParseName_emptySegmentEnd(t *testing.T) {
	require.PanicsWithError(t, `name '.b' contains an empty segment`, func() { api.ParseName(`.b`) })
}

func TestParseName_firstSegmentIndex(t *testing.T) {
	require.PanicsWithError(t, `name '1.a' first segment cannot be an index`, func() { api.ParseName(`1.a`) })
}
