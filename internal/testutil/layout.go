package testutil

import (
	"fmt"
	"unicode"
)

// Layout builds a row-major layout from a board diagram, top row first.
// '.' is an empty square; upper case letters are white pieces and lower case
// black, using the piece letters p n b r q k.
//
//	Layout(
//		"....k...",
//		"........",
//		...
//	)
func Layout(rows ...string) []string {
	var layout []string
	for _, row := range rows {
		for _, c := range row {
			layout = append(layout, squareCode(c))
		}
	}
	return layout
}

func squareCode(c rune) string {
	if c == '.' {
		return ""
	}
	colour := "w"
	if unicode.IsLower(c) {
		colour = "b"
	}
	switch unicode.ToLower(c) {
	case 'p', 'n', 'b', 'r', 'q', 'k':
		return colour + string(unicode.ToLower(c))
	}
	panic(fmt.Sprintf("testutil: unknown diagram piece %q", c))
}
