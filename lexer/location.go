package lexer

import (
	"fmt"
)

// Location is a 1-based line and column in the program text.
type Location struct {
	Line   int
	Column int
}

// String returns the location as "line:column".
func (loc Location) String() string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}

// Located pairs a value with the place in the program text it came from.
type Located[T any] struct {
	Value    T
	Location Location
}

// At creates a located value.
func At[T any](value T, loc Location) Located[T] {
	return Located[T]{Value: value, Location: loc}
}

// String returns the value prefixed by its location.
func (lv Located[T]) String() string {
	return fmt.Sprintf("%v: %v", lv.Location, lv.Value)
}
