package interpreter

import (
	"fmt"

	"github.com/ezrec/hrm/tape"
)

// Slot is a storage place that is either empty or holds a value.
// The zero Slot is empty.
type Slot struct {
	value tape.Value
	full  bool
}

// Get returns the value, and false if the slot is empty.
func (s *Slot) Get() (value tape.Value, ok bool) {
	return s.value, s.full
}

// Set stores a value.
func (s *Slot) Set(value tape.Value) {
	s.value = value
	s.full = true
}

// Clear empties the slot.
func (s *Slot) Clear() {
	*s = Slot{}
}

// Empty is true if no value is held.
func (s *Slot) Empty() bool {
	return !s.full
}

// String returns the value, or "-" when empty.
func (s Slot) String() string {
	if !s.full {
		return "-"
	}
	return fmt.Sprintf("%d", s.value)
}
