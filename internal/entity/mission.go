package entity

import "fmt"

// Mission is a unit's current behavioural goal.
// Implementations are Stay, GoTo and Chop; consumers switch on the concrete type.
type Mission interface {
	// String returns the short label shown in the unit list.
	String() string
	mission()
}

// Stay is the idle mission. A unit in Stay never moves.
type Stay struct{}

// GoTo walks a unit in a straight line towards (X, Y).
type GoTo struct {
	X, Y int
}

// Chop targets a choppable entity. It currently has no behaviour.
type Chop struct {
	Target ID
}

func (Stay) mission() {}
func (GoTo) mission() {}
func (Chop) mission() {}

// String returns "Stay".
func (Stay) String() string { return "Stay" }

// String returns "GoTo x:y".
func (g GoTo) String() string { return fmt.Sprintf("GoTo %d:%d", g.X, g.Y) }

// String returns "Chop".
func (Chop) String() string { return "Chop" }

// Describe returns the label for m, treating a nil mission as Stay.
func Describe(m Mission) string {
	if m == nil {
		return Stay{}.String()
	}
	return m.String()
}
