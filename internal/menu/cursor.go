package menu

import "fmt"

// Cursor is the selection index into the store's ordered unit list.
// Every method panics when count is zero or the index is out of range;
// both mean the caller broke the contract.
type Cursor struct {
	index int
}

// Index returns the selected position.
func (c *Cursor) Index() int {
	return c.index
}

// Next moves to the following unit, wrapping to 0 after the last.
func (c *Cursor) Next(count int) {
	c.check(count)
	c.index = (c.index + 1) % count
}

// Prev moves to the preceding unit, wrapping to count-1 before 0.
func (c *Cursor) Prev(count int) {
	c.check(count)
	c.index = (c.index + count - 1) % count
}

// Selected returns the index after validating it against count.
func (c *Cursor) Selected(count int) int {
	c.check(count)
	return c.index
}

func (c *Cursor) check(count int) {
	if count <= 0 {
		panic("menu: selection with no units")
	}
	if c.index < 0 || c.index >= count {
		panic(fmt.Sprintf("menu: selection index %d out of range [0,%d)", c.index, count))
	}
}
