package entity

// table is a sparse component column keyed by entity id.
type table[T any] struct {
	rows map[ID]T
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[ID]T)}
}

func (t *table[T]) get(id ID) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) set(id ID, v T) {
	t.rows[id] = v
}

func (t *table[T]) has(id ID) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) remove(id ID) {
	delete(t.rows, id)
}

func (t *table[T]) count() int {
	return len(t.rows)
}
