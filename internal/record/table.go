package record

// MunicipalityTable is a unique-keyed municipality table.
//
// Iteration follows the order in which each key was first inserted; a later
// Put for an existing key replaces the value but keeps its position.
type MunicipalityTable struct {
	keys []Key
	rows map[Key]Municipality
}

// NewMunicipalityTable creates an empty table with room for n rows.
func NewMunicipalityTable(n int) *MunicipalityTable {
	return &MunicipalityTable{
		keys: make([]Key, 0, n),
		rows: make(map[Key]Municipality, n),
	}
}

// Put stores m under its key. Last write wins.
func (t *MunicipalityTable) Put(m Municipality) {
	k := m.Key()
	if _, exists := t.rows[k]; !exists {
		t.keys = append(t.keys, k)
	}

	t.rows[k] = m
}

// Get returns the municipality stored under k.
func (t *MunicipalityTable) Get(k Key) (Municipality, bool) {
	m, ok := t.rows[k]

	return m, ok
}

// Len returns the number of distinct municipalities.
func (t *MunicipalityTable) Len() int {
	return len(t.keys)
}

// All returns the municipalities in table order.
func (t *MunicipalityTable) All() []Municipality {
	out := make([]Municipality, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.rows[k])
	}

	return out
}

// ValidatorTable maps a municipality key to its validator history.
// Histories keep input order and keys keep first-seen order.
type ValidatorTable struct {
	keys    []Key
	entries map[Key][]Validator
	total   int
}

// NewValidatorTable creates an empty table.
func NewValidatorTable() *ValidatorTable {
	return &ValidatorTable{
		entries: make(map[Key][]Validator),
	}
}

// Append adds v to the history of k.
func (t *ValidatorTable) Append(k Key, v Validator) {
	if _, exists := t.entries[k]; !exists {
		t.keys = append(t.keys, k)
	}

	t.entries[k] = append(t.entries[k], v)
	t.total++
}

// History returns the validators recorded for k, in input order.
func (t *ValidatorTable) History(k Key) ([]Validator, bool) {
	h, ok := t.entries[k]

	return h, ok
}

// Keys returns every key with at least one validator, in first-seen order.
func (t *ValidatorTable) Keys() []Key {
	return append([]Key(nil), t.keys...)
}

// Len returns the number of keys with a history.
func (t *ValidatorTable) Len() int {
	return len(t.keys)
}

// Total returns the number of validator rows across all keys.
func (t *ValidatorTable) Total() int {
	return t.total
}

// Each calls fn for every validator row, grouped by key in first-seen order.
// Iteration stops when fn returns false.
func (t *ValidatorTable) Each(fn func(Key, Validator) bool) {
	for _, k := range t.keys {
		for _, v := range t.entries[k] {
			if !fn(k, v) {
				return
			}
		}
	}
}
