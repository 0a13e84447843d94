package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValuePair is the before/after state of one attribute.
type ValuePair struct {
	Old any
	New any
}

// ChangeSet maps attribute names to their before/after values. Iteration
// follows insertion order; re-setting a field keeps its original position.
// The zero value is an empty set ready to use. A nil *ChangeSet behaves as
// an empty set for reads; writing to it panics like writing to a nil map.
type ChangeSet struct {
	fields *orderedmap.OrderedMap[string, ValuePair]
}

// NewChangeSet returns an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{fields: orderedmap.New[string, ValuePair]()}
}

// Set records old and new values for field.
func (c *ChangeSet) Set(field string, oldValue, newValue any) {
	if c.fields == nil {
		c.fields = orderedmap.New[string, ValuePair]()
	}
	c.fields.Set(field, ValuePair{Old: oldValue, New: newValue})
}

// Get returns the pair recorded for field.
func (c *ChangeSet) Get(field string) (ValuePair, bool) {
	if c == nil || c.fields == nil {
		return ValuePair{}, false
	}
	return c.fields.Get(field)
}

// Len returns the number of changed fields.
func (c *ChangeSet) Len() int {
	if c == nil || c.fields == nil {
		return 0
	}
	return c.fields.Len()
}

// Fields returns field names in iteration order.
func (c *ChangeSet) Fields() []string {
	if c == nil || c.fields == nil {
		return nil
	}
	names := make([]string, 0, c.fields.Len())
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every field in order and stops at the first error.
func (c *ChangeSet) Each(fn func(field string, values ValuePair) error) error {
	if c == nil || c.fields == nil {
		return nil
	}
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}
