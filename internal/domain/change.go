package domain

// Change is the wire wrapper for field-level deltas in mutation events. It
// distinguishes three states the way the event contract requires:
//
//	nil *Change[T]          field absent, no change
//	&Change[T]{Value: nil}  field present with null, clear it
//	&Change[T]{Value: &v}   field present with value, set it
type Change[T any] struct {
	Value *T `json:"value"`
}

// Set builds a change that sets the field to v.
func Set[T any](v T) *Change[T] {
	return &Change[T]{Value: &v}
}

// Clear builds a change that clears the field.
func Clear[T any]() *Change[T] {
	return &Change[T]{}
}

// Apply writes the change into target if the change is present.
// target must not be nil. Returns true when a write happened.
func (c *Change[T]) Apply(target **T) bool {
	if c == nil {
		return false
	}
	*target = c.Value
	return true
}

// Get returns the carried value and whether one is present (set, not clear).
func (c *Change[T]) Get() (T, bool) {
	var zero T
	if c == nil || c.Value == nil {
		return zero, false
	}
	return *c.Value, true
}

// IsClear reports a present-but-null change.
func (c *Change[T]) IsClear() bool {
	return c != nil && c.Value == nil
}
