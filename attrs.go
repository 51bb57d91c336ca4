package shapesync

import (
	"maps"
	"slices"
)

// Attributes maps attribute names to their string values.
type Attributes map[string]string

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Clone returns a copy of a. A nil map clones to an empty, non-nil map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// Without returns a copy of a with the given names removed.
func (a Attributes) Without(names ...string) Attributes {
	out := a.Clone()
	for _, name := range names {
		delete(out, name)
	}
	return out
}

// AttributeDiff is the set of changes that turns one attribute map into
// another.
type AttributeDiff struct {
	// Remove holds names present before and absent after, sorted.
	Remove []string
	// Set holds names that were added or whose value changed.
	Set Attributes
}

// Empty reports whether the diff changes nothing.
func (d AttributeDiff) Empty() bool {
	return len(d.Remove) == 0 && len(d.Set) == 0
}

// DiffAttributes compares current against next. Values are compared as exact
// strings: "1" and "1.0" differ. Names with equal values in both maps appear
// in neither half of the result.
func DiffAttributes(current, next Attributes) AttributeDiff {
	d := AttributeDiff{Set: Attributes{}}
	for name := range current {
		if _, ok := next[name]; !ok {
			d.Remove = append(d.Remove, name)
		}
	}
	slices.Sort(d.Remove)
	for name, v := range next {
		if cur, ok := current[name]; !ok || cur != v {
			d.Set[name] = v
		}
	}
	return d
}
