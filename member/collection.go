package member

import (
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/containerd/errdefs"
)

// Collection is the read-only, name-ordered member list of one type. A
// collection is built once per type and context, then shared: every method is
// safe for concurrent use and the member order never changes.
//
// The order is byte-wise ascending by declared name, so all exported members
// come before all unexported ones.
type Collection struct {
	typ     reflect.Type
	name    string
	plural  string
	members []*Descriptor
	byName  map[string]*Descriptor
	byAlias map[string]*Descriptor
}

// Type returns the type the collection describes. Pointer types are
// normalized to their element type before construction.
func (c *Collection) Type() reflect.Type { return c.typ }

// Name returns the type's declared name, or its string form for unnamed
// types.
func (c *Collection) Name() string { return c.name }

// Plural returns the entity-set name produced by the context's naming
// strategy, e.g. "accounts" for a type named Account under the default
// strategy.
func (c *Collection) Plural() string { return c.plural }

// Count returns the number of members.
func (c *Collection) Count() int { return len(c.members) }

// At returns the i-th member in sorted order.
func (c *Collection) At(i int) (*Descriptor, error) {
	if i < 0 || i >= len(c.members) {
		return nil, fmt.Errorf("member index %d out of range [0,%d): %w",
			i, len(c.members), errdefs.ErrOutOfRange)
	}
	return c.members[i], nil
}

// All returns an iterator over the members in sorted order. The sequence is
// restartable: each range over it walks the full collection again.
func (c *Collection) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range c.members {
			if !yield(d) {
				return
			}
		}
	}
}

// Lookup returns the member with the given declared name.
func (c *Collection) Lookup(name string) (*Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// LookupAlias returns the member owning the given storage alias. When two
// members map to the same alias, the first in sorted order owns it.
func (c *Collection) LookupAlias(alias string) (*Descriptor, bool) {
	d, ok := c.byAlias[alias]
	return d, ok
}

// Names returns the member names in sorted order. The slice is a fresh copy.
func (c *Collection) Names() []string {
	names := make([]string, len(c.members))
	for i, d := range c.members {
		names[i] = d.Name()
	}
	return names
}

// IndexOf returns the position of d in sorted order, or -1 when d does not
// belong to this collection. Membership is identity, not name equality.
func (c *Collection) IndexOf(d *Descriptor) int {
	for i, m := range c.members {
		if m == d {
			return i
		}
	}
	return -1
}

// Contains reports whether d belongs to this collection.
func (c *Collection) Contains(d *Descriptor) bool { return c.IndexOf(d) >= 0 }

// IsReadOnly always reports true.
func (c *Collection) IsReadOnly() bool { return true }

// ============================================================================
// Mutating surface
// ============================================================================

// Collections expose the ordered-list mutators so they satisfy generic list
// contracts, but every one of them fails with ErrImmutable and leaves the
// collection untouched.

// Add always fails with ErrImmutable.
func (c *Collection) Add(*Descriptor) error {
	return fmt.Errorf("add member: %w", ErrImmutable)
}

// Insert always fails with ErrImmutable.
func (c *Collection) Insert(int, *Descriptor) error {
	return fmt.Errorf("insert member: %w", ErrImmutable)
}

// Set always fails with ErrImmutable.
func (c *Collection) Set(int, *Descriptor) error {
	return fmt.Errorf("set member: %w", ErrImmutable)
}

// Remove always fails with ErrImmutable.
func (c *Collection) Remove(*Descriptor) error {
	return fmt.Errorf("remove member: %w", ErrImmutable)
}

// RemoveAt always fails with ErrImmutable.
func (c *Collection) RemoveAt(int) error {
	return fmt.Errorf("remove member at index: %w", ErrImmutable)
}

// Clear always fails with ErrImmutable.
func (c *Collection) Clear() error {
	return fmt.Errorf("clear members: %w", ErrImmutable)
}

// Describe renders the collection as an aligned table for debugging.
func (c *Collection) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d members):\n", c.name, len(c.members))
	for i, d := range c.members {
		ord := "-"
		if v, err := d.Ordinal(); err != nil {
			ord = "!"
		} else if v >= 0 {
			ord = strconv.Itoa(v)
		}
		fmt.Fprintf(&b, "  %2d. %-24s %-8s %-20s public=%-5t alias=%-24s ordinal=%s\n",
			i, d.Name(), d.kind, d.ValueType(), d.IsPublic(), d.alias, ord)
	}
	return b.String()
}
