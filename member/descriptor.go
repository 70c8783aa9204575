package member

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/containerd/errdefs"
)

// Descriptor is the immutable per-member view of a Collection. It wraps
// exactly one underlying handle, either a struct field or an accessor method
// pair, and answers every metadata query from that handle. Tag-backed data
// (ordinals, attribute lookups) is re-read from the handle on each call, so
// results always reflect the tag state of the loaded type.
//
// Descriptors are created by collection construction only and are safe for
// concurrent use.
type Descriptor struct {
	kind  Kind
	alias string

	// Field payload, set when kind == KindField.
	field reflect.StructField

	// Property payload, set when kind == KindProperty. A property has a
	// getter, a setter, or both; propType is the getter result type, falling
	// back to the setter parameter type for write-only properties. backing
	// points at the conventional backing field when one exists and serves as
	// the attribute source for inherited lookups.
	name     string
	setter   reflect.Method
	hasGet   bool
	hasSet   bool
	propType reflect.Type
	backing  *reflect.StructField

	// ordinalTag is the tag key Ordinal reads, fixed by the owning Context.
	ordinalTag string
}

// Name returns the member's declared Go name.
func (d *Descriptor) Name() string {
	if d.kind == KindField {
		return d.field.Name
	}
	return d.name
}

// Kind reports whether the descriptor wraps a field or a property.
func (d *Descriptor) Kind() Kind { return d.kind }

// IsField reports whether the member is a struct field.
func (d *Descriptor) IsField() bool { return d.kind == KindField }

// IsProperty reports whether the member is an accessor-pair property.
func (d *Descriptor) IsProperty() bool { return d.kind == KindProperty }

// Alias returns the storage alias assigned by the collection's naming
// strategy at construction.
func (d *Descriptor) Alias() string { return d.alias }

// ValueType returns the member's value type: the field type for field
// members, the getter result type for property members (or the setter
// parameter type when the property is write-only).
func (d *Descriptor) ValueType() reflect.Type {
	if d.kind == KindField {
		return d.field.Type
	}
	return d.propType
}

// IsPublic reports the member's visibility and is defined for both kinds.
// Fields report their own exported flag. Properties take the visibility of
// their setter, so a read-only property reports non-public.
func (d *Descriptor) IsPublic() bool {
	if d.kind == KindField {
		return d.field.IsExported()
	}
	return d.hasSet && d.setter.IsExported()
}

// CanRead reports whether a property member has a getter. The query is
// defined for properties only; field members fail with ErrUnsupportedKind.
// IsPublic is the kind-independent visibility check.
func (d *Descriptor) CanRead() (bool, error) {
	if d.kind != KindProperty {
		return false, fmt.Errorf("CanRead on %s member %q: %w", d.kind, d.Name(), ErrUnsupportedKind)
	}
	return d.hasGet, nil
}

// CanWrite reports whether a property member has a setter. Like CanRead it
// is defined for properties only.
func (d *Descriptor) CanWrite() (bool, error) {
	if d.kind != KindProperty {
		return false, fmt.Errorf("CanWrite on %s member %q: %w", d.kind, d.Name(), ErrUnsupportedKind)
	}
	return d.hasSet, nil
}

// Ordinal reads the designated ordinal tag key and returns its value, or -1
// when the member carries no ordinal. The tag value must be a single base-10
// integer; anything else fails with a FailedPrecondition error rather than a
// silent zero.
func (d *Descriptor) Ordinal() (int, error) {
	raw, ok := d.lookupTag(d.ordinalTag, true)
	if !ok {
		return -1, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("member %q: ordinal tag value %q is not a single integer: %w",
			d.Name(), raw, errdefs.ErrFailedPrecondition)
	}
	return v, nil
}

// HasAttribute reports whether the given tag key is present on the member's
// attribute source, including the backing field of a property. The key must
// not be empty.
func (d *Descriptor) HasAttribute(key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("attribute key must not be empty: %w", errdefs.ErrInvalidArgument)
	}
	_, ok := d.lookupTag(key, true)
	return ok, nil
}

// Attribute returns the raw tag value for key and whether it was present.
// Properties carry no tags of their own; with inherit set the lookup falls
// back to the property's backing field. An empty key is simply absent.
func (d *Descriptor) Attribute(key string, inherit bool) (string, bool) {
	return d.lookupTag(key, inherit)
}

// lookupTag resolves a tag key against the member's attribute source: the
// field's own tag, or, when inherit is set, the backing field of a property.
func (d *Descriptor) lookupTag(key string, inherit bool) (string, bool) {
	switch d.kind {
	case KindField:
		return d.field.Tag.Lookup(key)
	case KindProperty:
		if inherit && d.backing != nil {
			return d.backing.Tag.Lookup(key)
		}
	}
	return "", false
}

// String formats the member for logs and debug output.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s %s %s", d.kind, d.Name(), d.ValueType())
}
