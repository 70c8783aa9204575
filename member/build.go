package member

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/containerd/errdefs"
)

// buildCollection constructs the member collection for t under the context's
// naming strategy and ordinal tag key. Pointer types are unwrapped first.
// Struct types contribute fields and accessor-pair properties; interface
// types contribute properties from their method set; every other kind yields
// a property-only (possibly empty) collection.
//
// Parameters:
//   - t: the type to describe, must not be nil
//   - ctx: the owning context, supplies naming and the ordinal tag key
//
// Returns the collection or an InvalidArgument error for a nil type.
func buildCollection(t reflect.Type, ctx *Context) (*Collection, error) {
	if t == nil {
		return nil, fmt.Errorf("member: cannot describe nil type: %w", errdefs.ErrInvalidArgument)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fields := collectFields(t)
	pairs := collectProperties(t, fields)

	members := make([]*Descriptor, 0, len(fields)+len(pairs))
	for _, f := range fields {
		members = append(members, &Descriptor{
			kind:       KindField,
			field:      f,
			alias:      ctx.naming.MemberName(f.Name),
			ordinalTag: ctx.ordinalTag,
		})
	}
	for _, p := range pairs {
		members = append(members, &Descriptor{
			kind:       KindProperty,
			name:       p.name,
			setter:     p.setter,
			hasGet:     p.hasGet,
			hasSet:     p.hasSet,
			propType:   p.typ,
			backing:    p.backing,
			alias:      ctx.naming.MemberName(p.name),
			ordinalTag: ctx.ordinalTag,
		})
	}

	// Byte-wise ascending by declared name. Exported names sort before
	// unexported ones, which is part of the published ordering contract.
	slices.SortFunc(members, func(a, b *Descriptor) int {
		return strings.Compare(a.Name(), b.Name())
	})

	byName := make(map[string]*Descriptor, len(members))
	byAlias := make(map[string]*Descriptor, len(members))
	for _, d := range members {
		byName[d.Name()] = d
		if _, taken := byAlias[d.alias]; !taken {
			// First member in sorted order claims a shared alias.
			byAlias[d.alias] = d
		}
	}

	name := t.Name()
	if name == "" {
		name = t.String()
	}

	return &Collection{
		typ:     t,
		name:    name,
		plural:  ctx.naming.TypeName(name),
		members: members,
		byName:  byName,
		byAlias: byAlias,
	}, nil
}

// collectFields flattens t's own and embedded struct fields into a name-keyed
// map, applying Go's promotion rules: a shallower field shadows deeper ones
// of the same name, and two occurrences at the same depth cancel each other.
// Anonymous container fields are traversed, never reported as members.
// Exported and unexported fields both count; visibility surfaces through
// Descriptor.IsPublic.
func collectFields(t reflect.Type) map[string]reflect.StructField {
	collected := make(map[string]reflect.StructField)
	if t.Kind() != reflect.Struct {
		return collected
	}

	type occurrence struct {
		field reflect.StructField
		paths int
	}

	// Breadth-first over embedding levels. Path multiplicity per type is
	// carried level to level so a diamond (the same struct embedded through
	// two siblings) is seen as ambiguous, not as a single field.
	resolved := make(map[string]bool)
	visited := make(map[reflect.Type]bool)
	level := map[reflect.Type]int{t: 1}

	for len(level) > 0 {
		next := make(map[reflect.Type]int)
		names := make(map[string]*occurrence)

		for st, paths := range level {
			if visited[st] {
				continue
			}
			visited[st] = true

			for i := 0; i < st.NumField(); i++ {
				f := st.Field(i)
				if f.Anonymous {
					ft := f.Type
					if ft.Kind() == reflect.Pointer {
						ft = ft.Elem()
					}
					if ft.Kind() == reflect.Struct && !visited[ft] {
						next[ft] += paths
					}
					continue
				}
				if o, ok := names[f.Name]; ok {
					o.paths += paths
				} else {
					names[f.Name] = &occurrence{field: f, paths: paths}
				}
			}
		}

		for name, o := range names {
			if resolved[name] {
				continue
			}
			resolved[name] = true
			if o.paths == 1 {
				collected[name] = o.field
			}
		}
		level = next
	}

	return collected
}

// accessorPair accumulates the getter and setter halves of one property while
// the method set is scanned.
type accessorPair struct {
	name    string
	setter  reflect.Method
	hasGet  bool
	hasSet  bool
	typ     reflect.Type
	backing *reflect.StructField
}

// collectProperties derives properties from t's full method set: the pointer
// method set for concrete types, the declared set for interface types. A
// getter is any zero-parameter single-result method; a setter is any
// Set-prefixed single-parameter no-result method, paired by the trimmed name.
//
// A setter is sufficient evidence on its own. A lone getter on a concrete
// type qualifies only when a conventional backing field exists, which keeps
// fmt.Stringer, error and similar incidental method shapes out of the member
// list. Interface types declare their surface explicitly, so lone getters
// qualify there. A field claims its name over any same-named property.
func collectProperties(t reflect.Type, fields map[string]reflect.StructField) map[string]*accessorPair {
	pairs := make(map[string]*accessorPair)

	iface := t.Kind() == reflect.Interface
	mt := t
	if !iface {
		mt = reflect.PointerTo(t)
	}

	for i := 0; i < mt.NumMethod(); i++ {
		m := mt.Method(i)
		sig := m.Type

		// Concrete method signatures carry the receiver as input zero.
		in := sig.NumIn()
		if !iface {
			in--
		}

		switch {
		case isSetterName(m.Name) && in == 1 && sig.NumOut() == 0:
			name := m.Name[len(setterPrefix):]
			p := pairs[name]
			if p == nil {
				p = &accessorPair{name: name}
				pairs[name] = p
			}
			p.setter = m
			p.hasSet = true
			if p.typ == nil {
				p.typ = sig.In(sig.NumIn() - 1)
			}
		case in == 0 && sig.NumOut() == 1 && !isSetterName(m.Name):
			p := pairs[m.Name]
			if p == nil {
				p = &accessorPair{name: m.Name}
				pairs[m.Name] = p
			}
			p.hasGet = true
			// The getter result is authoritative for the property type even
			// when the setter was scanned first.
			p.typ = sig.Out(0)
		}
	}

	for name, p := range pairs {
		if _, taken := fields[name]; taken {
			delete(pairs, name)
			continue
		}
		p.backing = backingField(name, fields)
		if !p.hasSet && !iface && p.backing == nil {
			delete(pairs, name)
		}
	}

	return pairs
}

const setterPrefix = "Set"

// isSetterName reports whether name follows the Set<Member> convention with a
// non-empty, uppercase-initial member part.
func isSetterName(name string) bool {
	if len(name) <= len(setterPrefix) || !strings.HasPrefix(name, setterPrefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len(setterPrefix):])
	return unicode.IsUpper(r)
}

// backingField resolves the unexported field conventionally backing a
// property: the property name with its first rune lowered. An exported field
// never backs a property, it is a member in its own right.
func backingField(name string, fields map[string]reflect.StructField) *reflect.StructField {
	r, size := utf8.DecodeRuneInString(name)
	lowered := string(unicode.ToLower(r)) + name[size:]
	if lowered == name {
		return nil
	}
	if f, ok := fields[lowered]; ok && !f.IsExported() {
		return &f
	}
	return nil
}
