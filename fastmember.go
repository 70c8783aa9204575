// Package fastmember provides read-only, cached member metadata for Go types:
// struct fields and accessor-pair properties, unified behind one descriptor
// abstraction. See the member package for the full API.
package fastmember

import (
	"reflect"

	"github.com/GeoSTGames/fast-member/member"
)

type Collection = member.Collection
type Descriptor = member.Descriptor
type Kind = member.Kind
type Context = member.Context
type Option = member.Option
type NamingStrategy = member.NamingStrategy

const (
	KindField    = member.KindField
	KindProperty = member.KindProperty
)

var (
	ErrImmutable       = member.ErrImmutable
	ErrUnsupportedKind = member.ErrUnsupportedKind
)

// Of returns the cached member collection for t.
func Of(t reflect.Type) (*Collection, error) {
	return member.Of(t)
}

// For returns the cached member collection for T.
func For[T any]() (*Collection, error) {
	return member.For[T]()
}

// New creates a member context with its own cache and configuration.
func New(options ...Option) *Context {
	return member.New(options...)
}
