package member

// Kind tags the payload a Descriptor carries.
type Kind uint8

const (
	// KindInvalid is the zero value. Descriptors produced by this package
	// never carry it.
	KindInvalid Kind = iota

	// KindField marks a descriptor wrapping a struct field, own or promoted
	// through anonymous embedding.
	KindField

	// KindProperty marks a descriptor wrapping an accessor method pair:
	// a getter X() T, a setter SetX(T), or both.
	KindProperty
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	default:
		return "invalid"
	}
}
