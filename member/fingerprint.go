package member

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// fingerprintNamespace scopes shape digests to this module's UUIDv5 space.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/GeoSTGames/fast-member"))

// Fingerprint returns a deterministic UUIDv5 digest of the collection's
// shape: the type identity plus every member's name, kind, value type and
// visibility in sorted order. Two collections with identical shapes produce
// identical fingerprints in any process, so the value can key generated
// accessor caches or detect shape drift between builds.
func (c *Collection) Fingerprint() uuid.UUID {
	var b strings.Builder
	b.Grow(64 + len(c.members)*48)

	b.WriteString(c.typ.String())
	for _, d := range c.members {
		b.WriteByte('\n')
		b.WriteString(d.Name())
		b.WriteByte('|')
		b.WriteString(d.kind.String())
		b.WriteByte('|')
		b.WriteString(d.ValueType().String())
		b.WriteByte('|')
		b.WriteString(strconv.FormatBool(d.IsPublic()))
	}

	return uuid.NewSHA1(fingerprintNamespace, []byte(b.String()))
}
