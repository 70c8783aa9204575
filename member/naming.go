package member

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// Naming utilities for member aliases and entity-set names.
// Supports configurable conventions for both member and type names.

// pluralizeClient is a singleton instance for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// =========================================================================
// Core Interfaces
// =========================================================================

// NamingStrategy defines the complete naming configuration for a context.
// Combines member and type naming strategies with cardinality settings.
type NamingStrategy interface {
	MemberNamingStrategy
	TypeNamingStrategy
	CardinalityProvider
}

// MemberNamingStrategy defines how declared member names are converted to
// storage aliases.
type MemberNamingStrategy interface {
	// MemberName converts a declared member name to a storage alias.
	// Should return consistent results for the same input.
	MemberName(memberName string) string
}

// TypeNamingStrategy defines how type names are converted to entity-set
// names.
type TypeNamingStrategy interface {
	// TypeName converts a type name to an entity-set name.
	// Should return consistent results for the same input.
	TypeName(typeName string) string
}

// CardinalityProvider defines whether entity-set names are pluralized.
type CardinalityProvider interface {
	// IsPlural returns true if entity-set names are pluralized.
	IsPlural() bool
}

// =========================================================================
// Member Naming Strategies
// =========================================================================

// MemberNamingType represents different member naming conventions.
type MemberNamingType int

const (
	MemberSnakeCase  MemberNamingType = iota // user_id, first_name, created_at
	MemberCamelCase                          // userId, firstName, createdAt
	MemberPascalCase                         // UserId, FirstName, CreatedAt
)

// memberNamingStrategy implements MemberNamingStrategy for different naming conventions.
type memberNamingStrategy struct {
	namingType MemberNamingType
}

// NewMemberNamingStrategy creates a new member naming strategy.
func NewMemberNamingStrategy(namingType MemberNamingType) MemberNamingStrategy {
	return &memberNamingStrategy{namingType: namingType}
}

// MemberName converts member names according to the configured strategy.
func (m *memberNamingStrategy) MemberName(memberName string) string {
	switch m.namingType {
	case MemberSnakeCase:
		return toSnakeCase(memberName)
	case MemberCamelCase:
		return toCamelCase(memberName)
	case MemberPascalCase:
		return toPascalCase(memberName)
	default:
		return toSnakeCase(memberName) // Default to snake_case
	}
}

// =========================================================================
// Type Naming Strategies
// =========================================================================

// TypeNamingType represents different entity-set naming conventions.
type TypeNamingType int

const (
	TypeSnakeCaseSingular  TypeNamingType = iota // user, blog_post, oauth2_token
	TypeSnakeCasePlural                          // users, blog_posts, oauth2_tokens
	TypeCamelCaseSingular                        // user, blogPost, oauth2Token
	TypeCamelCasePlural                          // users, blogPosts, oauth2Tokens
	TypePascalCaseSingular                       // User, BlogPost, Oauth2Token
	TypePascalCasePlural                         // Users, BlogPosts, Oauth2Tokens
)

// typeNamingStrategy implements TypeNamingStrategy for different naming conventions.
type typeNamingStrategy struct {
	namingType TypeNamingType
}

// NewTypeNamingStrategy creates a new type naming strategy.
func NewTypeNamingStrategy(namingType TypeNamingType) TypeNamingStrategy {
	return &typeNamingStrategy{namingType: namingType}
}

// TypeName converts type names according to the configured strategy.
func (t *typeNamingStrategy) TypeName(typeName string) string {
	switch t.namingType {
	case TypeSnakeCaseSingular:
		return toSnakeCase(typeName)
	case TypeSnakeCasePlural:
		return pluralize(toSnakeCase(typeName))
	case TypeCamelCaseSingular:
		return toCamelCase(typeName)
	case TypeCamelCasePlural:
		return pluralize(toCamelCase(typeName))
	case TypePascalCaseSingular:
		return toPascalCase(typeName)
	case TypePascalCasePlural:
		return pluralize(toPascalCase(typeName))
	default:
		// Default to snake_case plural (most common)
		return pluralize(toSnakeCase(typeName))
	}
}

// IsPlural returns whether this strategy produces plural entity-set names.
func (t *typeNamingStrategy) IsPlural() bool {
	switch t.namingType {
	case TypeSnakeCasePlural, TypeCamelCasePlural, TypePascalCasePlural:
		return true
	default:
		return false
	}
}

// =========================================================================
// Cardinality Provider
// =========================================================================

// cardinalityProvider implements CardinalityProvider with configurable pluralization.
type cardinalityProvider struct {
	plural bool
}

// NewCardinalityProvider creates a new cardinality provider.
func NewCardinalityProvider(plural bool) CardinalityProvider {
	return &cardinalityProvider{plural: plural}
}

// IsPlural returns the configured pluralization setting.
func (c *cardinalityProvider) IsPlural() bool {
	return c.plural
}

// =========================================================================
// Combined Naming Strategies
// =========================================================================

// CombinedNamingStrategy combines member and type naming strategies.
type CombinedNamingStrategy struct {
	MemberNamingStrategy
	TypeNamingStrategy
	CardinalityProvider
}

// NewCombinedNamingStrategy creates a complete naming strategy.
func NewCombinedNamingStrategy(
	memberNamingStrategy MemberNamingStrategy,
	typeNamingStrategy TypeNamingStrategy,
	cardinalityProvider CardinalityProvider,
) NamingStrategy {
	return &CombinedNamingStrategy{
		MemberNamingStrategy: memberNamingStrategy,
		TypeNamingStrategy:   typeNamingStrategy,
		CardinalityProvider:  cardinalityProvider,
	}
}

// =========================================================================
// Predefined Strategies (Common Combinations)
// =========================================================================

// DefaultNamingStrategy returns the default snake_case strategy with plural
// entity-set names.
func DefaultNamingStrategy() NamingStrategy {
	return NewCombinedNamingStrategy(
		NewMemberNamingStrategy(MemberSnakeCase),
		NewTypeNamingStrategy(TypeSnakeCasePlural),
		NewCardinalityProvider(true),
	)
}

// JSONAPIStrategy returns camelCase members with plural snake_case entity
// sets. Common for JSON APIs backed by traditional storage.
func JSONAPIStrategy() NamingStrategy {
	return NewCombinedNamingStrategy(
		NewMemberNamingStrategy(MemberCamelCase),
		NewTypeNamingStrategy(TypeSnakeCasePlural),
		NewCardinalityProvider(true),
	)
}

// NoSQLStrategy returns camelCase for both members and entity sets (document
// store style).
func NoSQLStrategy() NamingStrategy {
	return NewCombinedNamingStrategy(
		NewMemberNamingStrategy(MemberCamelCase),
		NewTypeNamingStrategy(TypeCamelCasePlural),
		NewCardinalityProvider(true),
	)
}

// GraphQLStrategy returns PascalCase for both members and entity sets.
func GraphQLStrategy() NamingStrategy {
	return NewCombinedNamingStrategy(
		NewMemberNamingStrategy(MemberPascalCase),
		NewTypeNamingStrategy(TypePascalCasePlural),
		NewCardinalityProvider(true),
	)
}

// =========================================================================
// Core Conversion Functions
// =========================================================================

// toSnakeCase converts any naming convention to snake_case.
// Handles complex cases including acronyms, numbers, and edge cases.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Handle special common cases for performance
	switch name {
	case "ID":
		return "id"
	case "UUID":
		return "uuid"
	case "ULID":
		return "ulid"
	case "URL":
		return "url"
	case "HTTP":
		return "http"
	case "HTTPS":
		return "https"
	case "API":
		return "api"
	case "JSON":
		return "json"
	case "XML":
		return "xml"
	case "SQL":
		return "sql"
	case "HTML":
		return "html"
	case "JWT":
		return "jwt"
	case "OAuth":
		return "o_auth"
	case "OAuth2":
		return "o_auth2"
	}

	// If already snake_case (contains underscores and no uppercase), return as-is
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 10) // Pre-allocate with some extra space for underscores

	runes := []rune(name)

	for i, r := range runes {
		lower := unicode.ToLower(r)

		// Add underscore before uppercase letters in these cases:
		// 1. Previous char is lowercase or digit: aB -> a_b, a1B -> a1_b
		// 2. Previous char is uppercase, but next char is lowercase: ABc -> a_bc
		needsUnderscore := false
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				needsUnderscore = true
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				needsUnderscore = true
			}
		}

		if needsUnderscore {
			result.WriteByte('_')
		}

		result.WriteRune(lower)
	}

	return result.String()
}

// toCamelCase converts any naming convention to camelCase.
func toCamelCase(name string) string {
	pascal := toPascalCase(name)
	if pascal == "" {
		return ""
	}

	if len(pascal) == 1 {
		return strings.ToLower(pascal)
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// toPascalCase converts any naming convention to PascalCase.
func toPascalCase(name string) string {
	if name == "" {
		return ""
	}

	// Normalize through snake_case first so mixed inputs split cleanly
	snake := toSnakeCase(name)

	var result strings.Builder
	result.Grow(len(snake))

	for _, part := range strings.Split(snake, "_") {
		if part == "" {
			continue
		}
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(part[1:])
	}

	return result.String()
}

// =========================================================================
// Pluralization Functions
// =========================================================================

// pluralize converts singular nouns to their plural forms.
func pluralize(name string) string {
	if name == "" {
		return ""
	}

	// Handle some common special cases for performance
	switch strings.ToLower(name) {
	case "person":
		return preserveCase(name, "people")
	case "child":
		return preserveCase(name, "children")
	case "mouse":
		return preserveCase(name, "mice")
	case "goose":
		return preserveCase(name, "geese")
	case "tooth":
		return preserveCase(name, "teeth")
	case "foot":
		return preserveCase(name, "feet")
	case "man":
		return preserveCase(name, "men")
	case "woman":
		return preserveCase(name, "women")
	case "datum":
		return preserveCase(name, "data")
	case "medium":
		return preserveCase(name, "media")
	case "criterion":
		return preserveCase(name, "criteria")
	case "phenomenon":
		return preserveCase(name, "phenomena")
	}

	// Use the pluralizer library for general cases
	plural := pluralizeClient.Pluralize(name, 2, false)
	return preserveCase(name, plural)
}

// singularize converts plural nouns to their singular forms.
func singularize(name string) string {
	if name == "" {
		return ""
	}

	// Handle special cases
	switch strings.ToLower(name) {
	case "people":
		return preserveCase(name, "person")
	case "children":
		return preserveCase(name, "child")
	case "mice":
		return preserveCase(name, "mouse")
	case "geese":
		return preserveCase(name, "goose")
	case "teeth":
		return preserveCase(name, "tooth")
	case "feet":
		return preserveCase(name, "foot")
	case "men":
		return preserveCase(name, "man")
	case "women":
		return preserveCase(name, "woman")
	case "data":
		return preserveCase(name, "datum")
	case "media":
		return preserveCase(name, "medium")
	case "criteria":
		return preserveCase(name, "criterion")
	case "phenomena":
		return preserveCase(name, "phenomenon")
	}

	// Use the pluralizer library
	singular := pluralizeClient.Pluralize(name, 1, false)
	return preserveCase(name, singular)
}

// =========================================================================
// Utility Functions
// =========================================================================

// hasUpperCase returns true if the string contains any uppercase letters.
func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// preserveCase preserves the case pattern of the original string in the result.
func preserveCase(original, result string) string {
	if original == "" || result == "" {
		return result
	}

	// If original is all lowercase, return lowercase result
	if strings.ToLower(original) == original {
		return strings.ToLower(result)
	}

	// If original is all uppercase, return uppercase result
	if strings.ToUpper(original) == original {
		return strings.ToUpper(result)
	}

	// Mixed case: the pluralizer only rewrites the word tail, so interior
	// casing is already intact. Align the first rune with the original.
	if unicode.IsUpper(rune(original[0])) && !unicode.IsUpper(rune(result[0])) {
		return strings.ToUpper(result[:1]) + result[1:]
	}
	if unicode.IsLower(rune(original[0])) && !unicode.IsLower(rune(result[0])) {
		return strings.ToLower(result[:1]) + result[1:]
	}
	return result
}
