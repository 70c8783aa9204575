package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =========================================================================
// Case Conversion Tests
// =========================================================================

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"A", "a"},
		{"ID", "id"},
		{"UUID", "uuid"},
		{"ULID", "ulid"},
		{"URL", "url"},
		{"FirstName", "first_name"},
		{"firstName", "first_name"},
		{"userID", "user_id"},
		{"HTMLBody", "html_body"},
		{"OAuth2Token", "o_auth2_token"},
		{"CreatedAt", "created_at"},
		{"already_snake", "already_snake"},
		{"Mixed_Snake", "mixed_snake"},
		{"a1B", "a1_b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toSnakeCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"first_name", "firstName"},
		{"FirstName", "firstName"},
		{"ID", "id"},
		{"user", "user"},
		{"HTMLBody", "htmlBody"},
		{"created_at", "createdAt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toCamelCase(tt.input))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"first_name", "FirstName"},
		{"firstName", "FirstName"},
		{"id", "Id"},
		{"user_id", "UserId"},
		{"created_at", "CreatedAt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toPascalCase(tt.input))
		})
	}
}

// =========================================================================
// Pluralization Tests
// =========================================================================

func TestPluralize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"user", "users"},
		{"box", "boxes"},
		{"category", "categories"},
		{"person", "people"},
		{"Person", "People"},
		{"child", "children"},
		{"sheep", "sheep"},
		{"blogPost", "blogPosts"},
		{"BlogPost", "BlogPosts"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, pluralize(tt.input))
		})
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"users", "user"},
		{"categories", "category"},
		{"people", "person"},
		{"People", "Person"},
		{"geese", "goose"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, singularize(tt.input))
		})
	}
}

func TestPreserveCase(t *testing.T) {
	tests := []struct {
		name     string
		original string
		result   string
		expected string
	}{
		{"AllLower", "user", "USERS", "users"},
		{"AllUpper", "USER", "users", "USERS"},
		{"LeadingUpper", "Person", "people", "People"},
		{"CamelKeepsInterior", "blogPost", "blogPosts", "blogPosts"},
		{"PascalKeepsInterior", "BlogPost", "blogPosts", "BlogPosts"},
		{"EmptyResult", "user", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, preserveCase(tt.original, tt.result))
		})
	}
}

func TestHasUpperCase(t *testing.T) {
	assert.False(t, hasUpperCase("snake_case"))
	assert.True(t, hasUpperCase("camelCase"))
	assert.True(t, hasUpperCase("X"))
	assert.False(t, hasUpperCase(""))
}

// =========================================================================
// Strategy Tests
// =========================================================================

func TestPredefinedStrategies(t *testing.T) {
	tests := []struct {
		name       string
		strategy   NamingStrategy
		memberName string
		member     string
		typeName   string
		entitySet  string
		plural     bool
	}{
		{
			name:       "Default",
			strategy:   DefaultNamingStrategy(),
			memberName: "FirstName",
			member:     "first_name",
			typeName:   "User",
			entitySet:  "users",
			plural:     true,
		},
		{
			name:       "JSONAPI",
			strategy:   JSONAPIStrategy(),
			memberName: "FirstName",
			member:     "firstName",
			typeName:   "BlogPost",
			entitySet:  "blog_posts",
			plural:     true,
		},
		{
			name:       "NoSQL",
			strategy:   NoSQLStrategy(),
			memberName: "first_name",
			member:     "firstName",
			typeName:   "BlogPost",
			entitySet:  "blogPosts",
			plural:     true,
		},
		{
			name:       "GraphQL",
			strategy:   GraphQLStrategy(),
			memberName: "first_name",
			member:     "FirstName",
			typeName:   "BlogPost",
			entitySet:  "BlogPosts",
			plural:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.member, tt.strategy.MemberName(tt.memberName))
			assert.Equal(t, tt.entitySet, tt.strategy.TypeName(tt.typeName))
			assert.Equal(t, tt.plural, tt.strategy.IsPlural())
		})
	}
}

func TestCombinedStrategy(t *testing.T) {
	strategy := NewCombinedNamingStrategy(
		NewMemberNamingStrategy(MemberPascalCase),
		NewTypeNamingStrategy(TypeSnakeCaseSingular),
		NewCardinalityProvider(false),
	)

	assert.Equal(t, "FirstName", strategy.MemberName("first_name"))
	assert.Equal(t, "blog_post", strategy.TypeName("BlogPost"))
	assert.False(t, strategy.IsPlural())
}

func TestTypeNamingVariants(t *testing.T) {
	tests := []struct {
		namingType TypeNamingType
		expected   string
		plural     bool
	}{
		{TypeSnakeCaseSingular, "blog_post", false},
		{TypeSnakeCasePlural, "blog_posts", true},
		{TypeCamelCaseSingular, "blogPost", false},
		{TypeCamelCasePlural, "blogPosts", true},
		{TypePascalCaseSingular, "BlogPost", false},
		{TypePascalCasePlural, "BlogPosts", true},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			s := NewTypeNamingStrategy(tt.namingType)
			assert.Equal(t, tt.expected, s.TypeName("BlogPost"))
			assert.Equal(t, tt.plural, s.(*typeNamingStrategy).IsPlural())
		})
	}
}
