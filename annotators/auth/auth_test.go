package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/schema"
	"github.com/vk/annotwalk/visitor"
	"github.com/zclconf/go-cty/cty"
)

func staticResolver(v cty.Value) schema.Resolver {
	return func(ctx context.Context, source cty.Value) (cty.Value, error) {
		return v, nil
	}
}

func setup(t *testing.T, s *schema.Schema) *visitor.Results {
	t.Helper()
	table := visitor.Table{}
	reg := directive.NewRegistry()
	Register(table, reg)

	results, err := visitor.Walk(context.Background(), s, table, reg)
	require.NoError(t, err)
	return results
}

func TestRoleContext(t *testing.T) {
	assert.Empty(t, RoleFromContext(context.Background()))
	ctx := WithRole(context.Background(), "USER")
	assert.Equal(t, "USER", RoleFromContext(ctx))
}

func TestGuardedField(t *testing.T) {
	field := &schema.Field{
		Name:     "secret",
		Resolver: staticResolver(cty.StringVal("hunter2")),
		Directives: []*schema.Directive{{
			Name: DirectiveName,
			Arguments: []*schema.DirectiveArgument{
				{Name: "requires", Value: schema.EnumSymbol("USER")},
			},
		}},
	}
	s := schema.New()
	s.AddType(&schema.Type{Kind: schema.KindObject, Name: "Query", Fields: []*schema.Field{field}})

	results := setup(t, s)
	require.Len(t, results.Handlers(DirectiveName), 1)

	handler, ok := results.Handlers(DirectiveName)[0].Handler.(*Handler)
	require.True(t, ok)
	assert.Equal(t, "USER", handler.Requires())

	t.Run("matching role passes through", func(t *testing.T) {
		v, err := field.Resolver(WithRole(context.Background(), "USER"), cty.NilVal)
		require.NoError(t, err)
		assert.True(t, v.RawEquals(cty.StringVal("hunter2")))
	})

	t.Run("wrong role is rejected", func(t *testing.T) {
		_, err := field.Resolver(WithRole(context.Background(), "GUEST"), cty.NilVal)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("missing role is rejected", func(t *testing.T) {
		_, err := field.Resolver(context.Background(), cty.NilVal)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestDefaultRole(t *testing.T) {
	field := &schema.Field{
		Name:       "admin",
		Resolver:   staticResolver(cty.True),
		Directives: []*schema.Directive{{Name: DirectiveName}},
	}
	s := schema.New()
	s.AddType(&schema.Type{Kind: schema.KindObject, Name: "Query", Fields: []*schema.Field{field}})

	results := setup(t, s)
	handler := results.Handlers(DirectiveName)[0].Handler.(*Handler)
	assert.Equal(t, DefaultRole, handler.Requires())

	_, err := field.Resolver(WithRole(context.Background(), "USER"), cty.NilVal)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = field.Resolver(WithRole(context.Background(), DefaultRole), cty.NilVal)
	assert.NoError(t, err)
}

func TestGuardedObject(t *testing.T) {
	a := &schema.Field{Name: "a", Resolver: staticResolver(cty.StringVal("a"))}
	b := &schema.Field{Name: "b"}
	s := schema.New()
	s.AddType(&schema.Type{
		Kind:       schema.KindObject,
		Name:       "Account",
		Directives: []*schema.Directive{{Name: DirectiveName}},
		Fields:     []*schema.Field{a, b},
	})

	setup(t, s)

	for _, f := range []*schema.Field{a, b} {
		require.NotNil(t, f.Resolver, "field %s", f.Name)
		_, err := f.Resolver(WithRole(context.Background(), "NOBODY"), cty.NilVal)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}

	t.Run("field without an original resolver resolves to null", func(t *testing.T) {
		v, err := b.Resolver(WithRole(context.Background(), DefaultRole), cty.NilVal)
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	})
}

func TestDeclaration(t *testing.T) {
	reg := directive.NewRegistry()
	Register(visitor.Table{}, reg)

	def, ok := reg.Definition(DirectiveName)
	require.True(t, ok)
	assert.ElementsMatch(t, []schema.Kind{schema.KindObject, schema.KindField}, def.Locations)
	require.NotNil(t, def.Argument("requires"))
	assert.True(t, def.Argument("requires").Default.RawEquals(cty.StringVal(DefaultRole)))
}
