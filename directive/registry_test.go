package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Zero(t, r.Len())

	r.Register(&Definition{Name: "auth"})
	r.Register(&Definition{Name: "length"})

	t.Run("lookup", func(t *testing.T) {
		def, ok := r.Definition("auth")
		require.True(t, ok)
		assert.Equal(t, "auth", def.Name)

		_, ok = r.Definition("missing")
		assert.False(t, ok)
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"auth", "length"}, r.Names())
		assert.Equal(t, 2, r.Len())
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			r.Register(&Definition{Name: "auth"})
		})
	})
}

func TestDefinitionAccessors(t *testing.T) {
	max := cty.NumberIntVal(10)
	def := &Definition{
		Name: "limit",
		Arguments: []*ArgumentDef{
			{Name: "max", Type: cty.Number, Default: &max},
			{Name: "strict", Type: cty.Bool},
		},
		Locations: []schema.Kind{schema.KindField, schema.KindArgument},
	}

	require.NotNil(t, def.Argument("max"))
	assert.True(t, def.Argument("max").Default.RawEquals(cty.NumberIntVal(10)))
	assert.Nil(t, def.Argument("nope"))

	assert.True(t, def.AllowsLocation(schema.KindField))
	assert.True(t, def.AllowsLocation(schema.KindArgument))
	assert.False(t, def.AllowsLocation(schema.KindEnum))
}
