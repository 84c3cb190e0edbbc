package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/annotwalk/directive"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

type fieldOnlyHandler struct{}

func (*fieldOnlyHandler) VisitField(*FieldContext) {}

type objectAndFieldHandler struct{}

func (*objectAndFieldHandler) VisitObject(*ObjectContext) {}
func (*objectAndFieldHandler) VisitField(*FieldContext)  {}

type uninterestedHandler struct{}

func TestClassCapability(t *testing.T) {
	t.Run("single interface", func(t *testing.T) {
		class := NewClass(func(*Invocation) *fieldOnlyHandler { return &fieldOnlyHandler{} })
		assert.True(t, class.Interested(schema.KindField))
		assert.False(t, class.Interested(schema.KindObject))
		assert.False(t, class.Interested(schema.KindSchema))
		assert.Equal(t, []schema.Kind{schema.KindField}, class.Locations())
	})

	t.Run("multiple interfaces", func(t *testing.T) {
		class := NewClass(func(*Invocation) *objectAndFieldHandler { return &objectAndFieldHandler{} })
		assert.True(t, class.Interested(schema.KindObject))
		assert.True(t, class.Interested(schema.KindField))
		assert.False(t, class.Interested(schema.KindEnumValue))
		assert.Equal(t, []schema.Kind{schema.KindObject, schema.KindField}, class.Locations())
	})

	t.Run("no interfaces means no locations", func(t *testing.T) {
		class := NewClass(func(*Invocation) *uninterestedHandler { return &uninterestedHandler{} })
		assert.Empty(t, class.Locations())
		for k := schema.KindSchema; k <= schema.KindInputField; k++ {
			assert.False(t, class.Interested(k), "kind %s", k)
		}
	})
}

func TestClassDeclaration(t *testing.T) {
	class := NewClass(func(*Invocation) *objectAndFieldHandler { return &objectAndFieldHandler{} })

	max := cty.NumberIntVal(10)
	def := class.Declaration("limit", &directive.ArgumentDef{Name: "max", Type: cty.Number, Default: &max})

	require.NotNil(t, def)
	assert.Equal(t, "limit", def.Name)
	assert.Equal(t, []schema.Kind{schema.KindObject, schema.KindField}, def.Locations)
	require.NotNil(t, def.Argument("max"))
	assert.Equal(t, cty.Number, def.Argument("max").Type)
	assert.True(t, def.AllowsLocation(schema.KindField))
	assert.False(t, def.AllowsLocation(schema.KindUnion))
}
