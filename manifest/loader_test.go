package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/annotwalk/schema"
	"github.com/zclconf/go-cty/cty"
)

const sampleManifest = `
directive "auth" {
  description = "Guards a resolver behind a role."
  locations   = ["object", "field"]

  arg "requires" {
    type    = string
    default = "ADMIN"
  }
}

directive "length" {
  locations = ["field"]

  arg "max" {
    type        = number
    description = "Maximum number of characters."
  }
}
`

func TestParse(t *testing.T) {
	reg, err := Parse(context.Background(), []byte(sampleManifest), "sample.hcl")
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"auth", "length"}, reg.Names())

	t.Run("auth definition", func(t *testing.T) {
		def, ok := reg.Definition("auth")
		require.True(t, ok)
		assert.Equal(t, "Guards a resolver behind a role.", def.Description)
		assert.Equal(t, []schema.Kind{schema.KindObject, schema.KindField}, def.Locations)

		arg := def.Argument("requires")
		require.NotNil(t, arg)
		assert.Equal(t, cty.String, arg.Type)
		require.NotNil(t, arg.Default)
		assert.True(t, arg.Default.RawEquals(cty.StringVal("ADMIN")))
	})

	t.Run("length definition", func(t *testing.T) {
		def, ok := reg.Definition("length")
		require.True(t, ok)
		assert.True(t, def.AllowsLocation(schema.KindField))
		assert.False(t, def.AllowsLocation(schema.KindObject))

		arg := def.Argument("max")
		require.NotNil(t, arg)
		assert.Equal(t, cty.Number, arg.Type)
		assert.Equal(t, "Maximum number of characters.", arg.Description)
		assert.Nil(t, arg.Default)
	})
}

func TestParseTypeExpressions(t *testing.T) {
	src := `
directive "shape" {
  arg "tags"    { type = list(string) }
  arg "weights" { type = map(number) }
  arg "flags"   { type = set(bool) }
  arg "blob"    { type = any }
}
`
	reg, err := Parse(context.Background(), []byte(src), "types.hcl")
	require.NoError(t, err)

	def, ok := reg.Definition("shape")
	require.True(t, ok)
	assert.Equal(t, cty.List(cty.String), def.Argument("tags").Type)
	assert.Equal(t, cty.Map(cty.Number), def.Argument("weights").Type)
	assert.Equal(t, cty.Set(cty.Bool), def.Argument("flags").Type)
	assert.Equal(t, cty.DynamicPseudoType, def.Argument("blob").Type)
}

func TestParseDefaultConversion(t *testing.T) {
	t.Run("default is converted to the declared type", func(t *testing.T) {
		src := `
directive "limit" {
  arg "max" {
    type    = number
    default = "50"
  }
}
`
		reg, err := Parse(context.Background(), []byte(src), "limit.hcl")
		require.NoError(t, err)
		def, _ := reg.Definition("limit")
		require.NotNil(t, def.Argument("max").Default)
		assert.True(t, def.Argument("max").Default.RawEquals(cty.NumberIntVal(50)))
	})

	t.Run("unconvertible default is rejected", func(t *testing.T) {
		src := `
directive "limit" {
  arg "max" {
    type    = number
    default = "lots"
  }
}
`
		_, err := Parse(context.Background(), []byte(src), "limit.hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, "does not match type")
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("malformed HCL", func(t *testing.T) {
		_, err := Parse(context.Background(), []byte(`directive "x" {`), "bad.hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("unknown location", func(t *testing.T) {
		src := `
directive "x" {
  locations = ["banana"]
}
`
		_, err := Parse(context.Background(), []byte(src), "loc.hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown location "banana"`)
	})

	t.Run("unknown type keyword", func(t *testing.T) {
		src := `
directive "x" {
  arg "a" { type = banana }
}
`
		_, err := Parse(context.Background(), []byte(src), "type.hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, "unknown primitive type")
	})

	t.Run("argument declared twice", func(t *testing.T) {
		src := `
directive "x" {
  arg "a" { type = string }
  arg "a" { type = string }
}
`
		_, err := Parse(context.Background(), []byte(src), "dup.hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, "declared twice")
	})

	t.Run("directive declared twice", func(t *testing.T) {
		src := `
directive "x" {}
directive "x" {}
`
		_, err := Parse(context.Background(), []byte(src), "dupdir.hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, "declared more than once")
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads all .hcl files under a directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.hcl"), []byte(`
directive "auth" {
  arg "requires" { type = string }
}
`), 0o644))
		sub := filepath.Join(dir, "nested")
		require.NoError(t, os.Mkdir(sub, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(sub, "length.hcl"), []byte(`
directive "length" {
  arg "max" { type = number }
}
`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

		reg, err := Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "manifest path not found")
	})

	t.Run("non-hcl file path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "x.yaml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "not an .hcl file")
	})
}
