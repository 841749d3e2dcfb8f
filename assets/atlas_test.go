package assets_test

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/homestead/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlasFallback(t *testing.T) {
	atlas := assets.NewAtlas()
	missing := image.NewRGBA(image.Rect(0, 0, 16, 16))
	barrel := image.NewRGBA(image.Rect(0, 0, 8, 10))
	atlas.Set(assets.SpriteNil, missing)
	atlas.Set(assets.SpriteBarrel, barrel)

	cases := []struct {
		name string
		id   assets.SpriteID
		want image.Image
	}{
		{"set sprite", assets.SpriteBarrel, barrel},
		{"unset sprite", assets.SpriteTree1, missing},
		{"negative id", assets.SpriteID(-4), missing},
		{"past the end", assets.SpriteCount + 3, missing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Same(t, tc.want, atlas.Get(tc.id).Image)
		})
	}

	assert.Equal(t, mgl32.Vec2{8, 10}, atlas.Get(assets.SpriteBarrel).Size())
}

func TestAtlasValidate(t *testing.T) {
	atlas := assets.NewAtlas()
	assert.Error(t, atlas.Validate())

	atlas.Set(assets.SpriteNil, assets.Placeholder(assets.SpriteNil))
	err := atlas.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wardrobe")

	assert.NoError(t, assets.PlaceholderAtlas().Validate())
}

func TestParseSprite(t *testing.T) {
	for id := range assets.SpriteCount {
		parsed, err := assets.ParseSprite(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}

	_, err := assets.ParseSprite("dragon")
	assert.Error(t, err)

	assert.Equal(t, "item_wood.png", assets.SpriteItemWood.FileName())
	assert.Equal(t, "SpriteID(42)", assets.SpriteID(42).String())
}
