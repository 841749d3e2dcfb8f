package ebiten

import (
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/homestead/assets"
	"go.uber.org/zap"
)

// LoadAtlas reads <dir>/<sprite>.png for every sprite. Files that fail to
// load are replaced by generated placeholders and logged.
func LoadAtlas(dir string, logger *zap.Logger) *assets.Atlas {
	atlas := assets.NewAtlas()
	for id := range assets.SpriteCount {
		path := filepath.Join(dir, id.FileName())
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("sprite not loaded, using placeholder",
				zap.Stringer("sprite", id),
				zap.String("path", path),
				zap.Error(err))
			img = ebiten.NewImageFromImage(assets.Placeholder(id))
		}
		atlas.Set(id, img)
	}
	return atlas
}
