package assets

import (
	"errors"
	"fmt"
)

// Atlas holds one image per SpriteID. Lookups never fail: anything missing
// resolves to the SpriteNil image.
type Atlas struct {
	sprites [SpriteCount]Sprite
}

func NewAtlas() *Atlas {
	a := &Atlas{}
	for id := range SpriteCount {
		a.sprites[id].ID = id
	}
	return a
}

// Set installs the image for id. Out of range ids are ignored.
func (a *Atlas) Set(id SpriteID, img Image) {
	if id < 0 || id >= SpriteCount {
		return
	}
	a.sprites[id] = Sprite{ID: id, Image: img}
}

// Get returns the sprite for id, or the missing sprite if id is out of
// range or was never set.
func (a *Atlas) Get(id SpriteID) Sprite {
	if id >= 0 && id < SpriteCount && a.sprites[id].Image != nil {
		return a.sprites[id]
	}
	return a.sprites[SpriteNil]
}

// Validate checks that the fallback sprite exists and reports every id with
// no image.
func (a *Atlas) Validate() error {
	if a.sprites[SpriteNil].Image == nil {
		return errors.New("atlas: missing fallback sprite")
	}
	var errs []error
	for id := SpriteNil + 1; id < SpriteCount; id++ {
		if a.sprites[id].Image == nil {
			errs = append(errs, fmt.Errorf("atlas: no image for %s", id))
		}
	}
	return errors.Join(errs...)
}
