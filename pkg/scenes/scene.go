package scenes

import (
	"github.com/gonewx/invaders/pkg/game"
)

// Scene is a type alias for game.Scene so callers can stay within the scenes package.
type Scene = game.Scene
