package game

import "math/rand"

const (
	platformWidth  = 200.0
	platformHeight = 20.0

	// Vertical gap between the randomized platforms, within jump range
	jumpableDistance = 150.0
	randomPlatforms  = 5
)

type Platform struct {
	X      float64 // Left edge X position
	Y      float64 // Top edge Y position
	Width  float64
	Height float64
	Ground bool
}

func (p Platform) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// GeneratePlatforms builds a fresh level layout: five platforms stacked
// upwards from the bottom at random x, a fixed low platform near the left
// and the ground strip. It always returns seven platforms.
func GeneratePlatforms(rng *rand.Rand) []Platform {
	platforms := make([]Platform, 0, randomPlatforms+2)
	for i := 0; i < randomPlatforms; i++ {
		platforms = append(platforms, Platform{
			X:      float64(randRange(rng, 50, ScreenWidth-250)),
			Y:      ScreenHeight - 50 - float64(i)*jumpableDistance,
			Width:  platformWidth,
			Height: platformHeight,
		})
	}

	platforms = append(platforms, Platform{
		X:      50,
		Y:      ScreenHeight - 110,
		Width:  platformWidth,
		Height: platformHeight,
	})

	platforms = append(platforms, Platform{
		X:      0,
		Y:      ScreenHeight - 30,
		Width:  ScreenWidth,
		Height: platformHeight,
		Ground: true,
	})
	return platforms
}

// randRange returns a random int in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
