package renderer

import (
	"image"
	"math/rand"
)

// Tile is a rectangular region of the image with its own deterministic
// random stream. Tiles have disjoint bounds, so workers can render them
// into the shared pixel statistics array without synchronization.
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	// Derive a per-tile stream from the base seed and tile ID
	random := rand.New(rand.NewSource(seed + int64(id)))

	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: random,
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
