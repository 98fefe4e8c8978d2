// grid.go extracts the emoji tile grid from a submission message.
package scores

// Tile is one square of the shared result grid.
type Tile int

const (
	TileGray Tile = iota
	TileYellow
	TileGreen
)

// GridWidth is fixed by the game: five letters per guess.
const GridWidth = 5

// Row is one guess line of the grid.
type Row [GridWidth]Tile

// ParseGrid pulls the tile squares out of raw message text and chunks
// them into rows of five. Everything that is not a tile character
// (whitespace, punctuation, the "Wordle 1,234 3/6" header) is stripped
// first. A trailing group of fewer than five tiles is malformed and
// discarded. No tiles at all yields zero rows — a valid result, the grid
// simply contributes nothing to the score.
func ParseGrid(raw string) []Row {
	var tiles []Tile
	for _, r := range raw {
		switch r {
		case '🟩':
			tiles = append(tiles, TileGreen)
		case '🟨':
			tiles = append(tiles, TileYellow)
		case '⬛', '⬜':
			// both dark-mode and light-mode misses
			tiles = append(tiles, TileGray)
		}
	}

	rows := make([]Row, 0, len(tiles)/GridWidth)
	for i := 0; i+GridWidth <= len(tiles); i += GridWidth {
		var row Row
		copy(row[:], tiles[i:i+GridWidth])
		rows = append(rows, row)
	}
	return rows
}

// AllGreen reports whether every tile in the row is green.
func (r Row) AllGreen() bool {
	for _, t := range r {
		if t != TileGreen {
			return false
		}
	}
	return true
}

// AllGray reports whether every tile in the row is gray.
func (r Row) AllGray() bool {
	for _, t := range r {
		if t != TileGray {
			return false
		}
	}
	return true
}
