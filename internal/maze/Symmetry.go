package maze

// mirror reflects the half grid about its first column. The result has twice
// the columns; the right half is the half grid itself.
func mirror(half [][]Tile) [][]Tile {
	if len(half) == 0 {
		return nil
	}
	halfWidth := len(half[0])
	full := make([][]Tile, len(half))
	for r, row := range half {
		full[r] = make([]Tile, 2*halfWidth)
		for j := 0; j < halfWidth; j++ {
			full[r][j] = row[halfWidth-1-j]
		}
		copy(full[r][halfWidth:], row)
	}
	return full
}
