package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from a textual layout, one line per row.
// See Read for the accepted format.
func Parse(layout string, opts ...Option) (*Grid, error) {
	return Read(strings.NewReader(layout), opts...)
}

// Read builds a Grid from a layout read line by line from r. Each rune is a
// tile: '#' wall, ' ' open, 'A' start, 'B' goal. Carriage returns are
// stripped and trailing empty lines ignored. All rows must have the same
// number of runes and exactly one start and one goal must be present.
func Read(r io.Reader, opts ...Option) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading layout: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	kinds := make([][]Kind, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		kinds[y] = make([]Kind, len(runes))
		for x, r := range runes {
			k, err := KindOf(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			kinds[y][x] = k
		}
	}
	return fromKinds(kinds, opts)
}

// symbolAt picks the display rune of a tile: on-path, then searched, then
// the kind symbol.
func symbolAt(t Tile) rune {
	switch {
	case t.OnPath:
		return PathSymbol
	case t.Visited:
		return SearchedSymbol
	default:
		return t.Kind.Symbol()
	}
}

// Render writes the grid to w, one line per row, using '-' for on-path and
// '?' for searched tiles. If marker is given, that cell is drawn as '*'.
func (g *Grid) Render(w io.Writer, marker ...Cell) error {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{x, y}
			if len(marker) > 0 && marker[0] == c {
				sb.WriteRune(MarkerSymbol)
				continue
			}
			sb.WriteRune(symbolAt(g.tiles[g.index(c)]))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders the grid without a marker.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb)
	return sb.String()
}
