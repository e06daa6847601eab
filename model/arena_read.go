package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrBadLayout = errors.New("bad arena layout")

// Layout characters understood by ReadArena.
const (
	LAYOUT_SOLID        = '#'
	LAYOUT_DESTRUCTIBLE = '+'
	LAYOUT_FLOOR        = '.'
	LAYOUT_SPAWN        = 'P'
	LAYOUT_ENEMY        = 'E'
)

// ReadArena parses a text layout, one line per row. Blank lines and lines starting with
// ';' are skipped. The border and the even/even pillars must be solid.
func ReadArena(reader io.Reader, tileSize float64) (*Arena, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), " \t\r")
		if s == "" || strings.HasPrefix(s, ";") {
			continue
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 rows, got %d", ErrBadLayout, len(lines))
	}
	cols := len([]rune(lines[0]))
	a := NewArena(cols, len(lines), tileSize)
	spawns := 0
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, row, len(runes), cols)
		}
		for col, char := range runes {
			cell := Cell{Col: col, Row: row}
			switch char {
			case LAYOUT_SOLID:
				a.wall[a.index(cell)] = true
			case LAYOUT_DESTRUCTIBLE:
				a.destructible[a.index(cell)] = true
			case LAYOUT_FLOOR:
			case LAYOUT_SPAWN:
				a.Spawn = cell
				spawns++
			case LAYOUT_ENEMY:
				a.EnemyCells = append(a.EnemyCells, cell)
			default:
				return nil, fmt.Errorf("%w: unknown cell %q at %v", ErrBadLayout, char, cell)
			}
			if a.permanent(cell) && char != LAYOUT_SOLID {
				return nil, fmt.Errorf("%w: %v must be solid", ErrBadLayout, cell)
			}
			if a.wall[a.index(cell)] && a.destructible[a.index(cell)] {
				return nil, fmt.Errorf("%w: %v both solid and destructible", ErrBadLayout, cell)
			}
		}
	}
	if spawns != 1 {
		return nil, fmt.Errorf("%w: want exactly one spawn, got %d", ErrBadLayout, spawns)
	}
	return a, nil
}

// Layout renders the arena back into ReadArena's format.
func (a *Arena) Layout() string {
	enemies := make(map[Cell]bool, len(a.EnemyCells))
	for _, c := range a.EnemyCells {
		enemies[c] = true
	}
	var b strings.Builder
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			cell := Cell{Col: c, Row: r}
			switch {
			case cell == a.Spawn:
				b.WriteRune(LAYOUT_SPAWN)
			case enemies[cell]:
				b.WriteRune(LAYOUT_ENEMY)
			case a.IsWall(cell):
				b.WriteRune(LAYOUT_SOLID)
			case a.IsDestructible(cell):
				b.WriteRune(LAYOUT_DESTRUCTIBLE)
			default:
				b.WriteRune(LAYOUT_FLOOR)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
