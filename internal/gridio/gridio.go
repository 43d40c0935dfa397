// Package gridio converts boards to and from their text representations: the
// 81-character line format, a boxed human-readable layout, and multi-puzzle
// text files with "Grid NN" headers. All validation of shape and characters
// happens here, before a board ever reaches a solver.
package gridio

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"svw.info/sudoku-solver/internal/domain"
)

// Parse converts an 81-character puzzle string into a board. '0', '.', 'x',
// and 'X' mark blanks; '1'..'9' are givens. Whitespace and newlines are
// ignored.
func Parse(s string) (*domain.Board, error) {
	var cells []uint8
	for _, ch := range s {
		switch {
		case ch == '0' || ch == '.' || ch == 'x' || ch == 'X':
			cells = append(cells, 0)
		case ch >= '1' && ch <= '9':
			cells = append(cells, uint8(ch-'0'))
		case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t':
			// ignore
		default:
			return nil, fmt.Errorf("invalid character %q in puzzle string", ch)
		}
	}
	if len(cells) != 81 {
		return nil, fmt.Errorf("puzzle string must contain exactly 81 cells, got %d", len(cells))
	}
	b := &domain.Board{}
	for i, v := range cells {
		b.Values[i/9][i%9] = v
	}
	b.MarkGivens()
	return b, nil
}

// String renders the board as 81 digit characters, '0' for blanks.
func String(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteByte('0' + b.Values[r][c])
		}
	}
	return sb.String()
}

// Pretty renders the board in a boxed text layout with 3x3 band separators.
func Pretty(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			sb.WriteString("------------------------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 0 {
				sb.WriteByte('|')
			} else if c%3 == 0 {
				sb.WriteString("| ")
			}
			sb.WriteByte('0' + b.Values[r][c])
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// Entry is a named puzzle loaded from a file.
type Entry struct {
	Name  string
	Board *domain.Board
}

// ReadFile loads every puzzle from a text file. A line containing "Grid"
// names the puzzle that follows; a puzzle body is either nine 9-digit rows
// or one 81-character line ('0', '.', 'x', 'X' for blanks).
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		entries []Entry
		name    string
		rows    []string
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if len(rows) != 9 {
			return fmt.Errorf("puzzle %q has %d rows, want 9", name, len(rows))
		}
		b, err := Parse(strings.Join(rows, ""))
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Board: b})
		rows = nil
		return nil
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.Contains(line, "Grid") {
			if err := flush(); err != nil {
				return nil, err
			}
			name = line
			continue
		}
		cells := cellRunes(line)
		switch len(cells) {
		case 9:
			rows = append(rows, cells)
		case 81:
			if err := flush(); err != nil {
				return nil, err
			}
			b, err := Parse(cells)
			if err != nil {
				return nil, fmt.Errorf("puzzle %q: %w", name, err)
			}
			entries = append(entries, Entry{Name: name, Board: b})
			name = ""
		case 0:
			// decorative line, skip
		default:
			return nil, fmt.Errorf("line %q is not a 9-cell row", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no puzzles found in %s", path)
	}
	return entries, nil
}

// cellRunes keeps only characters that denote a cell.
func cellRunes(line string) string {
	var sb strings.Builder
	for _, ch := range line {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == 'x' || ch == 'X' {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
