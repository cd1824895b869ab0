// Package loader builds grids from external tabular input. All input
// validation lives here: the core assumes a well-formed 9x9 grid.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonswain/sudsolve/internal/domain"
)

// UnknownToken marks an unresolved cell in CSV input.
const UnknownToken = "X"

// ErrMalformed reports input that is not a 9x9 grid of the nine symbols
// and the unknown token.
var ErrMalformed = errors.New("malformed puzzle input")

// FromCSV reads nine records of nine fields, each "1".."9" or "X".
func FromCSV(r io.Reader) (*domain.Grid, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) != domain.Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformed, domain.Size, len(records))
	}
	g := domain.NewGrid()
	for r, record := range records {
		if len(record) != domain.Size {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d", ErrMalformed, r, len(record), domain.Size)
		}
		for c, field := range record {
			tok := strings.TrimSpace(field)
			if tok == UnknownToken {
				continue
			}
			v, err := parseSymbol(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrMalformed, r, c, err)
			}
			if err := g.Set(domain.CellCoord{Row: r, Col: c}, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// FromFile reads a CSV puzzle from disk.
func FromFile(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromCSV(f)
}

// FromString parses the compact 81-character form, reading order, with
// '.', '0', or 'X' for unknown cells.
func FromString(s string) (*domain.Grid, error) {
	if len(s) != domain.Size*domain.Size {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrMalformed, domain.Size*domain.Size, len(s))
	}
	g := domain.NewGrid()
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0' || ch == 'X':
			continue
		case ch >= '1' && ch <= '9':
			at := domain.CellCoord{Row: i / domain.Size, Col: i % domain.Size}
			if err := g.Set(at, domain.Symbol(ch-'0')); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrMalformed, ch, i)
		}
	}
	return g, nil
}

func parseSymbol(tok string) (domain.Symbol, error) {
	if len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9' {
		return domain.Symbol(tok[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid token %q", tok)
}
