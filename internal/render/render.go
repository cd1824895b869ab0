// Package render formats a grid for humans. Purely presentational; nothing
// here feeds back into the core.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonswain/sudsolve/internal/domain"
)

const separator = "------+-------+------"

// Write prints g to w with visual separators every three rows and columns.
// Unknown cells print as "X".
func Write(w io.Writer, g *domain.Grid) error {
	for r := 0; r < domain.Size; r++ {
		if r%3 == 0 && r != 0 {
			if _, err := fmt.Fprintln(w, separator); err != nil {
				return err
			}
		}
		fields := make([]string, 0, domain.Size+2)
		for c := 0; c < domain.Size; c++ {
			if c%3 == 0 && c != 0 {
				fields = append(fields, "|")
			}
			fields = append(fields, cellString(g.At(r, c)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the rendered grid as a string.
func Text(g *domain.Grid) string {
	var sb strings.Builder
	_ = Write(&sb, g)
	return sb.String()
}

func cellString(c domain.Cell) string {
	if v, ok := c.Value(); ok {
		return fmt.Sprintf("%d", v)
	}
	return "X"
}
