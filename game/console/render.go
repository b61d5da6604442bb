package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wricardo/slide2048/game/engine"
)

const (
	cellWidth = 4
	border    = "---------------------"
)

// RenderBoard writes the board as an ASCII grid framed by dashed borders
func RenderBoard(w io.Writer, b engine.Board) error {
	var sb strings.Builder

	sb.WriteString(border)
	sb.WriteByte('\n')
	for _, row := range b {
		for _, v := range row {
			sb.WriteByte('|')
			sb.WriteString(formatCell(v))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

// formatCell centers a tile value in a cell. Odd padding goes to the right.
func formatCell(v int) string {
	if v == 0 {
		return strings.Repeat(" ", cellWidth)
	}

	s := strconv.Itoa(v)
	pad := cellWidth - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
