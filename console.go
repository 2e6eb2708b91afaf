package main

import (
	"fmt"
	"io"
	"strings"

	"santorini/game"
)

// consolePresenter renders session snapshots as plain text. It holds no game
// state of its own.
type consolePresenter struct {
	out io.Writer
}

func (c *consolePresenter) Position(board game.BoardState, position string) {
	var sb strings.Builder
	sb.WriteByte('\n')
	for row := 5; row >= 1; row-- {
		sb.WriteString(fmt.Sprintf("%d |", row))
		for col := 0; col < 5; col++ {
			cell := game.Cell((5-row)*5 + col)
			mark := ' '
			switch board.WorkerAt(cell) {
			case game.Player1:
				mark = 'X'
			case game.Player2:
				mark = 'O'
			}
			sb.WriteString(fmt.Sprintf(" %d%c", board.Heights[cell], mark))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for col := 0; col < 5; col++ {
		sb.WriteString(fmt.Sprintf(" %c ", 'A'+col))
	}
	sb.WriteByte('\n')

	side := "1 (X)"
	if board.Turn == game.Player2 {
		side = "2 (O)"
	}
	sb.WriteString(fmt.Sprintf("Player %s to move. (%s)\n", side, position))
	fmt.Fprint(c.out, sb.String())
}

func (c *consolePresenter) Choices(actions []game.Action) {
	switch {
	case actions == nil:
		fmt.Fprintln(c.out, "waiting for engine futures...")
	case len(actions) == 0:
		fmt.Fprintln(c.out, "no legal turns from this position")
	default:
		for i, a := range actions {
			fmt.Fprintf(c.out, "  %d. %s\n", i+1, a.Label())
		}
	}
}

func (c *consolePresenter) Thinking(line string) {
	fmt.Fprintf(c.out, "engine: %s\n", line)
}
