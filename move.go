package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var moveCmd = &cobra.Command{
	Use:   "move <board>",
	Short: "Print the optimal move for a board",
	Long: `Print the optimal move for the player to move on a board.

The board is three rows separated by '/', with '.' or '_' for empty cells.

Examples:
  tictactoe move .../.../...
  tictactoe move XOX/OXO/...`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	board, err := tictactoe.ParseBoard(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if tictactoe.Terminal(board) {
		winner, ok := tictactoe.Winner(board)
		if !ok {
			fmt.Fprintln(out, "game over: draw")
			return nil
		}

		fmt.Fprintf(out, "game over: %s wins\n", winner)
		return nil
	}

	decision := tictactoe.Evaluate(board)

	fmt.Fprintf(out, "%s plays %s (score %d, %d positions)\n",
		tictactoe.Player(board), decision.Action, decision.Score, decision.Visited)

	return nil
}
