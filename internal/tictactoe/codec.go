package tictactoe

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	rowSeparator = "/"
	emptyRune    = '.'
)

// String renders the board as three rows separated by "/", e.g. "XO./.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for row := range that {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		for _, cell := range that[row] {
			if cell == Empty {
				sb.WriteRune(emptyRune)
				continue
			}
			sb.WriteString(string(cell))
		}
	}

	return sb.String()
}

// ParseBoard reads the format produced by Board.String.
// Empty cells may also be written as "_", "-" or a space, and marks are case-insensitive.
func ParseBoard(s string) (Board, error) {
	var board Board

	rows := strings.Split(strings.Trim(s, "\r\n\t"), rowSeparator)
	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for i, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(cells))
		}

		for j, r := range cells {
			mark, err := parseMark(r)
			if err != nil {
				return board, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			board[i][j] = mark
		}
	}

	return board, nil
}

func parseMark(r rune) (Mark, error) {
	switch r {
	case 'X', 'x':
		return X, nil
	case 'O', 'o', '0':
		return O, nil
	case emptyRune, '_', '-', ' ':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", ErrInvalidBoard, r)
	}
}

// UnmarshalText accepts "X", "O" and "" in any case.
func (that *Mark) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case string(X):
		*that = X
	case string(O):
		*that = O
	case string(Empty):
		*that = Empty
	default:
		return fmt.Errorf("%w: unknown mark %q", ErrInvalidBoard, text)
	}

	return nil
}

// UnmarshalJSON decodes a 3x3 array of marks and rejects any other shape.
func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Mark
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	board, err := NewBoard(rows)
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// NewBoard copies a row-major grid of marks into a Board.
func NewBoard(rows [][]Mark) (Board, error) {
	var board Board

	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	for i, row := range rows {
		if len(row) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(row))
		}
		copy(board[i][:], row)
	}

	return board, nil
}
