package game

import "fmt"

type Column uint8

const (
	Green Column = iota
	Red
	Blue
	Yellow
)

const NColumns = 4

var columnNames = [...]string{"green", "red", "blue", "yellow"}

// Horizontal position of each column as a fraction of the canvas width
var columnX = [...]float64{0.2, 0.4, 0.6, 0.8}

func (c Column) String() string {
	if int(c) < len(columnNames) {
		return columnNames[c]
	}
	return fmt.Sprintf("column(%d)", c)
}

// X is the fixed x-coordinate of the column on a canvas of the given width.
func (c Column) X(width float64) float64 {
	return columnX[c%NColumns] * width
}

// ColumnForPitch assigns notes to columns round robin by pitch.
func ColumnForPitch(pitch int) Column {
	i := pitch % NColumns
	if i < 0 {
		i += NColumns
	}
	return Column(i)
}

type Key uint8

const (
	KeyH Key = iota
	KeyJ
	KeyK
	KeyL
)

var keyNames = [...]string{"KeyH", "KeyJ", "KeyK", "KeyL"}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", k)
}

// Column maps H, J, K, L onto green, red, blue, yellow.
func (k Key) Column() Column {
	return Column(k % NColumns)
}

// KeyForColumn is the inverse of Key.Column.
func KeyForColumn(c Column) Key {
	return Key(c % NColumns)
}
