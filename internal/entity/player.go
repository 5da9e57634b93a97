package entity

// MaxMovesPerPlayer is the most cells one player can hold on a 3x3 board.
const MaxMovesPerPlayer = 5

type Player struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Moves  CellSet `json:"moves"`
}

func NewPlayer(name, symbol string) *Player {
	return &Player{
		Name:   name,
		Symbol: symbol,
	}
}

func (that *Player) Owns(cell Cell) bool {
	return that.Moves.Has(cell)
}

// completedLine returns the first line fully owned by the player.
func (that *Player) completedLine() ([3]Cell, bool) {
	for _, line := range Lines {
		if that.Moves.countIn(line) == len(line) {
			return line, true
		}
	}

	return [3]Cell{}, false
}
