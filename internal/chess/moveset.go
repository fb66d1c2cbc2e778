package chess

import "slices"

// MoveSet is a sorted collection of candidate moves without duplicates.
// Moves are ordered by CompareMoves, so iteration follows destination order.
// The zero value is an empty set ready to use.
type MoveSet struct {
	moves []Move
}

// NewMoveSet creates a set holding the given moves.
func NewMoveSet(moves ...Move) MoveSet {
	var s MoveSet
	for _, m := range moves {
		s.Insert(m)
	}
	return s
}

// Insert adds m unless a move with the same source and destination is
// already present. It reports whether the set changed.
func (s *MoveSet) Insert(m Move) bool {
	i, found := slices.BinarySearchFunc(s.moves, m, CompareMoves)
	if found {
		return false
	}
	s.moves = slices.Insert(s.moves, i, m)
	return true
}

// Union adds every move of other.
func (s *MoveSet) Union(other MoveSet) {
	for _, m := range other.moves {
		s.Insert(m)
	}
}

// Len returns the number of moves.
func (s MoveSet) Len() int {
	return len(s.moves)
}

// Contains reports whether a move with the same source and destination is present.
func (s MoveSet) Contains(m Move) bool {
	_, found := slices.BinarySearchFunc(s.moves, m, CompareMoves)
	return found
}

// Get returns the stored move equal to m, with its flags as generated.
func (s MoveSet) Get(m Move) (Move, bool) {
	i, found := slices.BinarySearchFunc(s.moves, m, CompareMoves)
	if !found {
		return Move{}, false
	}
	return s.moves[i], true
}

// Find returns the first move landing on dest.
func (s MoveSet) Find(dest Position) (Move, bool) {
	for _, m := range s.moves {
		if m.Dest == dest {
			return m, true
		}
		if m.Dest > dest {
			break
		}
	}
	return Move{}, false
}

// Moves returns a copy of the moves in order.
func (s MoveSet) Moves() []Move {
	return slices.Clone(s.moves)
}

// Destinations returns the destination of every move in order.
func (s MoveSet) Destinations() []Position {
	dests := make([]Position, 0, len(s.moves))
	for _, m := range s.moves {
		dests = append(dests, m.Dest)
	}
	return dests
}

// Strings returns the text of every move in order.
func (s MoveSet) Strings() []string {
	texts := make([]string, 0, len(s.moves))
	for _, m := range s.moves {
		texts = append(texts, m.String())
	}
	return texts
}
