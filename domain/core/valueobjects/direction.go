package valueobjects

import "encoding/json"

// Direction indicates whether an edge connects its endpoints one way or
// symmetrically
type Direction int

const (
	// Directed edges go from source to destination only
	Directed Direction = iota

	// Undirected edges connect their endpoints symmetrically
	Undirected
)

// String returns the wire representation of the direction
func (d Direction) String() string {
	if d == Undirected {
		return "UNDIRECTED"
	}
	return "DIRECTED"
}

// MarshalJSON implements json.Marshaler
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
