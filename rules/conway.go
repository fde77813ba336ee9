package rules

// Standard Conway parameters (B3/S23 with the eight surrounding cells)
const DefaultNeighbourRadius = 1

var (
	conwayBorn    = []int{3}
	conwaySurvive = []int{2, 3}
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
