package lattice

// StepCost prices the single move from → to.
//
//   - both axes change: DiagonalCost;
//   - one axis changes and the segment is a side of a risk cell: RiskCost;
//   - otherwise: BaseCost.
//
// A side is shared by at most two cells; flagging either one penalises the move.
// Complexity: O(1).
func (g *Geometry) StepCost(from, to Coordinate) float64 {
	if from.X != to.X && from.Y != to.Y {
		return DiagonalCost
	}
	if _, ok := g.riskEdges[newSegment(from, to)]; ok {
		return RiskCost
	}
	return BaseCost
}
