package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/clearway/clearance"
	"github.com/katalvlaran/clearway/geom"
	"github.com/katalvlaran/clearway/obstacle"
	"github.com/katalvlaran/clearway/planner"
)

// PlannerSuite exercises Plan across the scenarios spec.md names directly
// (empty map, a wall blocking target, an undersized robot) plus the
// lambda-extremes equivalence property.
type PlannerSuite struct {
	suite.Suite
}

func (s *PlannerSuite) mustField(rows, cols int) *clearance.ClearanceMap {
	m, err := clearance.New(rows, cols)
	require.NoError(s.T(), err)

	return m
}

// TestEmptyMapCornerToCorner covers S1: an obstacle-free map has a path
// between any two cells that meet the robot radius, and the path's
// endpoints and 8-adjacency hold. Map corners have edge clearance 0, so
// the endpoints are the corners of the inner ring, where clearance is 1.
func (s *PlannerSuite) TestEmptyMapCornerToCorner() {
	field := s.mustField(10, 10)
	p := planner.New(field, planner.DefaultOptions())

	start := geom.Cell{X: 1, Y: 1}
	target := geom.Cell{X: 8, Y: 8}
	res, err := p.Plan(start, target)
	require.NoError(s.T(), err)
	require.Equal(s.T(), planner.Done, p.State())
	require.NotEmpty(s.T(), res.Path)
	require.Equal(s.T(), start, res.Path[0])
	require.Equal(s.T(), target, res.Path[len(res.Path)-1])

	for i := 1; i < len(res.Path); i++ {
		require.True(s.T(), res.Path[i-1].Adjacent8(res.Path[i]), "path must be 8-adjacent at step %d", i)
	}
	for _, c := range res.Path {
		require.GreaterOrEqual(s.T(), field.ValAt(c), planner.DefaultOptions().RobotRadius)
	}
}

// TestWallBlocksTarget covers S4: a solid wall of obstacles spanning the
// map, with no gap the robot radius fits through, makes target
// unreachable and the Planner lands in the Unreachable state.
func (s *PlannerSuite) TestWallBlocksTarget() {
	field := s.mustField(10, 10)
	for y := 0; y < 10; y++ {
		o, err := obstacle.New(geom.Cell{X: 5, Y: y}, 1.5)
		require.NoError(s.T(), err)
		_, ok := field.Insert(o)
		require.True(s.T(), ok)
	}

	p := planner.New(field, planner.DefaultOptions())
	// Both endpoints have clearance 1; the wall zeroes rows 4..6.
	_, err := p.Plan(geom.Cell{X: 1, Y: 1}, geom.Cell{X: 8, Y: 8})
	require.ErrorIs(s.T(), err, planner.ErrUnreachable)
	require.Equal(s.T(), planner.Unreachable, p.State())
}

// TestStartDoesNotFit covers S5: a start cell whose clearance is below
// the robot's radius fails validation before any search runs.
func (s *PlannerSuite) TestStartDoesNotFit() {
	field := s.mustField(10, 10)
	o, err := obstacle.New(geom.Cell{X: 0, Y: 0}, 3)
	require.NoError(s.T(), err)
	_, ok := field.Insert(o)
	require.True(s.T(), ok)

	opts := planner.DefaultOptions()
	opts.RobotRadius = 1
	p := planner.New(field, opts)
	_, err = p.Plan(geom.Cell{X: 0, Y: 0}, geom.Cell{X: 9, Y: 9})
	require.ErrorIs(s.T(), err, planner.ErrDoesNotFit)
	require.Equal(s.T(), planner.Failed, p.State())
}

// TestOutOfBoundsEndpoints covers the bounds-validation branch ahead of
// the does-not-fit check.
func (s *PlannerSuite) TestOutOfBoundsEndpoints() {
	field := s.mustField(5, 5)
	p := planner.New(field, planner.DefaultOptions())
	_, err := p.Plan(geom.Cell{X: -1, Y: 0}, geom.Cell{X: 4, Y: 4})
	require.ErrorIs(s.T(), err, planner.ErrOutOfBounds)
}

// TestInvalidLambdaRejected covers the lambda-range validation branch.
func (s *PlannerSuite) TestInvalidLambdaRejected() {
	field := s.mustField(5, 5)
	opts := planner.DefaultOptions()
	opts.Lambda = 1.5
	p := planner.New(field, opts)
	_, err := p.Plan(geom.Cell{X: 0, Y: 0}, geom.Cell{X: 4, Y: 4})
	require.ErrorIs(s.T(), err, planner.ErrInvalidLambda)
}

// TestLambdaExtremesBothReachGoal covers S6: on an obstacle-free map,
// pure goal-seeking (lambda=0) and pure clearance-seeking (lambda=1)
// both find a valid path, even though the paths themselves may differ.
func (s *PlannerSuite) TestLambdaExtremesBothReachGoal() {
	start := geom.Cell{X: 1, Y: 1}
	target := geom.Cell{X: 8, Y: 1}

	for _, lambda := range []float64{0, 1} {
		field := s.mustField(10, 10)
		opts := planner.DefaultOptions()
		opts.Lambda = lambda
		p := planner.New(field, opts)
		res, err := p.Plan(start, target)
		require.NoError(s.T(), err, "lambda=%v", lambda)
		require.Equal(s.T(), target, res.Path[len(res.Path)-1])
	}
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}
