package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-blast/internal/games/blast/core"
)

func TestParseGoalType(t *testing.T) {
	tests := []struct {
		code     string
		expected core.GoalType
		ok       bool
	}{
		{"R", core.GoalCollectRed, true},
		{"G", core.GoalCollectGreen, true},
		{"B", core.GoalCollectBlue, true},
		{"Y", core.GoalCollectYellow, true},
		{"A", core.GoalCollectAny, true},
		{"r", core.GoalNone, false},
		{"", core.GoalNone, false},
		{"Z", core.GoalNone, false},
	}

	for _, tc := range tests {
		got, ok := core.ParseGoalType(tc.code)
		require.Equal(t, tc.ok, ok, "code %q", tc.code)
		require.Equal(t, tc.expected, got, "code %q", tc.code)
	}
}

func TestTrackerDecrementFloorsAtZero(t *testing.T) {
	rec := &recorder{}
	tr := core.NewTracker([]core.GoalDecl{{Type: "R", Amount: 3}}, rec)

	tr.RegionRemoved(removalOf(core.ColorRed, 5))

	g, ok := tr.Goal(core.GoalCollectRed)
	require.True(t, ok)
	require.Equal(t, 0, g.Remaining)
	require.Equal(t, 3, g.Target)
	require.True(t, g.Done())
	require.Len(t, rec.updates, 1)
	require.Equal(t, []bool{true}, rec.ended)
}

func TestTrackerIgnoresOtherColors(t *testing.T) {
	rec := &recorder{}
	tr := core.NewTracker([]core.GoalDecl{{Type: "B", Amount: 4}}, rec)

	tr.RegionRemoved(removalOf(core.ColorRed, 3))

	g, _ := tr.Goal(core.GoalCollectBlue)
	require.Equal(t, 4, g.Remaining)
	require.Empty(t, rec.updates)
	require.Empty(t, rec.ended)
}

func TestTrackerCollectAnyCountsIndependently(t *testing.T) {
	rec := &recorder{}
	tr := core.NewTracker([]core.GoalDecl{
		{Type: "R", Amount: 10},
		{Type: "A", Amount: 6},
	}, rec)

	tr.RegionRemoved(removalOf(core.ColorRed, 4))

	red, _ := tr.Goal(core.GoalCollectRed)
	anyGoal, _ := tr.Goal(core.GoalCollectAny)
	require.Equal(t, 6, red.Remaining)
	require.Equal(t, 2, anyGoal.Remaining)
	require.Len(t, rec.updates, 2)

	tr.RegionRemoved(removalOf(core.ColorGreen, 3))

	red, _ = tr.Goal(core.GoalCollectRed)
	anyGoal, _ = tr.Goal(core.GoalCollectAny)
	require.Equal(t, 6, red.Remaining)
	require.Equal(t, 0, anyGoal.Remaining)
	require.Empty(t, rec.ended, "red goal is still open")
	require.False(t, tr.Completed())
}

func TestTrackerWinsExactlyOnce(t *testing.T) {
	rec := &recorder{}
	tr := core.NewTracker([]core.GoalDecl{
		{Type: "R", Amount: 2},
		{Type: "G", Amount: 2},
	}, rec)

	tr.RegionRemoved(removalOf(core.ColorRed, 2))
	require.False(t, tr.Completed())

	tr.RegionRemoved(removalOf(core.ColorGreen, 3))
	require.True(t, tr.Completed())

	// Further removals after the win must not emit again
	tr.RegionRemoved(removalOf(core.ColorGreen, 2))
	tr.RegionRemoved(removalOf(core.ColorRed, 2))

	require.Equal(t, []bool{true}, rec.ended)
	require.Len(t, rec.updates, 2, "finished goals are not updated again")
}

func TestTrackerUnknownGoalCode(t *testing.T) {
	rec := &recorder{}
	tr := core.NewTracker([]core.GoalDecl{
		{Type: "Q", Amount: 5},
		{Type: "Y", Amount: 1},
	}, rec)

	require.Len(t, rec.config, 1)
	var cfgErr *core.ConfigError
	require.True(t, errors.As(rec.config[0], &cfgErr))
	require.Equal(t, core.CodeInvalidGoal, cfgErr.Code)
	require.Equal(t, "Q", cfgErr.Token)
	require.Equal(t, 0, cfgErr.Index)

	goals := tr.Goals()
	require.Len(t, goals, 1)
	require.Equal(t, core.GoalCollectYellow, goals[0].Type)
}

func TestTrackerDuplicateDeclarationLastWins(t *testing.T) {
	tr := core.NewTracker([]core.GoalDecl{
		{Type: "R", Amount: 5},
		{Type: "B", Amount: 2},
		{Type: "R", Amount: 9},
	}, nil)

	goals := tr.Goals()
	require.Equal(t, []core.Goal{
		{Type: core.GoalCollectRed, Target: 9, Remaining: 9},
		{Type: core.GoalCollectBlue, Target: 2, Remaining: 2},
	}, goals)
}

func TestTrackerEmptyGoalSetNeverWins(t *testing.T) {
	rec := &recorder{}
	tr := core.NewTracker(nil, rec)

	tr.RegionRemoved(removalOf(core.ColorRed, 10))

	require.False(t, tr.Completed())
	require.Empty(t, rec.ended)
}

func TestTrackerNegativeAmountIsZero(t *testing.T) {
	tr := core.NewTracker([]core.GoalDecl{{Type: "G", Amount: -4}}, nil)

	g, ok := tr.Goal(core.GoalCollectGreen)
	require.True(t, ok)
	require.Equal(t, 0, g.Target)
	require.True(t, g.Done())
}

func TestGoalTypeColor(t *testing.T) {
	require.Equal(t, core.ColorRed, core.GoalCollectRed.Color())
	require.Equal(t, core.ColorYellow, core.GoalCollectYellow.Color())
	require.Equal(t, core.ColorNone, core.GoalCollectAny.Color())
	require.Equal(t, core.ColorNone, core.GoalNone.Color())
}

func TestSessionPlaysToWin(t *testing.T) {
	rec := &recorder{}
	spec := core.LevelSpec{
		Grid: core.GridSpec{
			Length: 3,
			Layout: layout("RRR", "RRR", "GRR"),
		},
		Goals: []core.GoalDecl{{Type: "R", Amount: 8}},
	}

	s, err := core.NewSession(spec, nil, nil, rec)
	require.NoError(t, err)
	require.False(t, s.Won())

	_, err = s.Tap(0, 0)
	require.ErrorIs(t, err, core.ErrNoMatch)
	require.Equal(t, 0, s.Moves(), "rejected taps are not moves")

	removal, err := s.Tap(1, 1)
	require.NoError(t, err)
	require.Equal(t, 8, removal.Len())
	require.Equal(t, 1, s.Moves())
	require.True(t, s.Won())
	require.False(t, s.Stuck(), "a won level is not stuck")
	require.Equal(t, []bool{true}, rec.ended)
}

func TestSessionStuck(t *testing.T) {
	spec := core.LevelSpec{
		Grid: core.GridSpec{
			Length: 2,
			Layout: layout("RG", "GR"),
		},
		Goals: []core.GoalDecl{{Type: "R", Amount: 1}},
	}

	s, err := core.NewSession(spec, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, s.Stuck())
}

func TestSessionRejectsBadGrid(t *testing.T) {
	_, err := core.NewSession(core.LevelSpec{Grid: core.GridSpec{Length: 0}}, nil, nil, nil)

	var vErr core.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, core.CodeInvalidLength, vErr.Code)
}
