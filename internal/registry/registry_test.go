package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/registry"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	registry.Register("stub_a", func() registry.Game { return &stubGame{id: "stub_a"} })

	require.True(t, registry.Exists("stub_a"))

	g, err := registry.Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	var found bool
	for _, info := range registry.List() {
		if info.ID == "stub_a" {
			found = true
			assert.Equal(t, "Stub stub_a", info.Title)
		}
	}
	assert.True(t, found, "registered game is listed")
}

func TestCreateUnknown(t *testing.T) {
	_, err := registry.Create("no_such_game")
	assert.ErrorContains(t, err, `unknown game "no_such_game"`)
	assert.False(t, registry.Exists("no_such_game"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registry.Register("stub_dup", func() registry.Game { return &stubGame{id: "stub_dup"} })

	assert.Panics(t, func() {
		registry.Register("stub_dup", func() registry.Game { return &stubGame{id: "stub_dup"} })
	})
}

func TestListSorted(t *testing.T) {
	registry.Register("stub_z", func() registry.Game { return &stubGame{id: "stub_z"} })
	registry.Register("stub_m", func() registry.Game { return &stubGame{id: "stub_m"} })

	list := registry.List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
