package registry

import (
	"testing"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("registered game not found")
	}
	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = info.Title == "Stub stub_a"
		}
	}
	if !found {
		t.Error("List() missing the registered title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

type describedGame struct{ stubGame }

func (g *describedGame) Description() string { return "blurb " + g.id }

func TestListKeepsOrderAndDescriptions(t *testing.T) {
	Register("stub_z", func() Game { return &describedGame{stubGame{id: "stub_z"}} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	var ids []string
	descs := map[string]string{}
	for _, info := range List() {
		if info.ID == "stub_z" || info.ID == "stub_b" {
			ids = append(ids, info.ID)
			descs[info.ID] = info.Description
		}
	}
	if len(ids) != 2 || ids[0] != "stub_z" || ids[1] != "stub_b" {
		t.Errorf("List() order = %v, want registration order [stub_z stub_b]", ids)
	}
	if descs["stub_z"] != "blurb stub_z" || descs["stub_b"] != "" {
		t.Errorf("descriptions = %v", descs)
	}
}

func TestListReturnsCopy(t *testing.T) {
	Register("stub_copy", func() Game { return &stubGame{id: "stub_copy"} })
	list := List()
	list[0].Title = "mutated"
	if List()[0].Title == "mutated" {
		t.Error("List() exposed the registry's slice")
	}
}
