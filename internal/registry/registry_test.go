package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/antigravity/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return g.title }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{"stub-b", "Stub B"} })
	Register("stub-a", func() Game { return stubGame{"stub-a", "Stub A"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub B" {
		t.Errorf("Title = %q, expected %q", g.Title(), "Stub B")
	}

	// List is sorted by ID.
	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "stub-a"), indexOf(ids, "stub-b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List IDs = %v, expected stub-a before stub-b", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists() of an unknown ID should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{"stub-dup", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{"stub-dup", "Dup"} })
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
