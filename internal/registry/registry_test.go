package registry

import (
	"testing"

	"github.com/letterfall/letterfall/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string { return s.id }

func (s *stubGame) Title() string { return s.title }

func (s *stubGame) Reset(cfg core.RuntimeConfig) {}

func (s *stubGame) Do(a core.Action) {}

func (s *stubGame) Press(r rune) bool { return false }

func (s *stubGame) Tick() core.StepResult { return core.StepResult{} }

func (s *stubGame) Render(dst *core.Screen) {}

func (s *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game {
		return &stubGame{id: id, title: title}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", stubFactory("stub-create", "Stub"))

	game, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if game.ID() != "stub-create" {
		t.Errorf("Created game ID = %q, expected %q", game.ID(), "stub-create")
	}

	// Each Create returns a fresh instance
	other, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if game == other {
		t.Error("Create() should return a new instance each time")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() with unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", stubFactory("stub-dup", "Stub"))

	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate ID should panic")
		}
	}()
	Register("stub-dup", stubFactory("stub-dup", "Stub"))
}

func TestExists(t *testing.T) {
	Register("stub-exists", stubFactory("stub-exists", "Stub"))

	if !Exists("stub-exists") {
		t.Error("Exists() should report registered games")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should not report unregistered games")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-list-b", stubFactory("stub-list-b", "Bravo"))
	Register("stub-list-a", stubFactory("stub-list-a", "Alpha"))

	games := List()

	var a, b *GameInfo
	for i := range games {
		switch games[i].ID {
		case "stub-list-a":
			a = &games[i]
		case "stub-list-b":
			b = &games[i]
		}
	}
	if a == nil || b == nil {
		t.Fatal("List() should include both registered games")
	}
	if a.Title != "Alpha" || b.Title != "Bravo" {
		t.Errorf("List() should carry titles, got %q and %q", a.Title, b.Title)
	}

	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
