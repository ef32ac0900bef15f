package registry

import (
	"testing"

	"github.com/vovakirdan/casino/internal/casino"
)

type fixedStrategy struct{ id string }

func (s fixedStrategy) ID() string    { return s.id }
func (s fixedStrategy) Title() string { return "Fixed " + s.id }
func (s fixedStrategy) Choose(v casino.View) casino.Action {
	return v.Legal[0]
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-fixed", func(int64) Strategy { return fixedStrategy{id: "test-fixed"} })

	if !Exists("test-fixed") {
		t.Fatal("Exists() = false after Register")
	}

	s, err := Create("test-fixed", 1)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if s.ID() != "test-fixed" {
		t.Errorf("ID() = %q, want test-fixed", s.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-fixed" {
			found = true
			if info.Title != "Fixed test-fixed" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() does not include registered strategy")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-strategy", 0); err == nil {
		t.Error("expected error for unknown strategy")
	}
	if Exists("no-such-strategy") {
		t.Error("Exists() = true for unknown strategy")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func(int64) Strategy { return fixedStrategy{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func(int64) Strategy { return fixedStrategy{id: "test-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("test-b", func(int64) Strategy { return fixedStrategy{id: "test-b"} })
	Register("test-a", func(int64) Strategy { return fixedStrategy{id: "test-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
