package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-r42/internal/entity"
)

func TestRegisterAndLookup(t *testing.T) {
	Register("test-drone", "Test Drone", func() entity.Blueprint {
		return entity.Blueprint{Points: 50, Hitpoints: 2}
	})

	if !Exists("test-drone") {
		t.Fatal("registered tag should exist")
	}
	bp, err := Blueprint("test-drone")
	if err != nil {
		t.Fatalf("Blueprint() error = %v", err)
	}
	if bp.Type != "test-drone" || bp.Points != 50 {
		t.Errorf("Blueprint() = %+v", bp)
	}

	found := false
	for _, info := range List() {
		if info.Tag == "test-drone" {
			found = true
			if info.Title != "Test Drone" || info.Hitpoints != 2 {
				t.Errorf("List() entry = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered tag")
	}
}

func TestUnknownEnemy(t *testing.T) {
	_, err := Blueprint("no-such-enemy")
	if !errors.Is(err, ErrUnknownEnemy) {
		t.Errorf("error = %v, expected ErrUnknownEnemy", err)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("test-dup", "Dup", func() entity.Blueprint { return entity.Blueprint{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup", func() entity.Blueprint { return entity.Blueprint{} })
}
