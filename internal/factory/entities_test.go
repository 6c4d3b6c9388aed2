package factory

import (
	"ringwraith/internal/component"
	"ringwraith/internal/ecs"
	"testing"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3)

	if id == ecs.NilEntity {
		t.Fatal("player entity must have an ID")
	}

	pos := w.Get(id, component.CPosition)
	if pos == nil {
		t.Fatal("player must have CPosition")
	}
	if p := pos.(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}

	rend, ok := ecs.Get[component.Renderable](w, id)
	if !ok {
		t.Fatal("player must have CRenderable")
	}
	want := component.Renderable{Glyph: '@', FG: "white", BG: "green"}
	if rend != want {
		t.Errorf("renderable = %+v; want %+v", rend, want)
	}

	if !w.Has(id, component.CTagPlayer) {
		t.Error("player must have CTagPlayer")
	}
	if w.Has(id, component.CTagRingwraith) {
		t.Error("player must not have CTagRingwraith")
	}
}

func TestNewRingwraithComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewRingwraith(w, 10, 10)

	pos, ok := ecs.Get[component.Position](w, id)
	if !ok || pos.X != 10 || pos.Y != 10 {
		t.Errorf("position = %+v (ok=%v); want (10,10)", pos, ok)
	}
	rend, _ := ecs.Get[component.Renderable](w, id)
	want := component.Renderable{Glyph: 'N', FG: "black", BG: "gray"}
	if rend != want {
		t.Errorf("renderable = %+v; want %+v", rend, want)
	}
	if !w.Has(id, component.CTagRingwraith) {
		t.Error("ringwraith must have CTagRingwraith")
	}
	if w.Has(id, component.CTagPlayer) {
		t.Error("ringwraith must not have CTagPlayer")
	}
}

func TestPopulateSpawnsExactlyOnePlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := Populate(w)

	players := w.Query(component.CTagPlayer)
	if len(players) != 1 || players[0] != player {
		t.Fatalf("expected exactly the returned player to be tagged, got %v", players)
	}
	if got := len(w.Query(component.CPosition, component.CRenderable)); got != 2 {
		t.Fatalf("expected 2 drawable entities, got %d", got)
	}
	if got := len(w.Query(component.CTagRingwraith)); got != 1 {
		t.Fatalf("expected 1 ringwraith, got %d", got)
	}
}
