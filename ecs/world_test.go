package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/tinytank/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
				if w.Len() != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, w.Len())
				}
			}
		})
	}
}

func TestWorldReusesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := w.CreateEntity()
	if err := Add(w, old, h, 7); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(old)

	reused := w.CreateEntity()
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused handle must differ from the stale one")
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, reused, h) {
		t.Fatalf("reused entity inherited a component from the destroyed one")
	}
	if err := Add(w, old, h, 1); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, h2))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "mutate_through_pointer",
			setup: func() error { return Add(w, e2, h1, 1) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1)
				*v = 42
				again, _ := Get(w, e2, h1)
				if *again != 42 {
					t.Fatalf("expected mutation to stick, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestInvalidHandle(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	var zero component.ComponentHandle[int]
	if err := Add(w, e, zero, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for e, v := range map[Entity]int{e1: 1, e3: 3} {
		if err := Add(w, e, h, v); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	seen := map[Entity]int{}
	ForEach(w, h, func(e Entity, v *int) {
		seen[e] = *v
		*v *= 10
	})
	if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected visit set %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("e2 has no component and must not be visited")
	}
	if v, _ := Get(w, e3, h); *v != 30 {
		t.Fatalf("expected ForEach mutation, got %d", *v)
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	a := component.NewComponent[int]()
	b := component.NewComponent[string]()

	both := w.CreateEntity()
	onlyA := w.CreateEntity()
	_ = Add(w, both, a, 1)
	_ = Add(w, both, b, "x")
	_ = Add(w, onlyA, a, 2)

	got := w.Query(a.ID(), b.ID())
	if len(got) != 1 || got[0] != both {
		t.Fatalf("expected only %v, got %v", both, got)
	}
	if got := w.Query(a.ID()); len(got) != 2 {
		t.Fatalf("expected 2 entities with a, got %d", len(got))
	}

	unused := component.NewComponent[float64]()
	if got := w.Query(a.ID(), unused.ID()); len(got) != 0 {
		t.Fatalf("expected empty query for unused kind, got %v", got)
	}
}

func TestQueryAllowsDestroyWhileRanging(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 10; i++ {
		e := w.CreateEntity()
		_ = Add(w, e, h, i)
	}
	for _, e := range w.Query(h.ID()) {
		if v, _ := Get(w, e, h); *v%2 == 0 {
			w.DestroyEntity(e)
		}
	}
	if Count(w, h) != 5 {
		t.Fatalf("expected 5 odd values left, got %d", Count(w, h))
	}
	ForEach(w, h, func(_ Entity, v *int) {
		if *v%2 == 0 {
			t.Fatalf("even value %d survived", *v)
		}
	})
}
