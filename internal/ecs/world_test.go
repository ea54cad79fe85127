package ecs

import "testing"

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if next := w.CreateEntity(); next == id {
		t.Fatalf("expected distinct IDs, got %v twice", id)
	}
	if w.Count() != 2 {
		t.Fatalf("Count() = %d; want 2", w.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestAddReplacesSameType(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})
	w.Add(id, testComp{val: 2})
	if tc, _ := Lookup[testComp](w, id, 1); tc.val != 2 {
		t.Fatalf("expected replacement val=2, got %d", tc.val)
	}
}

func TestAddToDeadEntityIgnored(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	w.Add(id, testComp{val: 9})
	if w.Alive(id) {
		t.Fatal("Add must not resurrect a destroyed entity")
	}
	if w.Has(id, 1) {
		t.Fatal("dead entity must not hold components")
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
	// Second destroy is a no-op.
	w.DestroyEntity(id)
}

func TestComponentsNotShared(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	w.Add(a, testComp{val: 1})
	w.Add(b, otherComp{})

	if w.Has(a, 2) || w.Has(b, 1) {
		t.Fatal("components leaked between entities")
	}
	w.DestroyEntity(a)
	if !w.Has(b, 2) {
		t.Fatal("destroying one entity removed another's component")
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Neither a missing component nor a missing entity may panic.
	w.Remove(id, ComponentType(99))
	w.Remove(EntityID(12345), ComponentType(1))
}

func TestLookup(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if _, ok := Lookup[testComp](w, id, 1); ok {
		t.Fatal("Lookup should miss before Add")
	}
	w.Add(id, testComp{val: 3})
	tc, ok := Lookup[testComp](w, id, 1)
	if !ok || tc.val != 3 {
		t.Fatalf("Lookup = (%+v, %v); want ({val:3}, true)", tc, ok)
	}
	if _, ok := Lookup[otherComp](w, id, 1); ok {
		t.Fatal("Lookup with the wrong Go type must report false")
	}
}
