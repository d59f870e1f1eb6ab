package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y, Z float64
}

type testTimerComponent struct {
	Remaining float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity {
		t.Error("First entity ID must not be InvalidEntity")
	}

	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 live entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 1, Y: 2, Z: 3})

	// 反射版本
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if pos := comp.(*testPositionComponent); pos.Z != 3 {
		t.Errorf("Expected Z=3, got %f", pos.Z)
	}

	// 泛型版本与反射版本共享同一份存储
	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find the component")
	}
	pos.X = 42

	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 42 {
		t.Errorf("Expected mutation through pointer to persist, got X=%f", again.X)
	}
}

func TestGenericAddComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testTimerComponent{Remaining: 2})

	if !HasComponent[*testTimerComponent](em, id) {
		t.Fatal("Generic AddComponent should register the component")
	}
	if !em.HasComponent(id, reflect.TypeOf(&testTimerComponent{})) {
		t.Fatal("Generic and reflect keys should match")
	}

	RemoveComponent[*testTimerComponent](em, id)
	if HasComponent[*testTimerComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(99), &testPositionComponent{})

	if HasComponent[*testPositionComponent](em, EntityID(99)) {
		t.Error("Adding to a non-existent entity should be a no-op")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.IsAlive(id) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.IsAlive(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Destroy mark should be cleared after cleanup")
	}
}

func TestDestroyEntityTwiceRemovesOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected exactly 1 removal, got %d", removed)
	}

	// 已删除的实体再次标记应被忽略
	em.DestroyEntity(id)
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected 0 removals for a dead entity, got %d", removed)
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testTimerComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	if len(all) != 20 {
		t.Fatalf("Expected 20 entities, got %d", len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("Expected ascending IDs, index %d got %d want %d", i, all[i], ids[i])
		}
	}

	both := GetEntitiesWith2[*testPositionComponent, *testTimerComponent](em)
	if len(both) != 10 {
		t.Fatalf("Expected 10 entities with both components, got %d", len(both))
	}
	for i := 1; i < len(both); i++ {
		if both[i-1] >= both[i] {
			t.Fatalf("Result not sorted at index %d: %v", i, both)
		}
	}
}
