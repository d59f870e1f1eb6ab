package systems

import (
	"testing"

	"github.com/decker502/crossroad/pkg/ecs"
)

func TestCarPresentAtNineAbsentAtTen(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestCar(t, em, false, 10.0)
	system := NewCarMotionSystem(em)

	for tick := 1; tick <= 12; tick++ {
		system.Update(1.0)
		em.RemoveMarkedEntities()

		alive := em.IsAlive(id)
		switch {
		case tick <= 9 && !alive:
			t.Fatalf("car should still exist at t=%d", tick)
		case tick >= 10 && alive:
			t.Fatalf("car should be removed at t=%d", tick)
		}
	}

	if system.TotalDespawned() != 1 {
		t.Errorf("car must be removed exactly once, got %d removals", system.TotalDespawned())
	}
}

func TestCarSkipsMovementOnDespawnTick(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestCar(t, em, false, 2.0)
	system := NewCarMotionSystem(em)

	system.Update(1.0)
	before := mustPosition(t, em, id).X

	// 到时的这个 tick 只标记删除，不再移动
	system.Update(1.0)
	if !em.IsMarkedForDestroy(id) {
		t.Fatal("car should be marked on the despawn tick")
	}
	if after := mustPosition(t, em, id).X; after != before {
		t.Errorf("car moved on its despawn tick: %v -> %v", before, after)
	}
	if system.LastDespawned() != 1 {
		t.Errorf("expected LastDespawned=1, got %d", system.LastDespawned())
	}

	// 未清理前再次更新不会重复回收
	system.Update(1.0)
	if system.TotalDespawned() != 1 {
		t.Errorf("marked car must not be despawned twice, got %d", system.TotalDespawned())
	}
}

func TestCarMotionDirection(t *testing.T) {
	tests := []struct {
		name         string
		leftOriented bool
		startX       float64
		increasing   bool
	}{
		// 右侧朝向：生成在 -12.5，X -= (-10)*dt，向 +X 行驶
		{"spawned on the minus side travels plus", false, -12.5, true},
		// 左侧朝向：生成在 +12.5，X += (-10)*dt，向 -X 行驶
		{"spawned on the plus side travels minus", true, 12.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := newTestCar(t, em, tt.leftOriented, 10.0)
			system := NewCarMotionSystem(em)

			prev := mustPosition(t, em, id).X
			if prev != tt.startX {
				t.Fatalf("expected spawn x=%v, got %v", tt.startX, prev)
			}

			// 变步长 tick，位置始终单调
			steps := []float64{0.016, 0.5, 0.033, 1.0, 0.25, 0, 2.0}
			for _, dt := range steps {
				system.Update(dt)
				x := mustPosition(t, em, id).X
				if tt.increasing && x < prev {
					t.Fatalf("position reversed: %v -> %v", prev, x)
				}
				if !tt.increasing && x > prev {
					t.Fatalf("position reversed: %v -> %v", prev, x)
				}
				prev = x
			}

			// 总位移 = 10 * 3.799
			wantDelta := 10 * 3.799
			gotDelta := prev - tt.startX
			if !tt.increasing {
				gotDelta = -gotDelta
			}
			if diff := gotDelta - wantDelta; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("expected travel %.3f, got %.3f", wantDelta, gotDelta)
			}
		})
	}
}

func TestManyCarsRemovedExactlyOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewCarMotionSystem(em)

	ids := make([]ecs.EntityID, 0, 30)
	for i := 0; i < 30; i++ {
		ids = append(ids, newTestCar(t, em, i%2 == 0, 10.0))
		// 交错生成：每 tick 生成一辆
		system.Update(1.0)
		em.RemoveMarkedEntities()
	}
	for i := 0; i < 15; i++ {
		system.Update(1.0)
		em.RemoveMarkedEntities()
	}

	if system.TotalDespawned() != 30 {
		t.Errorf("expected 30 removals, got %d", system.TotalDespawned())
	}
	for _, id := range ids {
		if em.IsAlive(id) {
			t.Errorf("car %d leaked past its lifetime", id)
		}
	}
}
