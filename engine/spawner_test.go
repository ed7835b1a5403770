package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/body-surfer/vmath"
)

func TestSpawnerCountdown(t *testing.T) {
	tun := DefaultTuning()
	s := NewSpawner(tun, vmath.NewFastRand(7))

	if _, ok := s.Tick(1.0, tun.InitialSpeed); ok {
		t.Fatal("spawner triggered before the initial delay elapsed")
	}
	if math.Abs(s.Timer()-1.0) > 1e-9 {
		t.Fatalf("expected 1s remaining, got %v", s.Timer())
	}
	if _, ok := s.Tick(1.0, tun.InitialSpeed); !ok {
		t.Fatal("spawner should trigger when the timer reaches zero")
	}
	if s.Timer() < tun.SpawnIntervalMin || s.Timer() >= tun.SpawnIntervalMax {
		t.Errorf("reseeded timer %v outside [%v, %v)", s.Timer(), tun.SpawnIntervalMin, tun.SpawnIntervalMax)
	}
}

func TestSpawnerTriggersOncePerTick(t *testing.T) {
	tun := DefaultTuning()
	s := NewSpawner(tun, vmath.NewFastRand(7))

	// A huge dt still yields a single trigger
	if _, ok := s.Tick(100, tun.InitialSpeed); !ok {
		t.Fatal("expected trigger")
	}
	if s.Timer() <= 0 {
		t.Errorf("timer should be reseeded positive, got %v", s.Timer())
	}
}

func TestSpawnerIntervalScalesWithSpeed(t *testing.T) {
	tun := DefaultTuning()
	cases := []struct {
		name   string
		speed  float64
		lo, hi float64
	}{
		{"initial speed", tun.InitialSpeed, 0.8, 1.5},
		{"double speed", 2 * tun.InitialSpeed, 0.4, 0.75},
		{"zero speed falls back", 0, 0.8, 1.5},
		{"negative speed falls back", -5, 0.8, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(tun, vmath.NewFastRand(99))
			for i := 0; i < 200; i++ {
				s.Reset(0)
				if _, ok := s.Tick(0.01, tc.speed); !ok {
					t.Fatal("expected trigger from an expired timer")
				}
				if s.Timer() < tc.lo-1e-9 || s.Timer() >= tc.hi+1e-9 {
					t.Fatalf("interval %v outside [%v, %v)", s.Timer(), tc.lo, tc.hi)
				}
			}
		})
	}
}

func TestSpawnerWaveDistribution(t *testing.T) {
	s := NewSpawner(DefaultTuning(), vmath.NewFastRand(12345))
	const n = 20000

	kinds := map[WaveKind]int{}
	lanesSeen := map[int]int{}
	obstacleKinds := map[ObstacleKind]int{}
	for i := 0; i < n; i++ {
		w := s.draw()
		kinds[w.Kind]++
		lanesSeen[w.Lane]++
		if w.Kind == WaveObstacle {
			obstacleKinds[w.Obstacle]++
		}
	}

	check := func(label string, got int, total int, want float64) {
		frac := float64(got) / float64(total)
		if math.Abs(frac-want) > 0.03 {
			t.Errorf("%s: expected ~%.2f, got %.3f", label, want, frac)
		}
	}
	check("obstacle", kinds[WaveObstacle], n, 0.6)
	check("coins", kinds[WaveCoins], n, 0.3)
	check("gap", kinds[WaveGap], n, 0.1)
	for _, lane := range []int{-1, 0, 1} {
		check("lane", lanesSeen[lane], n, 1.0/3)
	}
	check("full", obstacleKinds[ObstacleFull], kinds[WaveObstacle], 0.5)
	if len(lanesSeen) != 3 {
		t.Errorf("lanes outside {-1,0,1}: %v", lanesSeen)
	}
}

func TestWaveEntities(t *testing.T) {
	tun := DefaultTuning()

	coins := Wave{Kind: WaveCoins, Lane: -1}.Entities(tun)
	if len(coins) != 3 {
		t.Fatalf("expected 3 coins, got %d", len(coins))
	}
	for i, c := range coins {
		if c.Kind != KindCoin {
			t.Errorf("coin %d has kind %v", i, c.Kind)
		}
		if c.Pos.X != -tun.LaneWidth {
			t.Errorf("coin %d on x=%v, want %v", i, c.Pos.X, -tun.LaneWidth)
		}
		wantZ := tun.SpawnDistance - float64(i)*2
		if c.Pos.Z != wantZ {
			t.Errorf("coin %d at z=%v, want %v", i, c.Pos.Z, wantZ)
		}
	}

	obs := Wave{Kind: WaveObstacle, Lane: 1, Obstacle: ObstacleLow}.Entities(tun)
	if len(obs) != 1 || obs[0].Obstacle != ObstacleLow || obs[0].Pos.X != tun.LaneWidth {
		t.Errorf("unexpected obstacle wave %+v", obs)
	}
	if obs[0].Pos.Z != tun.SpawnDistance {
		t.Errorf("obstacle at z=%v, want %v", obs[0].Pos.Z, tun.SpawnDistance)
	}

	if gap := (Wave{Kind: WaveGap}).Entities(tun); len(gap) != 0 {
		t.Errorf("gap wave produced %d entities", len(gap))
	}
}
