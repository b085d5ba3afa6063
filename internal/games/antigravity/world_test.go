package antigravity

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/antigravity/internal/config"
	"github.com/vovakirdan/antigravity/internal/core"
)

// calmConfig disables spawning, enemy motion and enemy fire so tests can
// stage encounters by hand.
func calmConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialInterval = 1e12
	cfg.Enemies.ReturnSpeed = 0
	cfg.Enemies.RetreatSpeed = 0
	cfg.Enemies.SwayAmplitude = 0
	cfg.Enemies.BobAmplitude = 0
	cfg.Enemies.Normal.FireInterval = 1e12
	cfg.Enemies.Elite.FireInterval = 1e12
	return cfg
}

func runningWorld(cfg config.GameConfig) *World {
	w := NewWorld(cfg, 1)
	w.Begin()
	return w
}

// placeEnemy adds an enemy of the given tier and returns its index.
func placeEnemy(w *World, tier Tier, x, y float64) int {
	stats := w.cfg.Enemies.Normal
	if tier == TierElite {
		stats = w.cfg.Enemies.Elite
	}
	w.enemies = append(w.enemies, Enemy{
		X:            x,
		Y:            y,
		Width:        w.cfg.Enemies.Width,
		Height:       w.cfg.Enemies.Height,
		Tier:         tier,
		HP:           stats.HP,
		MaxHP:        stats.HP,
		FireInterval: stats.FireInterval,
		Score:        stats.Score,
	})
	return len(w.enemies) - 1
}

func withEvents(in core.InputFrame, evs ...core.Event) core.InputFrame {
	for _, e := range evs {
		in.Push(e)
	}
	return in
}

func TestWorldIgnoresTicksBeforeBegin(t *testing.T) {
	w := NewWorld(config.DefaultGameConfig(), 1)

	for i := 0; i < 5000; i++ {
		w.Step(16, withEvents(held(core.ControlRight), core.EventToggleFlight, core.EventRestart))
	}

	if w.Phase() != PhaseNotStarted {
		t.Errorf("Phase = %v, expected not-started", w.Phase())
	}
	if w.Tick() != 0 {
		t.Errorf("Tick = %d, expected 0", w.Tick())
	}
	if p := w.Player(); p.X != 200 || p.Flying() {
		t.Errorf("player changed before begin: X = %v flying = %v", p.X, p.Flying())
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("enemies spawned before begin: %d", len(w.Enemies()))
	}
}

func TestWorldBegin(t *testing.T) {
	w := NewWorld(config.DefaultGameConfig(), 1)

	r := w.Step(16, withEvents(held(core.ControlRight), core.EventBegin))
	if r.Transition != TransitionBegan {
		t.Errorf("Transition = %v, expected began", r.Transition)
	}
	if w.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, expected running", w.Phase())
	}
	if w.Player().X != 208 {
		t.Errorf("begin frame should also simulate, X = %v", w.Player().X)
	}

	if w.Begin() {
		t.Error("Begin while running should be ignored")
	}
	if w.Restart() {
		t.Error("Restart while running should be ignored")
	}
}

func TestSpawnBoundaryIsStrict(t *testing.T) {
	w := runningWorld(config.DefaultGameConfig())
	w.spawnTimer = 3000

	r := w.Step(16, held())
	if r.Spawned != 0 {
		t.Errorf("timer == interval should not spawn, Spawned = %d", r.Spawned)
	}
	if w.spawnTimer != 3016 {
		t.Errorf("spawnTimer = %v, expected 3016", w.spawnTimer)
	}

	r = w.Step(16, held())
	if r.Spawned != 1 {
		t.Errorf("timer > interval should spawn, Spawned = %d", r.Spawned)
	}
	if w.spawnTimer != 0 {
		t.Errorf("spawnTimer = %v, expected 0 after spawn", w.spawnTimer)
	}
	if len(w.Enemies()) != 1 {
		t.Errorf("len(enemies) = %d, expected 1", len(w.Enemies()))
	}
}

func TestSpawnIntervalRamp(t *testing.T) {
	w := runningWorld(config.DefaultGameConfig())

	w.score = 51
	w.Step(16, held())
	if w.SpawnInterval() != 2500 {
		t.Errorf("SpawnInterval = %v, expected 2500", w.SpawnInterval())
	}

	w.score = 201
	w.Step(16, held())
	if w.SpawnInterval() != 1500 {
		t.Errorf("SpawnInterval = %v, expected 1500", w.SpawnInterval())
	}
}

func TestFlightExhaustionScenario(t *testing.T) {
	w := runningWorld(calmConfig())
	w.player.X = 0

	r := w.Step(1, withEvents(held(core.ControlAscend), core.EventToggleFlight))
	if !r.FlightToggled || !w.Player().Flying() {
		t.Fatal("flight should engage with a full meter")
	}

	for tick := 2; tick <= 29999; tick++ {
		w.Step(1, held(core.ControlAscend))
	}
	if !w.Player().Flying() {
		t.Fatal("player should still fly one tick before exhaustion")
	}

	w.Step(1, held(core.ControlAscend))
	p := w.Player()
	if p.Flying() {
		t.Error("flight should be forced off on the exhausting tick")
	}
	if p.FlightMeter().Current() != 0 {
		t.Errorf("flight meter = %v, expected 0", p.FlightMeter().Current())
	}
	if p.FlightMeter().Lockout() != 1000 {
		t.Errorf("Lockout = %v, expected 1000", p.FlightMeter().Lockout())
	}

	// Re-toggling is refused for the whole lockout.
	for tick := 30001; tick <= 31000; tick++ {
		r := w.Step(1, withEvents(held(core.ControlAscend), core.EventToggleFlight))
		if r.FlightToggled || w.Player().Flying() {
			t.Fatalf("tick %d: flight re-enabled during lockout", tick)
		}
	}
	if w.Player().FlightMeter().Lockout() != 0 {
		t.Errorf("Lockout = %v, expected 0 after 1000ms", w.Player().FlightMeter().Lockout())
	}

	w.Step(1, held())
	r = w.Step(1, withEvents(held(), core.EventToggleFlight))
	if !r.FlightToggled {
		t.Error("flight should be allowed again once the meter regenerates")
	}
}

func TestSinglePunchKillsNormalEnemy(t *testing.T) {
	w := runningWorld(calmConfig())
	placeEnemy(w, TierNormal, 250, 850)

	r := w.Step(1, held(core.ControlPunch))
	if r.PunchHits != 1 || r.Kills != 1 {
		t.Errorf("PunchHits = %d Kills = %d, expected 1 and 1", r.PunchHits, r.Kills)
	}
	if w.Score() != 10 {
		t.Errorf("Score = %d, expected 10", w.Score())
	}
	if len(w.Enemies()) != 0 {
		t.Errorf("dead enemy should be swept the same tick, %d left", len(w.Enemies()))
	}
	if len(w.Particles()) != 30 {
		t.Errorf("len(particles) = %d, expected a hit burst and a death burst", len(w.Particles()))
	}

	for i := 0; i < 400; i++ {
		w.Step(1, held(core.ControlPunch))
	}
	if w.Score() != 10 {
		t.Errorf("Score = %d, expected the kill to score exactly once", w.Score())
	}
}

func TestPunchHitsOncePerActivation(t *testing.T) {
	w := runningWorld(calmConfig())
	placeEnemy(w, TierElite, 250, 850)

	hits := 0
	for tick := 1; tick <= 301; tick++ {
		r := w.Step(1, held(core.ControlPunch))
		hits += r.PunchHits
	}
	if hits != 1 {
		t.Errorf("PunchHits = %d, expected 1 within one activation", hits)
	}
	if hp := w.Enemies()[0].HP; hp != 60 {
		t.Errorf("HP = %v, expected 60", hp)
	}
	if !w.Enemies()[0].Touching {
		t.Error("overlapping enemy should be flagged as touching")
	}
	if w.Player().Health != 150 {
		t.Errorf("contact should be harmless, Health = %v", w.Player().Health)
	}

	r := w.Step(1, held(core.ControlPunch))
	if r.PunchHits != 1 || r.EliteKills != 1 {
		t.Errorf("second activation: PunchHits = %d EliteKills = %d", r.PunchHits, r.EliteKills)
	}
	if w.Score() != 20 {
		t.Errorf("Score = %d, expected 20", w.Score())
	}
}

func TestLaserHitsOnlyInFront(t *testing.T) {
	w := runningWorld(calmConfig())
	front := placeEnemy(w, TierElite, 1400, 818)
	behind := placeEnemy(w, TierElite, 50, 818)

	for i := 0; i < 10; i++ {
		w.Step(1, held(core.ControlFire))
	}

	if hp := w.Enemies()[front].HP; hp != 110 {
		t.Errorf("front enemy HP = %v, expected 110", hp)
	}
	if hp := w.Enemies()[behind].HP; hp != 120 {
		t.Errorf("enemy behind the player HP = %v, expected 120", hp)
	}
}

func TestLaserDamageAccruesPerTick(t *testing.T) {
	w := runningWorld(calmConfig())
	placeEnemy(w, TierElite, 1400, 818)

	ticks := 0
	for i := 0; i < 100; i++ {
		r := w.Step(1, held(core.ControlFire))
		ticks += r.LaserTicks
	}
	if ticks != 100 {
		t.Errorf("LaserTicks = %d, expected 100", ticks)
	}
	if hp := w.Enemies()[0].HP; hp != 20 {
		t.Errorf("HP = %v, expected 20", hp)
	}

	kills := 0
	for i := 0; i < 50; i++ {
		r := w.Step(1, held(core.ControlFire))
		kills += r.Kills
	}
	if kills != 1 || w.Score() != 20 || len(w.Enemies()) != 0 {
		t.Errorf("kills = %d score = %d enemies = %d", kills, w.Score(), len(w.Enemies()))
	}
}

func TestPunchAndLaserKillScoresOnce(t *testing.T) {
	w := runningWorld(calmConfig())
	i := placeEnemy(w, TierNormal, 250, 818)
	w.enemies[i].HP = 1

	r := w.Step(1, held(core.ControlPunch, core.ControlFire))
	if r.Kills != 1 || w.Score() != 10 {
		t.Errorf("Kills = %d Score = %d, expected 1 and 10", r.Kills, w.Score())
	}
	if r.LaserTicks != 0 {
		t.Errorf("laser should skip an enemy already killed this tick")
	}
}

func TestProjectileHitEndsRun(t *testing.T) {
	w := runningWorld(calmConfig())
	w.player.Health = 10
	w.projectiles = append(w.projectiles, Projectile{X: 240, Y: 900, Size: 15, Damage: 10})

	r := w.Step(16, held())
	if r.PlayerHits != 1 || r.DamageTaken != 10 {
		t.Errorf("PlayerHits = %d DamageTaken = %v", r.PlayerHits, r.DamageTaken)
	}
	if r.Transition != TransitionGameOver || w.Phase() != PhaseGameOver {
		t.Errorf("Transition = %v Phase = %v, expected game over", r.Transition, w.Phase())
	}
	if len(w.Projectiles()) != 0 {
		t.Errorf("projectile should be consumed by the hit")
	}

	tick := w.Tick()
	w.Step(16, withEvents(held(core.ControlRight), core.EventBegin, core.EventToggleFlight))
	if w.Tick() != tick {
		t.Error("game over should not simulate")
	}
}

func TestRestartResetsRun(t *testing.T) {
	w := runningWorld(calmConfig())
	placeEnemy(w, TierNormal, 1500, 100)
	w.projectiles = append(w.projectiles, Projectile{X: 1000, Y: 10, Size: 15, Damage: 10})
	w.burst(500, 500, core.ColorWhite, 15)
	w.score = 70
	w.spawnInterval = 1500
	w.scrollOffset = -300
	w.player.X = 700
	w.player.ToggleFlight()
	w.player.TakeDamage(1000)

	w.Step(16, held())
	if w.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, expected game over", w.Phase())
	}

	r := w.Step(16, withEvents(held(), core.EventRestart))
	if r.Transition != TransitionRestarted {
		t.Errorf("Transition = %v, expected restarted", r.Transition)
	}
	if w.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, expected running", w.Phase())
	}
	if w.Score() != 0 {
		t.Errorf("Score = %d, expected 0", w.Score())
	}
	if len(w.Enemies())+len(w.Projectiles())+len(w.Particles()) != 0 {
		t.Errorf("collections not cleared: %d enemies %d shots %d particles",
			len(w.Enemies()), len(w.Projectiles()), len(w.Particles()))
	}
	if w.SpawnInterval() != w.cfg.Difficulty.InitialInterval {
		t.Errorf("SpawnInterval = %v, expected initial", w.SpawnInterval())
	}
	p := w.Player()
	if p.Health != p.MaxHealth || p.X != 200 || p.Y != 852 || p.Flying() {
		t.Errorf("player not restored: %+v", p)
	}
	if w.Stats().Ticks != 1 {
		t.Errorf("Stats.Ticks = %d, expected 1", w.Stats().Ticks)
	}
}

func TestEscapedEnemyIsRemovedSilently(t *testing.T) {
	w := runningWorld(calmConfig())
	placeEnemy(w, TierNormal, -150, 100)

	r := w.Step(16, held())
	if r.Escaped != 1 || r.Kills != 0 {
		t.Errorf("Escaped = %d Kills = %d", r.Escaped, r.Kills)
	}
	if len(w.Enemies()) != 0 || w.Score() != 0 {
		t.Errorf("escaped enemy should vanish without score")
	}
}

func TestScrollPinsPlayer(t *testing.T) {
	w := runningWorld(calmConfig())
	w.player.X = 1000

	w.Step(16, held(core.ControlRight))
	if w.ScrollSpeed() != 0 || w.Player().X != 1008 {
		t.Errorf("first tick: scroll = %v X = %v", w.ScrollSpeed(), w.Player().X)
	}

	w.Step(16, held(core.ControlRight))
	if w.ScrollSpeed() != 8 {
		t.Errorf("ScrollSpeed = %v, expected 8", w.ScrollSpeed())
	}
	if w.Player().X != 776 {
		t.Errorf("X = %v, expected pinned 768 plus one step", w.Player().X)
	}
	if w.ScrollOffset() != -4 {
		t.Errorf("ScrollOffset = %v, expected -4", w.ScrollOffset())
	}
}

func TestScrollOffsetWraps(t *testing.T) {
	w := runningWorld(calmConfig())
	w.player.X = 1000
	w.player.Speed = 8
	w.scrollOffset = -1998

	w.Step(16, held(core.ControlRight))
	if w.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset = %v, expected wrap to 0", w.ScrollOffset())
	}
}

func TestParticleDecayIgnoresFrameTime(t *testing.T) {
	for _, dt := range []float64{1, 1000} {
		w := runningWorld(calmConfig())
		w.particles = append(w.particles,
			Particle{X: 100, Y: 100, Life: 1, Decay: 0.05},
			Particle{X: 100, Y: 100, Life: 0.01, Decay: 0.05},
		)

		w.Step(dt, held())
		if len(w.Particles()) != 1 {
			t.Fatalf("dt=%v: len(particles) = %d, expected 1", dt, len(w.Particles()))
		}
		if !near(w.Particles()[0].Life, 0.95) {
			t.Errorf("dt=%v: Life = %v, expected 0.95", dt, w.Particles()[0].Life)
		}
	}
}

// scriptedInput is a fixed input pattern that exercises every control.
func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	if i%200 < 120 {
		in.Hold(core.ControlRight)
	} else if i%200 < 150 {
		in.Hold(core.ControlLeft)
	}
	if i%90 < 30 {
		in.Hold(core.ControlFire)
	}
	if i%50 == 0 {
		in.Hold(core.ControlPunch)
	}
	if i%300 < 60 {
		in.Hold(core.ControlAscend)
		in.Hold(core.ControlCharge)
	}
	if i%700 == 0 {
		in.Push(core.EventToggleFlight)
	}
	if i%1000 == 999 {
		in.Push(core.EventRestart)
	}
	return in
}

func TestWorldDeterminism(t *testing.T) {
	run := func() Snapshot {
		w := NewWorld(config.DefaultGameConfig(), 42)
		w.Begin()
		for i := 0; i < 6000; i++ {
			w.Step(16.67, scriptedInput(i))
		}
		return w.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and input produced different worlds")
	}
	if a.Tick == 0 {
		t.Error("world did not advance")
	}
}

func TestWorldInvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := NewWorld(config.DefaultGameConfig(), 7)
	w.Begin()

	controls := []core.Control{
		core.ControlLeft, core.ControlRight, core.ControlAscend, core.ControlDescend,
		core.ControlJump, core.ControlCharge, core.ControlPunch, core.ControlFire,
	}

	for i := 0; i < 30000; i++ {
		in := core.NewInputFrame()
		for _, c := range controls {
			if rng.Intn(3) == 0 {
				in.Hold(c)
			}
		}
		if rng.Intn(100) == 0 {
			in.Push(core.EventToggleFlight)
		}
		if w.Phase() == PhaseGameOver {
			in.Push(core.EventRestart)
		}

		before := w.Score()
		r := w.Step(rng.Float64()*40, in)

		if r.Transition != TransitionRestarted {
			gained := 10*(r.Kills-r.EliteKills) + 20*r.EliteKills
			if w.Score()-before != gained {
				t.Fatalf("tick %d: score moved by %d for %d kills", i, w.Score()-before, r.Kills)
			}
		}

		p := w.Player()
		for _, m := range []Meter{p.LaserMeter(), p.FlightMeter()} {
			if m.Current() < 0 || m.Current() > m.Max() || m.Lockout() < 0 {
				t.Fatalf("tick %d: meter out of range: %+v", i, m)
			}
		}
		if p.FlightMeter().LockedOut() && p.Flying() {
			t.Fatalf("tick %d: flying during lockout", i)
		}
		if p.LaserMeter().LockedOut() && p.Shooting() {
			t.Fatalf("tick %d: shooting during lockout", i)
		}
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("tick %d: health %v out of range", i, p.Health)
		}
		for _, e := range w.Enemies() {
			if e.HP <= 0 {
				t.Fatalf("tick %d: dead enemy survived the sweep", i)
			}
		}
		for _, pa := range w.Particles() {
			if !pa.Alive() {
				t.Fatalf("tick %d: dead particle survived the sweep", i)
			}
		}
	}
}
