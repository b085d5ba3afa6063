package antigravity

import (
	"github.com/vovakirdan/antigravity/internal/core"
)

// resolveCombat applies punch and laser hits to every live enemy and flags
// body contact. Kills are marked, never removed, here.
func (w *World) resolveCombat(r *TickReport) {
	body := w.player.Rect()

	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.alive() {
			continue
		}

		hb := e.Hitbox(w.cfg.Enemies.Hitbox)

		// Contact is harmless.
		e.Touching = body.Intersects(hb)

		if w.player.CanDamage() && w.player.PunchBox().Intersects(hb) {
			w.player.disarm()
			r.PunchHits++
			cx, cy := e.Center()
			w.burst(cx, cy, core.ColorWhite, w.cfg.Particles.HitBurstCount)
			w.damageEnemy(e, w.cfg.Combat.MeleeDamage, r)
		}

		if e.dead || !w.player.Shooting() {
			continue
		}
		if inBeam(w.player, hb, w.cfg.Combat.BeamHalfWidth) && inFront(w.player, *e) {
			r.LaserTicks++
			cx, cy := e.Center()
			w.burst(cx, cy, core.ColorRed, w.cfg.Particles.LaserBurstCount)
			w.damageEnemy(e, w.cfg.Combat.LaserDamage, r)
		}
	}
}

// damageEnemy lowers hp and, on the killing blow, scores the enemy exactly once.
func (w *World) damageEnemy(e *Enemy, amount float64, r *TickReport) {
	e.HP -= amount
	if e.HP > 0 || e.dead {
		return
	}

	e.dead = true
	w.score += e.Score
	r.Kills++
	w.stats.Kills++
	if e.Tier == TierElite {
		r.EliteKills++
		w.stats.EliteKills++
	}

	cx, cy := e.Center()
	w.burst(cx, cy, e.Tier.Color(), w.cfg.Particles.BurstCount)
}

// resolveProjectiles advances enemy shots and applies hits on the player.
func (w *World) resolveProjectiles(r *TickReport) {
	for i := range w.projectiles {
		p := &w.projectiles[i]
		// A shot leaving the world this tick can still clip the player.
		p.update(w.scroll, w.cfg.World.Width, w.cfg.World.Height)
		if w.player.Rect().Intersects(p.Rect()) {
			p.dead = true
			w.player.TakeDamage(p.Damage)
			r.PlayerHits++
			r.DamageTaken += p.Damage
			w.stats.DamageTaken += p.Damage
		}
	}
}

// inBeam reports whether a hitbox overlaps the horizontal band around the
// player's beam line.
func inBeam(p Player, hb core.Rect, halfWidth float64) bool {
	y := p.BeamY()
	return hb.Y < y+halfWidth && hb.Bottom() > y-halfWidth
}

// inFront reports whether the enemy lies on the side the player faces.
func inFront(p Player, e Enemy) bool {
	if p.FacingRight {
		return e.X > p.X
	}
	return e.X < p.X
}
