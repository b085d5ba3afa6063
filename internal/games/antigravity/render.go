package antigravity

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/antigravity/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	EyeChar      = '●'
	AuraChar     = '░'
	FistRight    = '»'
	FistLeft     = '«'
	BeamChar     = '━'
	DomeChar     = '▄'
	HullChar     = '▬'
	ShotChar     = '●'
	GroundChar   = '═'
	FillChar     = '░'
	BuildingChar = '▓'
	WindowChar   = '·'
	StarChar     = '.'
)

const (
	hudRows       = 1
	starCount     = 48
	starParallax  = 0.1
	buildingPitch = 220.0 // World units between building origins
	buildingMinW  = 120.0
	buildingMinH  = 120.0
	buildingRange = 300.0
)

type star struct {
	x, y float64 // Fractions of the sky
}

// Renderer projects snapshots onto a terminal screen. The world is scaled to
// fit whatever screen size it is given.
type Renderer struct {
	stars []star
}

// NewRenderer creates a renderer with a fixed star field.
func NewRenderer() *Renderer {
	rng := rand.New(rand.NewSource(7))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{x: rng.Float64(), y: rng.Float64()}
	}
	return &Renderer{stars: stars}
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	fieldH := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:  float64(dst.Width()) / snap.Width,
		sy:  float64(fieldH) / snap.Height,
		top: hudRows,
		w:   dst.Width(),
		h:   fieldH,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// rect returns the cell rectangle covering r, at least one cell in size.
func (v viewport) rect(r core.Rect) (x, y, w, h int) {
	x, y = v.point(r.X, r.Y)
	x2, y2 := v.point(r.Right(), r.Bottom())
	return x, y, max(x2-x, 1), max(y2-y, 1)
}

// Draw renders a full frame.
func (r *Renderer) Draw(dst *core.Screen, snap Snapshot, paused bool) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= hudRows || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	v := newViewport(dst, snap)

	r.drawStars(dst, v, snap)
	drawSkyline(dst, v, snap)
	drawGround(dst, v, snap)

	for _, e := range snap.Enemies {
		drawEnemy(dst, v, e)
	}
	for _, p := range snap.Projectiles {
		x, y := v.point(p.Rect.X+p.Rect.W/2, p.Rect.Y+p.Rect.H/2)
		dst.SetColored(x, y, ShotChar, core.ColorOrange)
	}
	drawPlayer(dst, v, snap.Player)
	for _, p := range snap.Particles {
		drawParticle(dst, v, p)
	}

	drawHUD(dst, snap)

	switch {
	case snap.Phase == PhaseNotStarted:
		drawMessage(dst, core.ColorBrightCyan,
			"A N T I G R A V I T Y",
			"",
			"A/D move   Space jump   W charge jump",
			"F toggle flight   W/S fly   Z punch   X laser",
			"",
			"Press ENTER to start")
	case snap.Phase == PhaseGameOver:
		drawMessage(dst, core.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			"Press R to restart")
	case paused:
		drawMessage(dst, core.ColorBrightYellow, "PAUSED", "", "Press P to resume")
	}
}

func (r *Renderer) drawStars(dst *core.Screen, v viewport, snap Snapshot) {
	skyH := snap.GroundY * 0.6
	for _, s := range r.stars {
		x := math.Mod(s.x*snap.Width-snap.ScrollOffset*starParallax, snap.Width)
		if x < 0 {
			x += snap.Width
		}
		cx, cy := v.point(x, s.y*skyH)
		dst.SetColored(cx, cy, StarChar, core.ColorGray)
	}
}

// drawSkyline draws buildings derived from the scroll offset alone, so the
// skyline is stable for a given offset.
func drawSkyline(dst *core.Screen, v viewport, snap Snapshot) {
	for cx := 0; cx < v.w; cx++ {
		wx := (float64(cx)+0.5)/v.sx - snap.ScrollOffset
		idx := math.Floor(wx / buildingPitch)
		h := hash(int64(idx))
		width := buildingMinW + float64(h%64)
		if wx-idx*buildingPitch > width {
			continue
		}
		height := buildingMinH + float64(h>>8)/float64(1<<24)*buildingRange

		_, top := v.point(0, snap.GroundY-height)
		_, ground := v.point(0, snap.GroundY)
		for cy := top; cy < ground; cy++ {
			if (cx+cy)%3 == 0 && cy > top {
				dst.SetColored(cx, cy, WindowChar, core.ColorYellow)
			} else {
				dst.SetColored(cx, cy, BuildingChar, core.ColorDarkBlue)
			}
		}
	}
}

func drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	_, gy := v.point(0, snap.GroundY)
	dst.DrawHLine(0, gy, v.w, GroundChar, core.ColorGray)
	for y := gy + 1; y < v.top+v.h; y++ {
		dst.DrawHLine(0, y, v.w, FillChar, core.ColorDarkBlue)
	}
}

func drawPlayer(dst *core.Screen, v viewport, p PlayerView) {
	x, y, w, h := v.rect(p.Rect)

	if p.Flying {
		dst.DrawBox(x-1, y-1, w+2, h+2, core.ColorCyan)
	}

	body := core.ColorPurple
	if p.HitFlash > 0 {
		body = core.ColorBrightRed
	}
	dst.FillRect(x, y, w, h, BodyChar, body)

	eyeX := x
	if p.FacingRight {
		eyeX = x + w - 1
	}
	dst.SetColored(eyeX, y, EyeChar, core.ColorBrightWhite)

	if p.Charging {
		n := int(math.Ceil(p.ChargeFraction * float64(w)))
		dst.DrawHLine(x, y+h, n, AuraChar, core.ColorBrightYellow)
	}

	if p.Attacking {
		fist := FistLeft
		if p.FacingRight {
			fist = FistRight
		}
		px, py, pw, ph := v.rect(p.PunchBox)
		dst.FillRect(px, py, pw, ph, fist, core.ColorBrightWhite)
	}

	if p.Shooting {
		_, by := v.point(0, p.BeamY)
		if p.FacingRight {
			dst.DrawHLine(x+w, by, v.w-(x+w), BeamChar, core.ColorBrightRed)
		} else {
			dst.DrawHLine(0, by, x, BeamChar, core.ColorBrightRed)
		}
	}
}

func drawEnemy(dst *core.Screen, v viewport, e EnemyView) {
	x, y, w, h := v.rect(e.Rect)
	c := e.Tier.Color()

	domeW := max(w/2, 1)
	dst.DrawHLine(x+(w-domeW)/2, y+h/2-1, domeW, DomeChar, c)

	hull := c
	if e.Touching {
		hull = core.ColorBrightWhite
	}
	dst.DrawHLine(x, y+h/2, w, HullChar, hull)

	if e.Tier == TierElite && e.HPFraction < 1 {
		n := int(math.Ceil(e.HPFraction * float64(w)))
		dst.DrawHLine(x, y, n, '▁', core.ColorBrightRed)
	}
}

func drawParticle(dst *core.Screen, v viewport, p ParticleView) {
	r := '·'
	switch {
	case p.Life > 0.66:
		r = '*'
	case p.Life > 0.33:
		r = '+'
	}
	x, y := v.point(p.X, p.Y)
	dst.SetColored(x, y, r, p.Color)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	parts := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		"HP " + bar(p.Health/p.MaxHealth, 10),
		"LASER " + meterLabel(p.Laser, p.Shooting, "FIRE"),
		"FLIGHT " + meterLabel(p.Flight, p.Flying, "FLY"),
	}
	if p.Charging {
		parts = append(parts, fmt.Sprintf("CHARGE %3.0f%%", p.ChargeFraction*100))
	}
	dst.DrawTextColored(1, 0, strings.Join(parts, "  "), core.ColorBrightWhite)
}

func meterLabel(m MeterView, active bool, activeLabel string) string {
	switch {
	case m.Lockout > 0:
		return fmt.Sprintf("%s LOCK %.1fs", bar(m.Fraction, 8), m.Lockout/1000)
	case active:
		return bar(m.Fraction, 8) + " " + activeLabel
	default:
		return bar(m.Fraction, 8)
	}
}

// bar renders a fraction as a fixed-width gauge.
func bar(frac float64, width int) string {
	n := int(math.Round(core.ClampF(frac, 0, 1) * float64(width)))
	return "[" + strings.Repeat("█", n) + strings.Repeat("·", width-n) + "]"
}

// drawMessage draws a boxed block of centered lines.
func drawMessage(dst *core.Screen, c core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}

// hash scrambles a building index into stable pseudo-random bits.
func hash(i int64) uint32 {
	x := uint64(i) * 0x9E3779B97F4A7C15
	x ^= x >> 29
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 32
	return uint32(x)
}
