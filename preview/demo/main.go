// Demo is a live animation preview: three rectangles driven by cue
// players, sampled once per frame from a running clock. Click anywhere to
// restart the timeline; press space to pause and resume.
//
// The export example in the root module samples the very same engine at
// fixed intervals; the two consumers disagree only about where time
// comes from.
package main

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/cue"
	"github.com/phanxgames/cue/preview"
)

const (
	screenW = 640
	screenH = 480
)

// box is one animated rectangle.
type box struct {
	img    *ebiten.Image
	x, y   float64
	w, h   float64
	player *cue.Player
}

type game struct {
	boxes []*box
	last  time.Time
}

func newBox(w, h float64, fill color.RGBA, x, y float64, set cue.PhaseSet, win *cue.Window) *box {
	img := ebiten.NewImage(int(w), int(h))
	img.Fill(fill)
	player, err := cue.NewPlayer(set, win)
	if err != nil {
		log.Fatalf("invalid phase set: %v", err)
	}
	return &box{img: img, x: x, y: y, w: w, h: h, player: player}
}

func newGame() *game {
	g := &game{last: time.Now()}

	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	// A slide-in title that pulses forever. No window: live-editor mode.
	g.boxes = append(g.boxes, newBox(360, 60, color.RGBA{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}, 140, 40,
		cue.PhaseSet{
			Enter: &cue.Descriptor{Effect: cue.SlideInLeft, Duration: ms(600), Easing: cue.EaseOut},
			Loop:  &cue.Descriptor{Effect: cue.Pulse, Duration: ms(1400), Easing: cue.InOutSine},
		}, nil))

	// A card bouncing in late, exiting near the end of its window.
	win := cue.Window{Start: ms(400), Duration: ms(6000)}
	g.boxes = append(g.boxes, newBox(240, 150, color.RGBA{R: 0x33, G: 0x88, B: 0xee, A: 0xff}, 200, 160,
		cue.PhaseSet{
			Enter: &cue.Descriptor{Effect: cue.BounceIn, Duration: ms(700), Easing: cue.Linear},
			Exit:  &cue.Descriptor{Effect: cue.SlideOutDown, Duration: ms(500), Easing: cue.EaseIn},
		}, &win))

	// A badge that shakes, staggered as if it were the third of a batch.
	badgeEnter := cue.Descriptor{
		Effect: cue.ScaleIn, Duration: ms(400), Easing: cue.OutBack, Stagger: ms(150),
	}.Staggered(2)
	g.boxes = append(g.boxes, newBox(90, 90, color.RGBA{R: 0xee, G: 0x55, B: 0x66, A: 0xff}, 470, 330,
		cue.PhaseSet{
			Enter: &badgeEnter,
			Loop:  &cue.Descriptor{Effect: cue.Shake, Duration: ms(900), Easing: cue.Linear},
		}, nil))

	return g
}

func (g *game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, b := range g.boxes {
			b.player.Restart()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		for _, b := range g.boxes {
			if b.player.Playing() {
				b.player.Pause()
			} else {
				b.player.Play()
			}
		}
	}

	for _, b := range g.boxes {
		b.player.Advance(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x14, G: 0x14, B: 0x1f, A: 0xff})
	for _, b := range g.boxes {
		op, ok := preview.DrawOptions(b.player.State(), b.w, b.h)
		if !ok {
			continue
		}
		op.GeoM.Translate(b.x, b.y)
		screen.DrawImage(b.img, op)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("cue live preview demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
