// Command smokedemo renders interactive pointer trails in the terminal.
//
// Drag with the left mouse button to draw smoke. Each drag is one
// pointer session with its own trail; released trails fade out over
// the configured afterlife and are reclaimed. Press Esc or q to quit.
//
// Configuration comes from the environment:
//
//	SMOKE_RADIUS    sample radius in pixels (default 6)
//	SMOKE_AFTERLIFE fade duration in ms (default 1200)
//	SMOKE_SEED      rotation seed (default 1)
//	SMOKE_FPS       frame rate (default 30)
package main

import (
	"log"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/smoke"
	"github.com/gogpu/smoke/render"
)

type config struct {
	Radius    float64 `env:"SMOKE_RADIUS" envDefault:"6"`
	Afterlife float64 `env:"SMOKE_AFTERLIFE" envDefault:"1200"`
	Seed      int64   `env:"SMOKE_SEED" envDefault:"1"`
	FPS       int     `env:"SMOKE_FPS" envDefault:"30"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("smokedemo: parse env: %v", err)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("smokedemo: create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("smokedemo: init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	w, h := screen.Size()
	// Terminal cells are presented as half blocks: one cell holds two
	// vertically stacked pixels.
	pix := smoke.NewPixmap(w, h*2)

	tex := puffTexture(32)
	opts := []smoke.Option{
		smoke.WithRadius(cfg.Radius),
		smoke.WithAfterlife(cfg.Afterlife),
		smoke.WithRotationSeed(cfg.Seed),
		smoke.WithTexture(tex),
		smoke.WithDrawSize(float64(w), float64(h*2)),
		smoke.WithTimeColor(smoke.AgeFade(cfg.Afterlife)),
		smoke.WithPositionColor(smoke.GradientAcross([]smoke.ColorStop{
			{Offset: 0, Color: smoke.RGB(0.9, 0.9, 1.0)},
			{Offset: 1, Color: smoke.RGB(0.4, 0.5, 0.8)},
		}, smoke.AxisY)),
	}

	clock := smoke.NewSystemClock()
	stage := smoke.NewStage()
	var trail *smoke.Trail

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	builder := smoke.NewQuadBuilder()
	renderer := render.NewSoftware()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC ||
					(e.Key() == tcell.KeyRune && e.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				w, h = screen.Size()
				pix = smoke.NewPixmap(w, h*2)
				screen.Sync()
			case *tcell.EventMouse:
				x, y := e.Position()
				now := clock.Now()
				if e.Buttons()&tcell.Button1 != 0 {
					if trail == nil || !trail.Active() {
						trail = stage.StartTrail(now, opts...)
					}
					trail.Move(smoke.Pt(float64(x), float64(y*2)), now)
				} else if trail != nil {
					trail.End(now)
					trail = nil
				}
			}
		case <-ticker.C:
			now := clock.Now()
			stage.Update(now)
			snaps := stage.Snapshots(now)

			batch := smoke.GetBatch()
			for i := range snaps {
				builder.Build(&snaps[i], smoke.Identity(), batch)
			}
			pix.Clear(smoke.Black)
			renderer.Draw(pix, batch, tex)
			smoke.PutBatch(batch)

			present(screen, pix)
		}
	}
}

// present draws the pixmap with half-block cells: the foreground colors
// the upper pixel and the background the lower one.
func present(screen tcell.Screen, pix *smoke.Pixmap) {
	w := pix.Width()
	rows := pix.Height() / 2
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			top := pix.GetPixel(x, y*2)
			bot := pix.GetPixel(x, y*2+1)
			st := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bot))
			screen.SetContent(x, y, '▀', nil, st)
		}
	}
	screen.Show()
}

func toTcell(c smoke.RGBA) tcell.Color {
	return tcell.NewRGBColor(
		int32(c.R*c.A*255),
		int32(c.G*c.A*255),
		int32(c.B*c.A*255),
	)
}

// puffTexture builds a soft radial alpha falloff, the classic smoke
// particle sprite.
func puffTexture(size int) *smoke.Texture {
	pm := smoke.NewPixmap(size, size)
	center := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) - center) / center
			dy := (float64(y) - center) / center
			d := math.Sqrt(dx*dx + dy*dy)
			a := 1 - d
			if a < 0 {
				a = 0
			}
			pm.SetPixel(x, y, smoke.White.WithAlpha(a*a))
		}
	}
	return smoke.NewTexture(pm)
}
