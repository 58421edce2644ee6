package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fishtank/asset"
	"github.com/lixenwraith/fishtank/behavior"
	"github.com/lixenwraith/fishtank/core"
	"github.com/lixenwraith/fishtank/engine"
	"github.com/lixenwraith/fishtank/spawn"
	"github.com/lixenwraith/fishtank/status"
	"github.com/lixenwraith/fishtank/swim"
	"github.com/lixenwraith/fishtank/terminal"
)

const (
	bubbleMax     = 6
	bubbleChance  = 0.08
	bigFishMax    = 1
	bigFishChance = 0.03
	chimeHz       = 1320
	chimeMs       = 40
)

const sampleText = `The office aquarium has outlived three reorgs and a merger.
Nobody waters the plants, but everybody feeds the fish.

	Monday:    changed the filter, cleaned the glass
	Tuesday:   counted nine neon tetras, found ten
	Wednesday: the snail reached the far corner
	Thursday:  the snail reconsidered
	Friday:    water change, two buckets, no casualties

The heater hums a half-step below the fluorescent lights.
Bubbles climb the airline hose and lose their nerve
halfway up, wobbling sideways into the plastic kelp.

A castle sits in the gravel, bought for a tank
twice this size. The big fish circles it anyway,
patient as a landlord, certain of the rent.

Visitors tap the glass. The fish have learned
that nothing follows the tapping, neither food
nor weather, and they keep their distance from
the warm spot where the light leans on the water.`

type options struct {
	text     string
	interval time.Duration
	maxFish  int
	chance   float64
	spec     behavior.Spec
	tabstop  int
	seed     int64
	sound    bool
}

type app struct {
	screen    tcell.Screen
	host      *terminal.Host
	eng       *engine.Engine
	interval  time.Duration
	audioInit bool
}

func newApp(opts options) (*app, error) {
	a := &app{interval: opts.interval}

	if opts.sound {
		if err := a.initAudio(); err != nil {
			// Non-fatal, the tank runs silent
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v\n", err)
		}
	}

	fishCfg := spawn.DefaultConfig()
	fishCfg.Max = opts.maxFish
	fishCfg.Chance = opts.chance
	fishCfg.Behavior = opts.spec
	fishSpawner, err := spawn.NewSpawner(fishCfg)
	if err != nil {
		return nil, err
	}

	bigSpawner, err := spawn.NewSpawner(spawn.Config{
		Max:         bigFishMax,
		Chance:      bigFishChance,
		Style:       "big",
		SpriteRight: asset.BigFishRight,
		SpriteLeft:  asset.BigFishLeft,
		Species:     "big",
		Behavior:    behavior.Spec{Name: "horizontal"},
	})
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	reg := status.NewRegistry()
	host := terminal.New(screen, terminal.Config{
		Tabstop: opts.tabstop,
		Styles:  terminal.DefaultStyles(),
		Status:  reg,
	})
	host.SetText(opts.text)

	a.screen = screen
	a.host = host
	a.eng = engine.New(host, engine.Config{
		Rand:   core.NewRand(opts.seed),
		Status: reg,
	})

	var fish engine.Spawner = fishSpawner
	if a.audioInit {
		fish = engine.SpawnerFunc(func(ctx *swim.Context) *swim.Swimmer {
			s := fishSpawner.Spawn(ctx)
			if s != nil {
				a.playSpawnSound()
			}
			return s
		})
	}
	a.eng.RegisterSpawner(fish)
	a.eng.RegisterSpawner(bigSpawner)
	a.eng.RegisterSpawner(engine.SpawnerFunc(spawnBubble))

	return a, nil
}

func (a *app) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *app) playSpawnSound() {
	if !a.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(chimeMs * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, chimeHz)

	buffer := beep.Take(duration, sine)
	speaker.Play(buffer)
}

func (a *app) run() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			a.screen.Sync()
			a.host.Render()
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyDown:
		a.host.ScrollBy(1)
		return true
	case tcell.KeyUp:
		a.host.ScrollBy(-1)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 't', 'T':
			_ = a.eng.Toggle(a.interval)
		case 'j':
			a.host.ScrollBy(1)
		case 'k':
			a.host.ScrollBy(-1)
		}
	}
	return true
}

func (a *app) cleanup() {
	a.eng.Stop()
	if a.audioInit {
		speaker.Close()
	}
	a.host.Close()
	a.screen.Fini()
}

// printSummary dumps the session counters once the terminal is restored
func (a *app) printSummary() {
	reg := a.eng.Status()
	fmt.Println("session counters:")
	reg.WalkInts(func(key string, val int64) {
		fmt.Printf("  %s: %d\n", key, val)
	})
	reg.WalkFloats(func(key string, val float64) {
		fmt.Printf("  %s: %.3f\n", key, val)
	})
}

// ===== Bubbles =====

// bubble rises from the tank floor and pops at the surface. It ignores the
// horizontal removal rule entirely.
type bubble struct{}

func (bubble) Advance(s *swim.Swimmer, ctx *swim.Context) {
	s.Row -= s.Speed
	if ctx.Rand != nil && ctx.Rand.Float64() < 0.3 {
		if ctx.Rand.Intn(2) == 0 {
			s.Col--
		} else {
			s.Col++
		}
	}
}

func (bubble) Done(s *swim.Swimmer, ctx *swim.Context) bool {
	return s.Row < 0
}

var bubbleSprite = core.NewSprite(asset.Bubble)

func spawnBubble(ctx *swim.Context) *swim.Swimmer {
	if ctx.Rand == nil || ctx.Rand.Float64() >= bubbleChance {
		return nil
	}
	if ctx.Population("bubble") >= bubbleMax {
		return nil
	}

	s := swim.New(bubbleSprite, bubble{})
	s.Species = "bubble"
	s.Style = "bubble"
	s.Speed = 0.3 + ctx.Rand.Float64()*0.4
	s.Row = float64(ctx.Height - 1)
	w := ctx.Width
	if w < 1 {
		w = 1
	}
	s.Col = float64(ctx.Rand.Intn(w))
	return s
}

// ===== Behavior selection =====

// drift glides diagonally, easing down for a stretch and then back up
func drift(tick int64, s *swim.Swimmer, ctx *swim.Context) (float64, float64) {
	dy := 0.15
	if (tick/40)%2 == 1 {
		dy = -0.15
	}
	return s.Speed * float64(s.Dir), dy
}

func fishSpec(preset, seekCSV string) behavior.Spec {
	switch preset {
	case "drift":
		return behavior.Spec{Func: drift}
	case "seek":
		var patterns []string
		for _, w := range strings.Split(seekCSV, ",") {
			if w = strings.TrimSpace(w); w != "" {
				patterns = append(patterns, w)
			}
		}
		return behavior.Spec{Name: "seek", Options: &behavior.Options{
			Patterns: patterns,
			Handoff:  &behavior.Spec{Name: "wander"},
		}}
	default:
		return behavior.Spec{Name: preset}
	}
}

func main() {
	var (
		file     string
		interval time.Duration
		maxFish  int
		chance   float64
		preset   string
		seekCSV  string
		tabstop  int
		seed     int64
		sound    bool
	)

	flag.StringVar(&file, "file", "", "Text file to display (built-in sample when empty)")
	flag.DurationVar(&interval, "interval", engine.DefaultTickInterval, "Tick interval")
	flag.IntVar(&maxFish, "max", 5, "Fish population cap")
	flag.Float64Var(&chance, "chance", 0.2, "Per-tick spawn chance, 0 to 1")
	flag.StringVar(&preset, "behavior", "wander", "Fish behavior: horizontal, wander, sine, zigzag, seek, drift")
	flag.StringVar(&seekCSV, "seek", "the,water", "Comma-separated patterns for -behavior seek")
	flag.IntVar(&tabstop, "tabstop", 8, "Tab expansion width")
	flag.Int64Var(&seed, "seed", 0, "RNG seed, 0 seeds from the clock")
	flag.BoolVar(&sound, "sound", false, "Play a chime when a fish spawns")
	flag.Parse()

	text := sampleText
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", file, err)
			os.Exit(1)
		}
		text = string(data)
	}

	app, err := newApp(options{
		text:     text,
		interval: interval,
		maxFish:  maxFish,
		chance:   chance,
		spec:     fishSpec(preset, seekCSV),
		tabstop:  tabstop,
		seed:     seed,
		sound:    sound,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	defer app.printSummary()
	defer app.cleanup()

	// Restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			app.screen.Fini()
			fmt.Fprintf(os.Stderr, "fishtank crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := app.eng.Start(app.interval); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start engine: %v\n", err)
		return
	}

	app.run()
}
