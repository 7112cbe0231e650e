package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/skirmish/player"
	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/sim"
)

const (
	screenWidth  = 1280
	screenHeight = 960
)

type Game struct {
	arenaName string
	seed      uint64
	sim       *sim.Simulation
	watcher   *prefabs.Watcher
	logger    *log.Logger

	pauseUI   *ebitenui.UI
	paused    bool
	quit      bool
	clipboard bool
	hud       *hud
}

func NewGame(arenaName string, seed uint64, watch bool, logger *log.Logger) (*Game, error) {
	g := &Game{arenaName: arenaName, seed: seed, logger: logger}
	if err := g.restart(); err != nil {
		return nil, err
	}

	if watch {
		dirs := []string{prefabs.Dir}
		if info, err := os.Stat(filepath.Join(prefabs.Dir, "scripts")); err == nil && info.IsDir() {
			dirs = append(dirs, filepath.Join(prefabs.Dir, "scripts"))
		}
		w, err := prefabs.NewWatcher(prefabs.DefaultDebounce, dirs...)
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboard = true
	}

	g.pauseUI = NewPauseUI(g)
	g.hud = newHUD()
	return g, nil
}

func (g *Game) restart() error {
	if g.sim != nil {
		g.sim.Close()
		g.seed++
	}
	s, err := sim.Load(g.arenaName, sim.WithSeed(g.seed), sim.WithLogger(g.logger))
	if err != nil {
		return err
	}
	g.sim = s
	g.paused = false
	return nil
}

func (g *Game) frame() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.pollWatcher()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			g.logger.Error("restart", "err", err)
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}

	dt := g.frame()
	g.applyInput(dt)
	return g.sim.Step(dt)
}

func (g *Game) applyInput(dt time.Duration) {
	in := g.sim.Input
	in.BeginFrame(dt)
	in.Axis(player.BindMoveForward, axis(ebiten.KeyW, ebiten.KeyS))
	in.Axis(player.BindMoveRight, axis(ebiten.KeyD, ebiten.KeyA))
	in.Axis(player.BindTurnRate, axis(ebiten.KeyArrowRight, ebiten.KeyArrowLeft))
	in.Axis(player.BindLookUpRate, axis(ebiten.KeyArrowUp, ebiten.KeyArrowDown))
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Action(player.BindFire)
	}
}

func axis(pos, neg ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}

// pollWatcher applies pending prefab edits without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Script {
		g.logger.Info("script changed, press R to restart with it", "script", change.Name)
		return
	}
	spec, err := prefabs.LoadAgentSpec(change.Name)
	if err != nil {
		g.logger.Warn("reload", "prefab", change.Name, "err", err)
		return
	}
	if n := g.sim.ApplyTuning(change.Name, spec); n == 0 {
		g.logger.Debug("prefab changed, no live agents use it", "prefab", change.Name)
	}
}

func (g *Game) copyReport() {
	if !g.clipboard {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.sim.Report().String()))
	g.logger.Info("report copied")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.sim != nil {
		g.sim.Close()
	}
}
