// road_tui 终端版：用 tcell 绘制俯视道路，方向键或 WASD 移动
//
// 按键: 方向键/WASD 移动，r 重开，m 开关声音，F3 调试信息，q/Esc 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/game"
	"github.com/decker502/crossroad/pkg/physics"
	"github.com/decker502/crossroad/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// appName 与桌面端共用设置存储
const appName = "crossroad"

// maxFrameDelta 单帧最大步长（终端被挂起后恢复时避免一次推进过多）
const maxFrameDelta = 0.25

var (
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置或当前时间）")
	configPath = flag.String("config", "", "模拟配置文件路径（为空使用内置默认值）")
	sound      = flag.Bool("sound", false, "打开音频设备播放提示音（运行时用 m 开关）")
	logPath    = flag.String("log", "", "日志文件路径（终端界面下默认不输出日志）")
)

func main() {
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "road_tui: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultSimConfig()
	if *configPath != "" {
		loaded, err := config.LoadSimConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "road_tui: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	g, err := newTUIGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "road_tui: %v\n", err)
		os.Exit(1)
	}
	g.run()
}

// setupLog 终端界面占用标准输出，日志只能写文件
func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

// session 一局：模拟核心 + 物理引擎
type session struct {
	seed       int64
	simulation *game.Simulation
	physics    *physics.World
}

func newSession(cfg *config.SimConfig, seed int64, input *terminalInput) (*session, error) {
	local := *cfg
	local.Seed = seed
	sim, err := game.NewSimulation(&local, game.NewRandomSource(seed), input)
	if err != nil {
		return nil, err
	}
	log.Printf("[TUI] New run with seed=%d", seed)
	return &session{
		seed:       seed,
		simulation: sim,
		physics:    physics.NewWorld(sim.World().EntityManager, local.Physics.Gravity),
	}, nil
}

// step 推进一帧；模拟拒绝时物理也不推进
func (s *session) step(dt float64) error {
	if err := s.simulation.Update(dt); err != nil {
		return err
	}
	s.physics.Step(dt)
	return nil
}

type tuiGame struct {
	screen   tcell.Screen
	cfg      *config.SimConfig
	input    *terminalInput
	session  *session
	renderer *renderer
	settings *game.SettingsManager
	chirper  *chirper

	lastScore int
	lastHops  int
	lastFrame time.Time
}

func newTUIGame(cfg *config.SimConfig) (*tuiGame, error) {
	input := newTerminalInput(defaultHoldWindow)
	s, err := newSession(cfg, game.PickSeed(*seed, cfg.Seed), input)
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

	settings := game.OpenSettings(appName)
	prefs := settings.GetSettings()

	w, h := screen.Size()
	r := &renderer{projection: utils.NewProjection(cfg.Camera, float64(w), float64(h),
		config.TerminalCellsPerUnitX, config.TerminalCellsPerUnitZ)}
	r.Resize(w, h)

	return &tuiGame{
		screen:    screen,
		cfg:       cfg,
		input:     input,
		session:   s,
		renderer:  r,
		settings:  settings,
		chirper:   newChirper(*sound, prefs.SoundEnabled, prefs.SoundVolume),
		lastFrame: time.Now(),
	}, nil
}

func (g *tuiGame) run() {
	defer g.screen.Fini()
	defer g.chirper.Close()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(g.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.frame(now)
		}
	}
}

// eventPoller tcell.Screen 中事件读取的部分
type eventPoller interface {
	PollEvent() tcell.Event
}

// pollEvents 把终端事件转发到 out
// PollEvent 返回 nil（屏幕已 Fini）或 done 关闭时退出
func pollEvents(src eventPoller, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent 返回 false 表示退出
func (g *tuiGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if g.input.HandleKey(ev) {
			return true
		}
		if ev.Key() == tcell.KeyF3 {
			g.settings.SetShowDebug(!g.settings.GetSettings().ShowDebug)
			g.saveSettings()
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				g.restart(time.Now().UnixNano())
			case 'm', 'M':
				enabled := !g.settings.GetSettings().SoundEnabled
				g.settings.SetSoundEnabled(enabled)
				g.chirper.SetEnabled(enabled)
				g.saveSettings()
			}
		}
	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.renderer.Resize(w, h)
		g.screen.Sync()
	}
	return true
}

func (g *tuiGame) saveSettings() {
	if err := g.settings.Save(); err != nil {
		log.Printf("[TUI] 保存设置失败: %v", err)
	}
}

func (g *tuiGame) restart(seed int64) {
	s, err := newSession(g.cfg, seed, g.input)
	if err != nil {
		log.Printf("[TUI] 重开失败，保留当前一局: %v", err)
		return
	}
	g.session = s
	g.lastScore, g.lastHops = 0, 0
}

func (g *tuiGame) frame(now time.Time) {
	dt := min(now.Sub(g.lastFrame).Seconds(), maxFrameDelta)
	g.lastFrame = now

	if err := g.session.step(dt); err != nil {
		log.Printf("[TUI] Update rejected: %v", err)
	}
	g.input.EndFrame()

	sim := g.session.simulation
	score, hops := sim.Score(), sim.Stats().Hops
	g.chirper.Play(game.CuesFor(g.lastScore, score, g.lastHops, hops))
	g.lastScore, g.lastHops = score, hops

	status := fmt.Sprintf("seed %d  [arrows/wasd] move  r restart  m sound  q quit", g.session.seed)
	g.renderer.Draw(g.screen, sim.Snapshot(), status, g.settings.GetSettings().ShowDebug)
	g.screen.Show()
}
