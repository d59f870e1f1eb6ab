package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/game"
	"github.com/decker502/crossroad/pkg/physics"
	"github.com/decker502/crossroad/pkg/systems"
	"github.com/decker502/crossroad/pkg/types"
	"github.com/decker502/crossroad/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ game.Scene = (*RoadScene)(nil)

// 颜色
var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 36, A: 255}
	trafficColor    = color.RGBA{R: 70, G: 70, B: 78, A: 255}
	riverColor      = color.RGBA{R: 40, G: 90, B: 160, A: 255}
	grassColor      = color.RGBA{R: 60, G: 130, B: 60, A: 255}
	carColor        = color.RGBA{R: 220, G: 70, B: 50, A: 255}
	playerColor     = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	airborneColor   = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	laneMarkColor   = color.RGBA{R: 200, G: 200, B: 200, A: 120}
	hudPanelColor   = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// TileColor 路块类别对应的颜色
func TileColor(t types.RoadType) color.RGBA {
	switch t {
	case types.RoadTypeTraffic:
		return trafficColor
	case types.RoadTypeRiver:
		return riverColor
	default:
		return grassColor
	}
}

// RoadScene 道路场景
//
// 每帧：模拟核心 Update，然后物理引擎 Step，最后按快照绘制。
type RoadScene struct {
	seed       int64
	simulation *game.Simulation
	physics    *physics.World
	projection *utils.Projection
	settings   *game.SettingsManager
	audio      *game.AudioManager

	lastScore int
	lastHops  int
	lastErr   error
}

// NewRoadScene 创建道路场景
//
// 参数:
//   - cfg: 模拟配置（会被复制，Seed 字段被 seed 覆盖）
//   - seed: 本局随机种子
//   - input: 输入协作者
//   - settings: 显示设置（决定是否绘制调试信息），可为 nil
//   - audio: 提示音播放，可为 nil
func NewRoadScene(cfg *config.SimConfig, seed int64, input systems.KeyboardInput,
	settings *game.SettingsManager, audio *game.AudioManager) (*RoadScene, error) {
	local := *cfg
	local.Seed = seed

	sim, err := game.NewSimulation(&local, game.NewRandomSource(seed), input)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	log.Printf("[RoadScene] New run with seed=%d", seed)
	return &RoadScene{
		seed:       seed,
		simulation: sim,
		physics:    physics.NewWorld(sim.World().EntityManager, local.Physics.Gravity),
		projection: utils.NewProjection(local.Camera,
			config.GameWindowWidth, config.GameWindowHeight,
			config.PixelsPerUnit, config.PixelsPerUnit),
		settings: settings,
		audio:    audio,
	}, nil
}

// Seed 本局种子
func (s *RoadScene) Seed() int64 {
	return s.seed
}

// Simulation 模拟核心（调试与测试用）
func (s *RoadScene) Simulation() *game.Simulation {
	return s.simulation
}

// Update 推进模拟与物理
func (s *RoadScene) Update(deltaTime float64) {
	if err := s.simulation.Update(deltaTime); err != nil {
		if s.lastErr == nil {
			log.Printf("[RoadScene] Update rejected: %v", err)
		}
		s.lastErr = err
		return
	}
	s.lastErr = nil
	s.physics.Step(deltaTime)

	score, hops := s.simulation.Score(), s.simulation.Stats().Hops
	s.audio.PlayCues(game.CuesFor(s.lastScore, score, s.lastHops, hops))
	s.lastScore, s.lastHops = score, hops
}

// Draw 绘制道路、车辆、玩家与 HUD
func (s *RoadScene) Draw(screen *ebiten.Image) {
	snap := s.simulation.Snapshot()
	s.projection.Follow(snap.Camera)

	screen.Fill(backgroundColor)
	s.drawTiles(screen, snap.Tiles)
	s.drawCars(screen, snap.Cars)
	s.drawPlayer(screen, snap.Player)
	s.drawHUD(screen, snap)

	if s.settings != nil && s.settings.GetSettings().ShowDebug {
		s.drawDebug(screen, snap)
	}
}

func (s *RoadScene) drawTiles(screen *ebiten.Image, tiles []game.TileView) {
	for _, tile := range tiles {
		left, top, w, h := s.projection.BoxToScreen(tile.Position.X(), tile.Position.Z(), tile.HalfExtents.X(), tile.HalfExtents.Z())
		if !s.projection.IsVisible(left, top, w, h) {
			continue
		}
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(w), float32(h), TileColor(tile.Type), false)

		// 车道路块画出生成侧的标记
		if tile.Type.SpawnsCars() {
			markX := left + w - 4
			if tile.LeftOriented {
				markX = left
			}
			vector.DrawFilledRect(screen, float32(markX), float32(top), 4, float32(h), laneMarkColor, false)
		}
		vector.StrokeLine(screen, float32(left), float32(top), float32(left+w), float32(top), 1, backgroundColor, false)
	}
}

func (s *RoadScene) drawCars(screen *ebiten.Image, cars []game.CarView) {
	for _, car := range cars {
		left, top, w, h := s.projection.BoxToScreen(car.Position.X(), car.Position.Z(), car.Size.X()/2, car.Size.Z()/2)
		if !s.projection.IsVisible(left, top, w, h) {
			continue
		}
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(w), float32(h), carColor, true)
	}
}

func (s *RoadScene) drawPlayer(screen *ebiten.Image, player game.PlayerView) {
	left, top, w, h := s.projection.BoxToScreen(player.Position.X(), player.Position.Z(), player.HalfExtents.X(), player.HalfExtents.Z())
	clr := playerColor
	if !player.OnGround {
		clr = airborneColor
	}
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(w), float32(h), clr, true)
	vector.StrokeRect(screen, float32(left), float32(top), float32(w), float32(h), 1, color.Black, true)
}

func (s *RoadScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DrawRect(screen, 0, 0, 160, 24, hudPanelColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 4)
	ebitenutil.DebugPrintAt(screen, "R: restart  M: sound  F3: debug  F11: fullscreen", 8, config.GameWindowHeight-20)
}

func (s *RoadScene) drawDebug(screen *ebiten.Image, snap game.Snapshot) {
	st := s.simulation.Stats()
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("seed=%d tick=%d t=%.2fs", s.seed, snap.Tick, snap.Elapsed),
		fmt.Sprintf("player (%.2f, %.2f, %.2f) vy=%.3f ground=%v",
			snap.Player.Position.X(), snap.Player.Position.Y(), snap.Player.Position.Z(),
			snap.Player.VerticalVelocity, snap.Player.OnGround),
		fmt.Sprintf("cars=%d spawned=%d despawned=%d contacts=%d",
			len(snap.Cars), st.TotalSpawned, st.TotalDespawned, s.physics.Contacts()),
	}

	ebitenutil.DrawRect(screen, float64(config.GameWindowWidth)-330, 0, 330, float64(len(lines)*16+8), hudPanelColor)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.GameWindowWidth-322, 4+i*16)
	}
}
