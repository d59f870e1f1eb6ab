// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/embedded"
	"github.com/decker502/crossroad/pkg/game"
	"github.com/decker502/crossroad/pkg/scenes"
	"github.com/decker502/crossroad/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "crossroad"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 第一局的随机种子，0 表示使用 SimConfig.Seed，仍为 0 则取当前时间
	Seed int64
	// ConfigPath 模拟配置文件路径，为空则使用嵌入的 data/sim_config.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	simConfig    *config.SimConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 未指定 ConfigPath 时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	simConfig, err := loadSimConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	settings := game.OpenSettings(AppName)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// ebiten 只允许创建一个音频上下文，整个进程共用
	audioManager := game.NewAudioManager(audio.NewContext(game.AudioSampleRate), settings)

	keyboard := utils.NewEbitenKeyboard()

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(seed int64) (game.Scene, error) {
		return scenes.NewRoadScene(simConfig, seed, keyboard, settings, audioManager)
	})

	seed := game.PickSeed(cfg.Seed, simConfig.Seed)
	if !sceneManager.Restart(seed) {
		return nil, fmt.Errorf("failed to create road scene (seed=%d)", seed)
	}
	log.Printf("[App] Started with seed=%d hop=%s", seed, simConfig.Hop.Mode)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		simConfig:    simConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadSimConfig 读取配置文件或嵌入的默认配置
func loadSimConfig(path string) (*config.SimConfig, error) {
	if path != "" {
		simConfig, err := config.LoadSimConfig(path)
		if err != nil {
			return nil, fmt.Errorf("模拟配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载模拟配置: %s", path)
		return simConfig, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 未初始化嵌入资源，使用内置默认配置")
		return config.DefaultSimConfig(), nil
	}
	simConfig, err := embedded.LoadSimConfig()
	if err != nil {
		return nil, fmt.Errorf("嵌入的模拟配置无效: %w", err)
	}
	log.Printf("[Config] 加载嵌入配置: %s", embedded.SimConfigPath)
	return simConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F3 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.settings.SetShowDebug(!a.settings.GetSettings().ShowDebug)
		a.saveSettings()
	}

	// M 开关提示音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.settings.SetSoundEnabled(!a.settings.GetSettings().SoundEnabled)
		a.saveSettings()
	}

	// R 重开一局
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Restart(time.Now().UnixNano())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	enter := !ebiten.IsFullscreen()
	if !enter {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(enter)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
