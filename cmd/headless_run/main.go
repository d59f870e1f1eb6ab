// headless_run 无窗口运行模拟核心并输出统计
//
// 用法:
//
//	go run ./cmd/headless_run -duration 30 -keys U,U,D,L -key-interval 0.5 -seed 7
//
// 按键脚本按 -key-interval 秒的间隔依次轻点（按下一个 tick 后松开）。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/game"
	"github.com/decker502/crossroad/pkg/physics"
	"github.com/decker502/crossroad/pkg/systems"
	"github.com/decker502/crossroad/pkg/types"
)

var (
	duration    = flag.Float64("duration", 20.0, "模拟时长（秒）")
	tps         = flag.Int("tps", 60, "每秒 tick 数")
	keys        = flag.String("keys", "", "按键脚本，逗号分隔（U/D/L/R 或 up/down/left/right）")
	keyInterval = flag.Float64("key-interval", 0.5, "两次按键之间的秒数")
	seed        = flag.Int64("seed", 1, "随机种子")
	configPath  = flag.String("config", "", "模拟配置文件路径（为空使用内置默认值）")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "headless_run: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	if *tps <= 0 {
		return fmt.Errorf("-tps must be > 0, got %d", *tps)
	}
	if *duration < 0 {
		return fmt.Errorf("-duration must be >= 0, got %v", *duration)
	}

	script, err := parseKeys(*keys)
	if err != nil {
		return err
	}

	cfg := config.DefaultSimConfig()
	if *configPath != "" {
		cfg, err = config.LoadSimConfig(*configPath)
		if err != nil {
			return err
		}
	}
	cfg.Seed = *seed

	result, err := simulate(cfg, script, *duration, *tps, *keyInterval)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "seed=%d hop=%s ticks=%d elapsed=%.2fs\n", *seed, cfg.Hop.Mode, result.Stats.Ticks, result.Elapsed)
	fmt.Fprintf(out, "spawned=%d despawned=%d live=%d hops=%d\n",
		result.Stats.TotalSpawned, result.Stats.TotalDespawned, result.Stats.LiveEntities, result.Stats.Hops)
	fmt.Fprintf(out, "score=%d lane=%d player=(%.2f, %.2f, %.2f)\n",
		result.Score, result.Snapshot.Player.Lane,
		result.Snapshot.Player.Position.X(), result.Snapshot.Player.Position.Y(), result.Snapshot.Player.Position.Z())
	return nil
}

// parseKeys 解析逗号分隔的按键脚本
func parseKeys(s string) ([]types.Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	script := make([]types.Key, 0, len(parts))
	for _, part := range parts {
		key, ok := types.ParseKey(strings.TrimSpace(part))
		if !ok {
			return nil, fmt.Errorf("unknown key %q in -keys", part)
		}
		script = append(script, key)
	}
	return script, nil
}

// runResult 一次无窗口运行的结果
type runResult struct {
	Stats    game.Stats
	Score    int
	Elapsed  float64
	Snapshot game.Snapshot
}

// simulate 以固定步长运行模拟与物理
//
// 第 i 个按键在第 (i+1)*round(interval*tps) 个 tick 按下。
func simulate(cfg *config.SimConfig, script []types.Key, duration float64, tps int, interval float64) (*runResult, error) {
	if !(interval > 0) {
		return nil, fmt.Errorf("key interval must be > 0, got %v", interval)
	}
	input := systems.NewScriptedInput()
	sim, err := game.NewSimulation(cfg, game.NewRandomSource(cfg.Seed), input)
	if err != nil {
		return nil, err
	}
	world := physics.NewWorld(sim.World().EntityManager, cfg.Physics.Gravity)

	dt := 1.0 / float64(tps)
	ticks := int(duration * float64(tps))
	every := max(int(math.Round(interval*float64(tps))), 1)
	next := 0
	for i := 0; i < ticks; i++ {
		if next < len(script) && i == (next+1)*every {
			input.Tap(script[next])
			next++
		}
		if err := sim.Update(dt); err != nil {
			return nil, err
		}
		world.Step(dt)
		input.EndFrame()
	}

	sim.LogStats()
	return &runResult{
		Stats:    sim.Stats(),
		Score:    sim.Score(),
		Elapsed:  sim.Elapsed(),
		Snapshot: sim.Snapshot(),
	}, nil
}
