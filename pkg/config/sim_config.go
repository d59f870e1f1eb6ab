package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/crossroad/pkg/types"
	"gopkg.in/yaml.v3"
)

// HopMode 跳跃策略
type HopMode string

const (
	// HopHeld 按住任一方向键且着地时，每 tick 向上平移 Nudge（会持续上漂）
	HopHeld HopMode = "held"
	// HopPress 只在方向键刚按下的 tick 平移一次（默认）
	HopPress HopMode = "press"
	// HopImpulse 刚按下时写入向上冲量 m*sqrt(2gh)，由物理引擎施加
	HopImpulse HopMode = "impulse"
)

// SimConfig 模拟核心配置
//
// 配置文件位置: data/sim_config.yaml
type SimConfig struct {
	// Seed 随机种子，0 表示由调用方决定（通常取当前时间）
	Seed int64 `yaml:"seed" json:"seed" jsonschema:"description=Random seed for world setup; 0 lets the host pick one"`

	World   WorldConfig   `yaml:"world" json:"world"`
	Car     CarConfig     `yaml:"car" json:"car"`
	Player  PlayerConfig  `yaml:"player" json:"player"`
	Hop     HopConfig     `yaml:"hop" json:"hop"`
	Camera  CameraConfig  `yaml:"camera" json:"camera"`
	Physics PhysicsConfig `yaml:"physics" json:"physics"`
}

// WorldConfig 路块布局与生成参数
type WorldConfig struct {
	NumTiles      int     `yaml:"numTiles" json:"numTiles" jsonschema:"minimum=1,description=Number of road tiles created at setup"`
	TileSpacing   float64 `yaml:"tileSpacing" json:"tileSpacing" jsonschema:"description=Longitudinal distance between tiles"`
	TileY         float64 `yaml:"tileY" json:"tileY" jsonschema:"description=Vertical centre of every tile"`
	RoadLength    float64 `yaml:"roadLength" json:"roadLength" jsonschema:"description=Lateral length of a road segment; cars spawn at +-roadLength/2"`
	TileThickness float64 `yaml:"tileThickness" json:"tileThickness"`
	TileDepth     float64 `yaml:"tileDepth" json:"tileDepth"`
	TileTypeCount int     `yaml:"tileTypeCount" json:"tileTypeCount" jsonschema:"minimum=1,description=Size of the uniform tile type palette; type 0 spawns cars"`
	SpawnInterval Range   `yaml:"spawnInterval" json:"spawnInterval" jsonschema:"description=Uniform range for each tile's repeating spawn period"`
}

// CarConfig 车辆参数
type CarConfig struct {
	Velocity float64 `yaml:"velocity" json:"velocity" jsonschema:"description=Shared signed car speed; must be negative"`
	Lifetime float64 `yaml:"lifetime" json:"lifetime" jsonschema:"description=One-shot despawn timer duration"`
	SpawnY   float64 `yaml:"spawnY" json:"spawnY"`
	Size     Point3  `yaml:"size" json:"size" jsonschema:"description=Visual box size; not used by the simulation"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Start         Point3  `yaml:"start" json:"start"`
	Mass          float64 `yaml:"mass" json:"mass"`
	GravityScale  float64 `yaml:"gravityScale" json:"gravityScale"`
	Restitution   float64 `yaml:"restitution" json:"restitution"`
	HalfExtents   Point3  `yaml:"halfExtents" json:"halfExtents"`
	GroundEpsilon float64 `yaml:"groundEpsilon" json:"groundEpsilon" jsonschema:"description=Grounded when vertical velocity <= this value"`
	LaneStep      float64 `yaml:"laneStep" json:"laneStep" jsonschema:"description=Distance moved per lane step"`
}

// HopConfig 跳跃参数
type HopConfig struct {
	Mode   HopMode `yaml:"mode" json:"mode" jsonschema:"enum=held,enum=press,enum=impulse"`
	Nudge  float64 `yaml:"nudge" json:"nudge" jsonschema:"description=Upward translation per hop tick (held/press)"`
	Height float64 `yaml:"height" json:"height" jsonschema:"description=Target hop height for impulse mode"`
}

// CameraConfig 镜头初始参数
type CameraConfig struct {
	Start  Point3 `yaml:"start" json:"start"`
	LookAt Point3 `yaml:"lookAt" json:"lookAt"`
}

// PhysicsConfig 物理协作者参数
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" json:"gravity" jsonschema:"description=Gravitational acceleration along Y (negative is down)"`
}

// Range 闭开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Point3 YAML 中的三维坐标
type Point3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Vec 转换为 types.Vec3
func (p Point3) Vec() types.Vec3 {
	return types.Vec3{p.X, p.Y, p.Z}
}

// DefaultSimConfig 返回默认配置
func DefaultSimConfig() *SimConfig {
	return &SimConfig{
		World: WorldConfig{
			NumTiles:      50,
			TileSpacing:   3.0,
			TileY:         -2.0,
			RoadLength:    25.0,
			TileThickness: 1.0,
			TileDepth:     3.0,
			TileTypeCount: types.RoadTypePaletteSize,
			SpawnInterval: Range{Min: 2.0, Max: 5.0},
		},
		Car: CarConfig{
			Velocity: -10.0,
			Lifetime: 10.0,
			SpawnY:   1.0,
			Size:     Point3{X: 4.0, Y: 2.0, Z: 2.5},
		},
		Player: PlayerConfig{
			Start:         Point3{X: 0, Y: 2.0, Z: 0},
			Mass:          25.0,
			GravityScale:  3.0,
			Restitution:   0.2,
			HalfExtents:   Point3{X: 0.75, Y: 0.75, Z: 1.0},
			GroundEpsilon: 0.1,
			LaneStep:      3.0,
		},
		Hop: HopConfig{
			Mode:   HopPress,
			Nudge:  0.1,
			Height: 1.0,
		},
		Camera: CameraConfig{
			Start:  Point3{X: 0, Y: 27.0, Z: -5.0},
			LookAt: Point3{X: 0, Y: 0, Z: 0},
		},
		Physics: PhysicsConfig{
			Gravity: -9.81,
		},
	}
}

// LoadSimConfig 从 YAML 文件加载模拟配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/sim_config.yaml"）
//
// 返回:
//   - *SimConfig: 加载并验证通过的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sim config: %w", err)
	}
	return LoadSimConfigFromBytes(data)
}

// LoadSimConfigFromBytes 从内存中的 YAML 数据加载配置（用于嵌入资源和测试）
func LoadSimConfigFromBytes(data []byte) (*SimConfig, error) {
	config := DefaultSimConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse sim config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 任何退化配置都直接报错，不做静默修正：
//   - 路块数量、类别数量必须 >= 1
//   - 生成间隔区间必须满足 0 < min < max
//   - 车速必须为负，寿命必须为正
//   - 着地阈值、换道步长、质量必须为正
//   - 跳跃模式必须是 held / press / impulse 之一
func (c *SimConfig) Validate() error {
	w := c.World
	if w.NumTiles < 1 {
		return fmt.Errorf("world.numTiles must be >= 1, got %d", w.NumTiles)
	}
	if w.TileTypeCount < 1 {
		return fmt.Errorf("world.tileTypeCount must be >= 1, got %d", w.TileTypeCount)
	}
	if !positive(w.TileSpacing) {
		return fmt.Errorf("world.tileSpacing must be > 0, got %v", w.TileSpacing)
	}
	if !positive(w.RoadLength) {
		return fmt.Errorf("world.roadLength must be > 0, got %v", w.RoadLength)
	}
	if !positive(w.TileThickness) || !positive(w.TileDepth) {
		return fmt.Errorf("world tile size must be > 0, got thickness=%v depth=%v", w.TileThickness, w.TileDepth)
	}
	if !positive(w.SpawnInterval.Min) {
		return fmt.Errorf("world.spawnInterval.min must be > 0, got %v", w.SpawnInterval.Min)
	}
	if !finite(w.SpawnInterval.Max) || w.SpawnInterval.Min >= w.SpawnInterval.Max {
		return fmt.Errorf("world.spawnInterval is degenerate: min(%.2f) >= max(%.2f)",
			w.SpawnInterval.Min, w.SpawnInterval.Max)
	}

	if !finite(c.Car.Velocity) || c.Car.Velocity >= 0 {
		return fmt.Errorf("car.velocity must be negative, got %v", c.Car.Velocity)
	}
	if !positive(c.Car.Lifetime) {
		return fmt.Errorf("car.lifetime must be > 0, got %v", c.Car.Lifetime)
	}

	p := c.Player
	if !positive(p.Mass) {
		return fmt.Errorf("player.mass must be > 0, got %v", p.Mass)
	}
	if !positive(p.GroundEpsilon) {
		return fmt.Errorf("player.groundEpsilon must be > 0, got %v", p.GroundEpsilon)
	}
	if !positive(p.LaneStep) {
		return fmt.Errorf("player.laneStep must be > 0, got %v", p.LaneStep)
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return fmt.Errorf("player.restitution must be within [0, 1], got %v", p.Restitution)
	}
	if !positive(p.HalfExtents.X) || !positive(p.HalfExtents.Y) || !positive(p.HalfExtents.Z) {
		return fmt.Errorf("player.halfExtents must be > 0, got %+v", p.HalfExtents)
	}

	switch c.Hop.Mode {
	case HopHeld, HopPress:
		if !positive(c.Hop.Nudge) {
			return fmt.Errorf("hop.nudge must be > 0 for mode %q, got %v", c.Hop.Mode, c.Hop.Nudge)
		}
	case HopImpulse:
		if !positive(c.Hop.Height) {
			return fmt.Errorf("hop.height must be > 0 for mode %q, got %v", c.Hop.Mode, c.Hop.Height)
		}
	default:
		return fmt.Errorf("hop.mode must be one of held/press/impulse, got %q", c.Hop.Mode)
	}

	if !finite(c.Physics.Gravity) {
		return fmt.Errorf("physics.gravity must be finite, got %v", c.Physics.Gravity)
	}

	return nil
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
