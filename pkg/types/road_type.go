package types

// RoadType 定义路块的类别
// 只有 RoadTypeTraffic 会生成车辆，其余类别仅用于表现层选择外观
type RoadType int

const (
	RoadTypeTraffic RoadType = iota // 车道（灰色，生成车辆）
	RoadTypeRiver                   // 河道（蓝色）
	RoadTypeGrass                   // 草地（绿色）
)

// RoadTypePaletteSize 默认的路块类别数量（均匀随机选取）
const RoadTypePaletteSize = 3

// String 返回路块类别名称
func (t RoadType) String() string {
	switch t {
	case RoadTypeTraffic:
		return "traffic"
	case RoadTypeRiver:
		return "river"
	case RoadTypeGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// SpawnsCars 是否为会生成车辆的类别
func (t RoadType) SpawnsCars() bool {
	return t == RoadTypeTraffic
}
