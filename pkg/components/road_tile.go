package components

import "github.com/decker502/crossroad/pkg/types"

// RoadTileComponent 路块组件
//
// 路块在世界初始化时一次性创建，之后不再移动或销毁。
// SpawnTimer 为循环计时器，时长在创建时随机确定且不可变。
type RoadTileComponent struct {
	Type         types.RoadType // 路块类别，只有 RoadTypeTraffic 生成车辆
	Index        int            // 纵向序号（0..NumTiles-1）
	LeftOriented bool           // 车辆生成侧与行驶方向
	SpawnTimer   *Timer         // 车辆生成计时器（循环）
}
