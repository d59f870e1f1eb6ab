package utils

import (
	"github.com/decker502/crossroad/pkg/config"
	"github.com/decker502/crossroad/pkg/types"
)

// Projection 俯视投影：把世界坐标 (X, Z) 映射到屏幕坐标
//
// 坐标约定：
//   - 世界 X+ 是玩家的"左"，屏幕上向左
//   - 世界 Z+ 是前进方向，屏幕上向上
//   - Y（高度）不参与投影，由调用方决定是否表现
//
// 镜头跟随：焦点 = 镜头位置 + 初始镜头到注视点的偏移。
// 玩家换道时镜头获得相同位移，所以焦点始终落在玩家所在车道。
type Projection struct {
	Width, Height  float64 // 屏幕尺寸（像素或字符）
	ScaleX, ScaleZ float64 // 每个世界单位对应的屏幕长度
	AnchorY        float64 // 焦点在屏幕上的纵向比例

	focusOffset types.Vec3
	focus       types.Vec3
}

// NewProjection 创建投影
//
// 参数:
//   - cam: 镜头初始配置，用于确定镜头到注视点的偏移
//   - width, height: 屏幕尺寸
//   - scaleX, scaleZ: 每个世界单位对应的屏幕长度
func NewProjection(cam config.CameraConfig, width, height, scaleX, scaleZ float64) *Projection {
	offset := cam.LookAt.Vec().Sub(cam.Start.Vec())
	return &Projection{
		Width:       width,
		Height:      height,
		ScaleX:      scaleX,
		ScaleZ:      scaleZ,
		AnchorY:     config.PlayerScreenAnchorY,
		focusOffset: offset,
		focus:       cam.LookAt.Vec(),
	}
}

// Follow 根据镜头当前位置更新焦点
func (p *Projection) Follow(camera types.Vec3) {
	p.focus = camera.Add(p.focusOffset)
}

// Focus 当前焦点（世界坐标）
func (p *Projection) Focus() types.Vec3 {
	return p.focus
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (p *Projection) WorldToScreen(x, z float64) (float64, float64) {
	sx := p.Width/2 - (x-p.focus.X())*p.ScaleX
	sy := p.Height*p.AnchorY - (z-p.focus.Z())*p.ScaleZ
	return sx, sy
}

// ScreenToWorld 屏幕坐标 → 世界坐标（WorldToScreen 的逆变换）
func (p *Projection) ScreenToWorld(sx, sy float64) (float64, float64) {
	x := p.focus.X() - (sx-p.Width/2)/p.ScaleX
	z := p.focus.Z() - (sy-p.Height*p.AnchorY)/p.ScaleZ
	return x, z
}

// BoxToScreen 以 (x, z) 为中心、半尺寸为 (hx, hz) 的矩形在屏幕上的左上角与尺寸
func (p *Projection) BoxToScreen(x, z, hx, hz float64) (left, top, width, height float64) {
	cx, cy := p.WorldToScreen(x, z)
	width = 2 * hx * p.ScaleX
	height = 2 * hz * p.ScaleZ
	return cx - width/2, cy - height/2, width, height
}

// IsVisible 矩形是否与屏幕相交
func (p *Projection) IsVisible(left, top, width, height float64) bool {
	return left+width >= 0 && top+height >= 0 && left <= p.Width && top <= p.Height
}
