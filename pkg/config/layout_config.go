package config

// 布局配置常量
// 本文件定义了宿主程序（ebiten 窗口、终端界面）把世界坐标投影到屏幕时使用的参数。
// 模拟核心本身不读取这些值。

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// PixelsPerUnit 俯视投影时每个世界单位对应的像素数
	PixelsPerUnit = 16.0

	// PlayerScreenAnchorY 玩家在屏幕上的纵向锚点比例（0 顶部，1 底部）
	// 镜头跟随玩家，玩家保持在画面偏下的位置，前方道路可见
	PlayerScreenAnchorY = 0.7

	// TerminalCellsPerUnitX 终端界面横向每个世界单位对应的字符数
	TerminalCellsPerUnitX = 2.0

	// TerminalCellsPerUnitZ 终端界面纵向每个世界单位对应的行数
	// 路块间距为 3 时，每个路块占一行
	TerminalCellsPerUnitZ = 1.0 / 3.0
)
