//go:build !mobile

// 桌面构建下 mobile 包只保留 Dummy，绑定逻辑见 mobile.go（-tags mobile）
package mobile

// Dummy 空导出函数，保证 ./... 在桌面构建时也能编译该包
func Dummy() {}
