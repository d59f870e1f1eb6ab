package game

import (
	"math/rand"
	"time"
)

// RandomSource 世界初始化使用的随机源
// *rand.Rand 直接满足该接口；测试可以注入固定序列
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 内的均匀随机数
	Float64() float64
	// Intn 返回 [0, n) 内的均匀随机整数
	Intn(n int) int
}

// NewRandomSource 创建确定性的随机源，相同种子产生相同的世界
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// PickSeed 依次使用命令行种子、配置种子、当前时间
func PickSeed(flagSeed, configSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if configSeed != 0 {
		return configSeed
	}
	return time.Now().UnixNano()
}
