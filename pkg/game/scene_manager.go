package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据种子创建新一局的场景，避免 game 与 scenes 之间的循环依赖
type SceneFactory func(seed int64) (Scene, error)

// SceneManager 管理当前活动场景
// 任一时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	restarts     int
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restarts 成功重开的次数
func (sm *SceneManager) Restarts() int {
	return sm.restarts
}

// Restart 用新种子重开一局
//
// 工厂未设置或创建失败时保留当前场景。
func (sm *SceneManager) Restart(seed int64) bool {
	log.Printf("[SceneManager] 重开: seed=%d", seed)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene, err := sm.sceneFactory(seed)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %v", err)
		return false
	}
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 工厂返回空场景")
		return false
	}

	sm.SwitchTo(newScene)
	sm.restarts++
	log.Printf("[SceneManager] 成功切换到新场景 (第 %d 次重开)", sm.restarts)
	return true
}

// Update 更新当前场景；没有活动场景时什么也不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景；没有活动场景时什么也不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
