package entities

import "github.com/hajimehoshi/ebiten/v2"

// ResourceLoader 实体工厂需要的资源加载能力
// game.ResourceManager 实现此接口，测试中可以替换为内存实现
type ResourceLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}
