package components

// TransformComponent 实体在世界坐标中的位置和缩放
// 世界坐标以原点为中心，+Y 向上
type TransformComponent struct {
	X, Y float64

	// Scale 统一缩放（1.0 = 原始大小）
	Scale float64
}
