package components

// CameraComponent 二维正交摄像机
// 世界坐标 (X, Y) 对齐到屏幕中心，+Y 向上
type CameraComponent struct {
	// X, Y 摄像机中心的世界坐标
	X, Y float64

	// Zoom 缩放倍率（1.0 = 一个世界单位对应一个逻辑像素）
	Zoom float64
}
