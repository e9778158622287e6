package components

import "image/color"

// SpriteComponent 存储实体的视觉表现
// 本项目不加载贴图，渲染系统按精灵尺寸绘制纯色矩形
type SpriteComponent struct {
	Color color.RGBA
}
