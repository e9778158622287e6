// Package utils 提供几何与坐标工具
//
// # 坐标系统概述
//
// 游戏逻辑使用"世界坐标"：原点位于窗口中心，X 轴向右，Y 轴向上。
// 玩家位于底部并向上（+Y）射击，敌人的激光向下（-Y）飞行。
//
// Ebiten 使用"屏幕坐标"：原点位于窗口左上角，Y 轴向下。
// 渲染系统通过 WorldToScreen 完成转换：
//
//	screenX = worldX + width/2
//	screenY = height/2 - worldY
package utils

// WorldToScreen 将世界坐标转换为屏幕坐标
//
// 参数:
//   - p: 世界坐标（中心原点，Y 向上）
//   - width, height: 窗口逻辑尺寸
//
// 返回:
//   - Vec2: 屏幕坐标（左上角原点，Y 向下）
func WorldToScreen(p Vec2, width, height float64) Vec2 {
	return Vec2{
		X: p.X + width/2,
		Y: height/2 - p.Y,
	}
}

// ScreenToWorld 将屏幕坐标转换为世界坐标，是 WorldToScreen 的逆运算
func ScreenToWorld(p Vec2, width, height float64) Vec2 {
	return Vec2{
		X: p.X - width/2,
		Y: height/2 - p.Y,
	}
}
