package utils

// Box 轴对齐包围盒（AABB），以中心点和半尺寸表示
//
// 坐标系为世界坐标：原点在屏幕中心，Y轴向上
type Box struct {
	Center Vec2 // 包围盒中心
	Half   Vec2 // 半宽、半高
}

// NewBox 根据中心点和完整尺寸创建包围盒
//
// 参数:
//   - center: 中心点（通常是实体位置）
//   - size: 完整宽高（精灵尺寸 × 缩放）
func NewBox(center, size Vec2) Box {
	return Box{Center: center, Half: size.Scale(0.5)}
}

// Min 返回左下角
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max 返回右上角
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Overlaps 检查两个包围盒是否重叠
//
// 两个轴上的区间都必须严格相交；仅边缘接触不算碰撞
func (b Box) Overlaps(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()

	// 任一轴上没有重叠，则没有碰撞
	return bMin.X < oMax.X &&
		bMax.X > oMin.X &&
		bMin.Y < oMax.Y &&
		bMax.Y > oMin.Y
}
