package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyboardInput 基于 ebiten 键盘状态的玩家输入
//
// 按键:
//   - ←/A: 向左
//   - →/D: 向右
//   - Space: 开火（按下瞬间触发一次）
type keyboardInput struct{}

// Horizontal 返回水平方向输入，同时按下左右时互相抵消
func (keyboardInput) Horizontal() float64 {
	direction := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		direction--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		direction++
	}
	return direction
}

// FirePressed 返回开火键是否刚被按下
func (keyboardInput) FirePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
