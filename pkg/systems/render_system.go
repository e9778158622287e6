package systems

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/game"
	"github.com/gonewx/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染层级（从底到顶）
const (
	layerEnemy = iota
	layerLaser
	layerPlayer
	layerExplosion
)

var backgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}

// renderRect 一个待绘制的矩形（屏幕坐标，左上角为原点）
type renderRect struct {
	layer int
	id    ecs.EntityID
	X, Y  float32
	W, H  float32
	Color color.RGBA
}

// RenderSystem 把实体绘制为纯色矩形
//
// 实体位置是世界坐标（中心原点，Y 向上），绘制前通过 utils.WorldToScreen 转换。
// 矩形尺寸 = 精灵尺寸 × 缩放，与碰撞盒一致。
// 爆炸随帧索引缩小并淡出。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	rects         []renderRect // 复用，避免每帧分配
	hudFace       text.Face    // 调试信息字体，加载失败时为 nil
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, state *game.GameState) *RenderSystem {
	face, err := newHUDFace()
	if err != nil {
		log.Printf("[RenderSystem] 调试字体加载失败，改用内置点阵字体: %v", err)
	}
	return &RenderSystem{
		entityManager: em,
		state:         state,
		rects:         make([]renderRect, 0, 64),
		hudFace:       face,
	}
}

// Draw 清屏并按层级绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, r := range s.collect() {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
}

// DrawDebug 在左上角输出调试信息（仅 --verbose 模式）
func (s *RenderSystem) DrawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS: %.0f  Entities: %d\nEnemies: %d  Kills: %d  Deaths: %d",
		ebiten.ActualTPS(),
		s.entityManager.EntityCount(),
		s.state.EnemyCount.Value(),
		s.state.Kills,
		s.state.Player.Deaths,
	)

	if s.hudFace == nil {
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.LineSpacing = hudFontSize * 1.4
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, s.hudFace, op)
}

// collect 计算所有待绘制矩形，按层级、实体ID排序
func (s *RenderSystem) collect() []renderRect {
	s.rects = s.rects[:0]

	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SpriteSizeComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range ids {
		s.rects = append(s.rects, s.rectOf(id))
	}

	sort.SliceStable(s.rects, func(i, j int) bool {
		if s.rects[i].layer != s.rects[j].layer {
			return s.rects[i].layer < s.rects[j].layer
		}
		return s.rects[i].id < s.rects[j].id
	})
	return s.rects
}

// rectOf 计算单个实体的屏幕矩形
func (s *RenderSystem) rectOf(id ecs.EntityID) renderRect {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	size, _ := ecs.GetComponent[*components.SpriteSizeComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	dims := size.Size()
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		dims = dims.Mul(scale.Vec())
	}
	tint := sprite.Color

	layer := layerEnemy
	switch {
	case ecs.HasComponent[*components.ExplosionComponent](s.entityManager, id):
		layer = layerExplosion
		explosion, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		var factor float64
		factor, tint = explosionLook(explosion, tint)
		dims = dims.Scale(factor)
	case ecs.HasComponent[*components.PlayerComponent](s.entityManager, id):
		layer = layerPlayer
	case ecs.HasComponent[*components.ProjectileComponent](s.entityManager, id):
		layer = layerLaser
	}

	win := s.state.WinSize
	center := utils.WorldToScreen(pos.Vec(), win.W, win.H)

	return renderRect{
		layer: layer,
		id:    id,
		X:     float32(center.X - dims.X/2),
		Y:     float32(center.Y - dims.Y/2),
		W:     float32(dims.X),
		H:     float32(dims.Y),
		Color: tint,
	}
}

// explosionLook 根据帧进度计算爆炸的缩放系数和颜色
// 第 0 帧全尺寸不透明，越接近最后一帧越小越透明
func explosionLook(explosion *components.ExplosionComponent, tint color.RGBA) (float64, color.RGBA) {
	frameCount := explosion.FrameCount
	if frameCount <= 0 {
		frameCount = config.ExplosionFrameCount
	}
	progress := utils.Clamp01(float64(explosion.Frame) / float64(frameCount))

	factor := utils.Lerp(1.0, 0.25, utils.EaseInQuad(progress))
	alpha := utils.Lerp(1.0, 0.15, utils.EaseOutCubic(progress))

	// color.RGBA 是预乘 alpha 的
	tint.R = uint8(float64(tint.R) * alpha)
	tint.G = uint8(float64(tint.G) * alpha)
	tint.B = uint8(float64(tint.B) * alpha)
	tint.A = uint8(float64(tint.A) * alpha)
	return factor, tint
}
