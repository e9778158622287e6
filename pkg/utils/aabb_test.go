package utils

import (
	"math/rand"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{
			name: "完全重合",
			a:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			want: true,
		},
		{
			name: "部分重叠",
			a:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewBox(Vec2{8, 8}, Vec2{10, 10}),
			want: true,
		},
		{
			name: "包含关系",
			a:    NewBox(Vec2{0, 0}, Vec2{100, 100}),
			b:    NewBox(Vec2{10, -10}, Vec2{4, 4}),
			want: true,
		},
		{
			name: "X轴分离",
			a:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewBox(Vec2{20, 0}, Vec2{10, 10}),
			want: false,
		},
		{
			name: "Y轴分离",
			a:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewBox(Vec2{0, -11}, Vec2{10, 10}),
			want: false,
		},
		{
			name: "仅边缘接触",
			a:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewBox(Vec2{10, 0}, Vec2{10, 10}),
			want: false,
		},
		{
			name: "X重叠但Y分离",
			a:    NewBox(Vec2{0, 0}, Vec2{10, 10}),
			b:    NewBox(Vec2{3, 50}, Vec2{10, 10}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			// 重叠关系是对称的
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBoxOverlapsNoFalsePositives 随机生成在至少一个轴上分离的包围盒，验证永不报告碰撞
func TestBoxOverlapsNoFalsePositives(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		a := NewBox(
			Vec2{rng.Float64()*800 - 400, rng.Float64()*800 - 400},
			Vec2{1 + rng.Float64()*150, 1 + rng.Float64()*150},
		)
		size := Vec2{1 + rng.Float64()*150, 1 + rng.Float64()*150}
		half := size.Scale(0.5)
		gap := rng.Float64() * 50

		// 在四个方向之一放置 b，使其与 a 在该轴上的区间不相交
		var center Vec2
		switch rng.Intn(4) {
		case 0: // 右侧
			center = Vec2{a.Max().X + gap + half.X, rng.Float64()*800 - 400}
		case 1: // 左侧
			center = Vec2{a.Min().X - gap - half.X, rng.Float64()*800 - 400}
		case 2: // 上方
			center = Vec2{rng.Float64()*800 - 400, a.Max().Y + gap + half.Y}
		default: // 下方
			center = Vec2{rng.Float64()*800 - 400, a.Min().Y - gap - half.Y}
		}
		b := NewBox(center, size)

		if a.Overlaps(b) || b.Overlaps(a) {
			t.Fatalf("iteration %d: separated boxes reported overlap: a=%+v b=%+v", i, a, b)
		}
	}
}
