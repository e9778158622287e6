package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// hudFontSize 调试信息字号
const hudFontSize = 12

// newHUDFace 加载调试信息使用的等宽字体
// 字体数据随 golang.org/x/image 一起编译，不需要外部文件
func newHUDFace() (text.Face, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HUD font: %w", err)
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    hudFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HUD font face: %w", err)
	}

	return text.NewGoXFace(face), nil
}
