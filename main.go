package main

import (
	"flag"
	"log"

	"github.com/gonewx/invaders/pkg/app"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultConfigPath 嵌入的默认配置文件
const defaultConfigPath = "data/invaders.yaml"

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置的 data/invaders.yaml）")
)

// loadConfig 加载游戏配置
// 指定了 --config 时从磁盘读取，否则读取嵌入的默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameConfig, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Game:    gameConfig,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(gameConfig.Window.Width, gameConfig.Window.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
