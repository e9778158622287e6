// simulate 无窗口运行若干固定步并输出统计，用于验证生成、碰撞和回收逻辑
//
// 用法:
//
//	go run ./cmd/simulate --steps 3600 --seed 42
//	go run ./cmd/simulate --config data/invaders.yaml --autofire --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/invaders/pkg/components"
	"github.com/gonewx/invaders/pkg/config"
	"github.com/gonewx/invaders/pkg/ecs"
	"github.com/gonewx/invaders/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/invaders.yaml", "游戏配置文件路径")
	steps      = flag.Int("steps", 60*60, "运行的固定步数")
	seed       = flag.Int64("seed", 42, "随机数种子（覆盖配置文件）")
	autofire   = flag.Bool("autofire", false, "玩家每隔 fireEvery 步自动开火")
	fireEvery  = flag.Int("fireEvery", 20, "自动开火间隔（步）")
)

// autopilot 左右摆动并定时开火的输入
type autopilot struct {
	step      int
	fire      bool
	fireEvery int
}

func (a *autopilot) Horizontal() float64 {
	// 每 2 秒换一次方向
	if (a.step/120)%2 == 0 {
		return 1
	}
	return -1
}

func (a *autopilot) FirePressed() bool {
	return a.fire && a.fireEvery > 0 && a.step%a.fireEvery == 0
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	cfg.Seed = *seed

	input := &autopilot{fire: *autofire, fireEvery: *fireEvery}
	scene := scenes.NewGameScene(cfg, input, false)

	maxEntities, multiKillSteps := 0, 0
	for i := 0; i < *steps; i++ {
		input.step = i
		scene.Update(config.TimeStep)
		if scene.LastCollision().EnemiesDestroyed > 1 {
			multiKillSteps++
		}
		if n := scene.EntityManager().EntityCount(); n > maxEntities {
			maxEntities = n
		}
	}

	em := scene.EntityManager()
	state := scene.State()

	fmt.Printf("模拟 %d 步 (%.1f 秒), 种子 %d\n", scene.Steps(), state.Clock.Now(), *seed)
	fmt.Printf("  击毁敌人: %d (单步多杀 %d 次)\n", state.Kills, multiKillSteps)
	fmt.Printf("  玩家死亡: %d\n", state.Player.Deaths)
	fmt.Printf("  存活敌人: %d (上限 %d)\n", state.EnemyCount.Value(), cfg.Enemy.Max)
	fmt.Printf("  存活激光: %d\n", len(ecs.GetEntitiesWith1[*components.ProjectileComponent](em)))
	fmt.Printf("  播放中爆炸: %d\n", len(ecs.GetEntitiesWith1[*components.ExplosionComponent](em)))
	fmt.Printf("  实体数: 当前 %d, 峰值 %d\n", em.EntityCount(), maxEntities)
}
