package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏可调参数
//
// 配置文件位置: data/invaders.yaml
// 未在文件中出现的字段保留 DefaultGameConfig 中的默认值
type GameConfig struct {
	// Window 窗口尺寸
	Window WindowConfig `yaml:"window"`

	// Enemy 敌人生成与开火
	Enemy EnemyConfig `yaml:"enemy"`

	// Player 玩家复活与射击
	Player PlayerConfig `yaml:"player"`

	// Seed 随机数种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	// Max 同时存活的敌人上限
	Max int `yaml:"max"`

	// SpawnInterval 两次生成尝试之间的间隔（秒）
	SpawnInterval float64 `yaml:"spawnInterval"`

	// FireChance 每个固定步触发敌人齐射的概率 [0, 1]
	FireChance float64 `yaml:"fireChance"`

	// FormationMembersMax 每个编队模板的成员上限
	FormationMembersMax int `yaml:"formationMembersMax"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	// RespawnDelay 玩家被击毁后到复活的延迟（秒）
	RespawnDelay float64 `yaml:"respawnDelay"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Enemy: EnemyConfig{
			Max:                 2,
			SpawnInterval:       1.0,
			FireChance:          1.0 / 60.0,
			FormationMembersMax: FormationMembersMax,
		},
		Player: PlayerConfig{
			RespawnDelay: 2.0,
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/invaders.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 从 YAML 字节解析游戏配置
// 用于嵌入资源（embedded.ReadFile）和测试
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口宽高为正
//   - 敌人上限、生成间隔、编队成员上限为正
//   - 开火概率在 [0, 1] 内
//   - 复活延迟非负
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Enemy.Max <= 0 {
		return fmt.Errorf("enemy max must be positive, got %d", c.Enemy.Max)
	}
	if c.Enemy.SpawnInterval <= 0 {
		return fmt.Errorf("enemy spawnInterval must be positive, got %.3f", c.Enemy.SpawnInterval)
	}
	if c.Enemy.FireChance < 0 || c.Enemy.FireChance > 1 {
		return fmt.Errorf("enemy fireChance must be within [0, 1], got %.3f", c.Enemy.FireChance)
	}
	if c.Enemy.FormationMembersMax <= 0 {
		return fmt.Errorf("enemy formationMembersMax must be positive, got %d", c.Enemy.FormationMembersMax)
	}

	if c.Player.RespawnDelay < 0 {
		return fmt.Errorf("player respawnDelay must be >= 0, got %.3f", c.Player.RespawnDelay)
	}

	return nil
}
