// validate_config 检查 data/ 下的配置能否被游戏加载
//
//	go run ./cmd/validate_config [-data data]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/bubblebobble/pkg/config"
)

func main() {
	dataDir := flag.String("data", "data", "配置目录")
	flag.Parse()

	problems, err := validate(*dataDir)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	for _, p := range problems {
		fmt.Printf("⚠️  %s\n", p)
	}
	if len(problems) == 0 {
		fmt.Printf("✅ 所有配置检查通过\n")
	}
}

// validate 加载全部配置并返回不致命的问题（缺失的音频文件等）
func validate(dataDir string) ([]string, error) {
	bundle, err := config.LoadBundle(dataDir)
	if err != nil {
		return nil, err
	}

	fmt.Printf("✅ 关卡数量: %d\n", len(bundle.Levels))
	fmt.Printf("✅ 商店道具数量: %d\n", len(bundle.Shop.PowerUps))

	var problems []string
	for _, level := range bundle.Levels {
		if len(level.Enemies) == 0 {
			problems = append(problems, fmt.Sprintf("关卡 %s 没有敌人，开局即通关", level.ID))
		}
		if len(level.SpawnPoints) < level.MaxItemCount {
			problems = append(problems, fmt.Sprintf("关卡 %s 的生成点 (%d) 少于道具上限 (%d)",
				level.ID, len(level.SpawnPoints), level.MaxItemCount))
		}
	}

	audio := bundle.Game.Audio
	for _, id := range []string{audio.BackgroundMusic, audio.PopSFX, audio.BossSFX} {
		if _, ok := audio.Clips[id]; id != "" && !ok {
			problems = append(problems, fmt.Sprintf("音频 %s 没有对应的文件路径", id))
		}
	}
	for id, path := range audio.Clips {
		if _, err := os.Stat(path); err != nil {
			problems = append(problems, fmt.Sprintf("音频 %s 的文件 %s 不存在（运行时静音）", id, path))
		}
	}
	return problems, nil
}
