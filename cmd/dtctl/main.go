// dtctl 是 dtkit 的命令行工具：从 YAML/JSON 硬件描述文件解析网络接口
// 的 MAC 地址与 PHY 接口模式，或直接演算序列号派生地址。
//
// 用法:
//
//	dtctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--verbose  输出解析过程日志（Info 级别）
//
// 命令:
//
//	mac   解析节点的 MAC 地址（可选启用厂商生成步骤与 nvmem 单元文件）
//	phy   解析节点的 PHY 接口模式
//	gen   演算序列号派生地址（正向或字节倒序）
//	help  显示帮助信息
//
// 退出码:
//
//	0: 解析成功
//	1: 解析失败（无可用地址来源、未知模式等）
//	2: 参数错误（缺少必需参数、节点不存在等）
//
// 示例:
//
//	dtctl mac --tree board.yaml --node /soc/ethernet@0
//	dtctl mac --tree board.yaml --node /soc/ethernet@0 --trio --nvmem cells.yaml
//	dtctl phy --tree board.yaml --node /soc/ethernet@0
//	dtctl gen --tree board.yaml --idx 1 --reversed
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "dtctl",
		Usage:   "硬件描述树网络属性解析工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "输出解析过程日志",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"dtkit Team",
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
