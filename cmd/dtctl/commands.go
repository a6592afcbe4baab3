package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/dtkit/pkg/dtree/xmacgen"
	"github.com/omeyang/dtkit/pkg/dtree/xmacres"
	"github.com/omeyang/dtkit/pkg/dtree/xnode"
	"github.com/omeyang/dtkit/pkg/dtree/xnvmem"
	"github.com/omeyang/dtkit/pkg/dtree/xphy"
)

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// createCommands 创建命令列表。
func createCommands() []*cli.Command {
	return []*cli.Command{
		macCommand(),
		phyCommand(),
		genCommand(),
	}
}

func treeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "tree",
		Aliases: []string{"t"},
		Usage:   "硬件描述文件路径（.yaml/.yml/.json）",
	}
}

func nodeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "node",
		Aliases: []string{"n"},
		Usage:   "节点绝对路径，如 /soc/ethernet@0",
	}
}

// cliLogger 返回命令使用的日志记录器。
// 默认仅输出 Warn 及以上；--verbose 时放开到 Info。
func cliLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Root().Bool("verbose") {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadNode 加载描述文件并定位节点，是 mac/phy 命令的公共前置。
func loadNode(cmd *cli.Command) (*xnode.Tree, xnode.Node, error) {
	treePath := cmd.String("tree")
	nodePath := cmd.String("node")
	if treePath == "" {
		return nil, nil, usagef("缺少 --tree 参数")
	}
	if nodePath == "" {
		return nil, nil, usagef("缺少 --node 参数")
	}

	tree, err := xnode.Load(treePath)
	if err != nil {
		return nil, nil, err
	}
	node, ok := tree.Find(nodePath)
	if !ok {
		return nil, nil, usagef("节点不存在: %s", nodePath)
	}
	return tree, node, nil
}

func macCommand() *cli.Command {
	return &cli.Command{
		Name:  "mac",
		Usage: "解析节点的 MAC 地址",
		Flags: []cli.Flag{
			treeFlag(),
			nodeFlag(),
			&cli.StringFlag{
				Name:  "nvmem",
				Usage: "nvmem 单元文件路径（设备名 → MAC 映射）",
			},
			&cli.BoolFlag{
				Name:  "trio",
				Usage: "启用序列号派生生成步骤（厂商特性）",
			},
		},
		Action: runMAC,
	}
}

func runMAC(ctx context.Context, cmd *cli.Command) error {
	tree, node, err := loadNode(cmd)
	if err != nil {
		return err
	}
	logger := cliLogger(cmd)

	opts := []xmacres.Option{xmacres.WithLogger(logger)}

	if cmd.Bool("trio") {
		gen, err := xmacgen.New(tree.Root(), xmacgen.WithLogger(logger))
		if err != nil {
			return err
		}
		opts = append(opts, xmacres.WithGenerator(gen))
	}

	if cellPath := cmd.String("nvmem"); cellPath != "" {
		store, err := xnvmem.FromFile(cellPath)
		if err != nil {
			return err
		}
		opts = append(opts,
			xmacres.WithStorage(store),
			xmacres.WithDeviceLookup(xnvmem.StaticDevices(node.Name(), node.Path())),
		)
	}

	addr, err := xmacres.New(opts...).Resolve(ctx, node)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, addr)
	return nil
}

func phyCommand() *cli.Command {
	return &cli.Command{
		Name:   "phy",
		Usage:  "解析节点的 PHY 接口模式",
		Flags:  []cli.Flag{treeFlag(), nodeFlag()},
		Action: runPhy,
	}
}

func runPhy(_ context.Context, cmd *cli.Command) error {
	_, node, err := loadNode(cmd)
	if err != nil {
		return err
	}

	mode, err := xphy.Resolve(node)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "%s (%d)\n", mode, int(mode))
	return nil
}

func genCommand() *cli.Command {
	return &cli.Command{
		Name:  "gen",
		Usage: "演算序列号派生的 MAC 地址",
		Flags: []cli.Flag{
			treeFlag(),
			&cli.UintFlag{
				Name:  "idx",
				Usage: "接口序号（已知部署中为 0 或 1）",
			},
			&cli.BoolFlag{
				Name:  "reversed",
				Usage: "输出字节倒序的 48 位值",
			},
		},
		Action: runGen,
	}
}

func runGen(ctx context.Context, cmd *cli.Command) error {
	treePath := cmd.String("tree")
	if treePath == "" {
		return usagef("缺少 --tree 参数")
	}
	tree, err := xnode.Load(treePath)
	if err != nil {
		return err
	}

	gen, err := xmacgen.New(tree.Root(), xmacgen.WithLogger(cliLogger(cmd)))
	if err != nil {
		return err
	}

	idx := uint32(cmd.Uint("idx"))
	if cmd.Bool("reversed") {
		fmt.Fprintf(cmd.Root().Writer, "%012X\n", gen.ReversedValue(ctx, idx))
		return nil
	}
	fmt.Fprintln(cmd.Root().Writer, gen.Generate(ctx, idx))
	return nil
}
