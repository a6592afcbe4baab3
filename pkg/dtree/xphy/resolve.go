package xphy

import (
	"fmt"
	"strings"

	"github.com/omeyang/dtkit/pkg/dtree/xnode"
)

// 被读取的节点属性名。
const (
	// propPhyMode 首选属性。
	propPhyMode = "phy-mode"
	// propPhyConnectionType 兼容旧描述的回退属性。
	propPhyConnectionType = "phy-connection-type"
)

// Resolve 解析节点的 PHY 接口模式。
//
// 读取 "phy-mode" 属性，不存在则回退读取 "phy-connection-type"；
// 将取得的字符串按表序与模式表大小写不敏感比较，返回首个命中的 [Mode]。
//
// 错误：
//   - 两个属性都不存在：[ErrNotFound]
//   - 属性存在但无表项匹配：[ErrUnknownMode]
//
// 无副作用；给定相同属性值与表内容结果确定。
func Resolve(node xnode.Node) (Mode, error) {
	pm, ok := node.String(propPhyMode)
	if !ok {
		pm, ok = node.String(propPhyConnectionType)
	}
	if !ok {
		return ModeNA, ErrNotFound
	}

	for i, name := range modeNames {
		if strings.EqualFold(pm, name) {
			return Mode(i), nil
		}
	}
	return ModeNA, fmt.Errorf("%w: %q", ErrUnknownMode, pm)
}
