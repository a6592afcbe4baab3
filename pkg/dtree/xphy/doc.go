// Package xphy 提供 PHY 接口模式解析。
//
// xphy 从硬件描述节点读取 "phy-mode"（优先）或 "phy-connection-type"
// 字符串属性，在固定模式表中大小写不敏感地查找，返回命中的 [Mode]。
//
// # 模式表
//
// 模式表是进程级不可变常量，按表序匹配；表索引即 [Mode] 的数值，
// 作为对外表示使用。表只允许追加，已有条目的索引跨版本稳定。
//
// # 错误处理
//
//	mode, err := xphy.Resolve(node)
//	switch {
//	case errors.Is(err, xphy.ErrNotFound):
//	    // 两个属性都不存在
//	case errors.Is(err, xphy.ErrUnknownMode):
//	    // 属性存在但不在模式表中
//	}
//
// 解析无副作用，给定相同属性值结果确定，可并发调用。
package xphy
