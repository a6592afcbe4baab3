package xphy

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrNotFound 表示节点上 "phy-mode" 与 "phy-connection-type" 均不存在。
	ErrNotFound = errors.New("xphy: phy mode property not found")

	// ErrUnknownMode 表示属性存在但不是已知的接口模式名。
	ErrUnknownMode = errors.New("xphy: unknown phy mode")
)
