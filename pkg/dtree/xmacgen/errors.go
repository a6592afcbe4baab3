package xmacgen

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrNilRoot 表示未提供树根节点。
	ErrNilRoot = errors.New("xmacgen: nil root node")

	// ErrBadBase 表示基址不是有效的单播地址。
	// 保留块首字节必须为偶数，生成结果才能"构造即有效"。
	ErrBadBase = errors.New("xmacgen: base address must be non-zero unicast")

	// ErrBadAddrsPerUnit 表示每序列号地址数不是正整数。
	ErrBadAddrsPerUnit = errors.New("xmacgen: addrs per unit must be positive")
)
