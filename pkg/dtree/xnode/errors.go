package xnode

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmptyPath 表示描述文件路径为空。
	ErrEmptyPath = errors.New("xnode: empty path")

	// ErrUnsupportedFormat 表示不支持的描述文件格式。
	// 支持的格式：yaml (.yaml/.yml)、json (.json)。
	ErrUnsupportedFormat = errors.New("xnode: unsupported format")

	// ErrLoadFailed 表示描述文件读取或解析失败。
	ErrLoadFailed = errors.New("xnode: load failed")

	// ErrBadProperty 表示描述文件中的属性值无法映射为树属性。
	ErrBadProperty = errors.New("xnode: bad property value")
)
