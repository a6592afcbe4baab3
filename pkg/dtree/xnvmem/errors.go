package xnvmem

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrCellNotFound 表示设备没有对应的 MAC 单元。
	ErrCellNotFound = errors.New("xnvmem: mac cell not found")

	// ErrNoSuchDevice 表示静态设备表中没有匹配的设备。
	ErrNoSuchDevice = errors.New("xnvmem: no such device")

	// ErrEmptyPath 表示单元文件路径为空。
	ErrEmptyPath = errors.New("xnvmem: empty path")

	// ErrUnsupportedFormat 表示不支持的单元文件格式。
	ErrUnsupportedFormat = errors.New("xnvmem: unsupported format")

	// ErrLoadFailed 表示单元文件读取或解析失败。
	ErrLoadFailed = errors.New("xnvmem: load failed")

	// ErrBadCell 表示单元文件中的条目无法解析为 MAC 地址。
	ErrBadCell = errors.New("xnvmem: bad cell value")
)
