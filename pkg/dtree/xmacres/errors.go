package xmacres

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrNotFound 表示节点上不存在任何可用的地址来源。
	ErrNotFound = errors.New("xmacres: no mac address source present")

	// ErrInvalid 表示属性存在但内容无效（长度错误、全零或多播）。
	ErrInvalid = errors.New("xmacres: invalid mac address property")

	// ErrNoDevice 表示节点没有关联的设备对象，nvmem 查询无法进行。
	ErrNoDevice = errors.New("xmacres: no device for node")
)
