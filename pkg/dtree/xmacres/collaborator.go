package xmacres

import (
	"context"

	"github.com/omeyang/dtkit/pkg/dtree/xnode"
	"github.com/omeyang/dtkit/pkg/util/xmac"
)

// Device 是树节点关联的设备对象句柄。
// 句柄带引用计数：取得后必须调用 Close 释放，Resolver 保证在
// nvmem 步骤的一切退出路径上释放。
type Device interface {
	// Name 返回设备名。
	Name() string

	// Close 释放设备引用。多次调用的行为由实现定义。
	Close() error
}

// DeviceLookup 按树节点定位设备对象（外部协作方）。
type DeviceLookup interface {
	// Lookup 返回节点对应的设备对象。
	// 找不到时返回错误；返回的设备引用由调用方负责 Close。
	Lookup(node xnode.Node) (Device, error)
}

// Storage 是非易失存储（nvmem）协作方，按设备查询 MAC 单元。
type Storage interface {
	// MACAddress 返回设备 "mac-address" 单元的 6 字节内容。
	// 失败时返回错误；错误会被 Resolver 原样上抛。
	MACAddress(ctx context.Context, dev Device) ([]byte, error)
}

// Generator 是序列号派生地址生成协作方（厂商特性）。
// xmacgen.Generator 满足此接口。
type Generator interface {
	// Generate 返回 index 号接口的派生地址，永不失败。
	Generate(ctx context.Context, index uint32) xmac.Addr
}
