package xnvmem

import (
	"fmt"

	"github.com/omeyang/dtkit/pkg/dtree/xmacres"
	"github.com/omeyang/dtkit/pkg/dtree/xnode"
)

// staticDevice 是无需引用计数的静态设备句柄。
type staticDevice struct {
	name string
}

func (d staticDevice) Name() string { return d.name }
func (d staticDevice) Close() error { return nil }

// Devices 是静态设备查找表，实现 [xmacres.DeviceLookup]。
// 节点按名字或绝对路径匹配表项。
type Devices struct {
	names map[string]struct{}
}

var _ xmacres.DeviceLookup = (*Devices)(nil)

// StaticDevices 以给定的设备名/节点路径创建静态设备表。
// 供 CLI 与测试组装完整回退链；真实驱动环境应提供自己的
// [xmacres.DeviceLookup] 实现。
func StaticDevices(names ...string) *Devices {
	d := &Devices{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		d.names[name] = struct{}{}
	}
	return d
}

// Lookup 实现 [xmacres.DeviceLookup]。
// 设备名取节点名；找不到时返回 [ErrNoSuchDevice]。
func (d *Devices) Lookup(node xnode.Node) (xmacres.Device, error) {
	if _, ok := d.names[node.Name()]; ok {
		return staticDevice{name: node.Name()}, nil
	}
	if _, ok := d.names[node.Path()]; ok {
		return staticDevice{name: node.Name()}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchDevice, node.Path())
}
