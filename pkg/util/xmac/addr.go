package xmac

import "net"

// Addr 表示 48 位 MAC 地址（EUI-48）。
//
// Addr 是不可变值类型：
//   - 零值表示无效地址，IsValid() 返回 false
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回 MAC 地址的字节表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// IsValid 报告 a 是否为有效的非零 MAC 地址。
// 零值 Addr{} 返回 false。
func (a Addr) IsValid() bool {
	return a != Addr{}
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。
// 无效地址返回 nil。
func (a Addr) HardwareAddr() net.HardwareAddr {
	if !a.IsValid() {
		return nil
	}
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}

// Zero 返回全零地址 00:00:00:00:00:00。
// 与零值 Addr{} 相同，设备树中通常表示"未烧录"。
func Zero() Addr { return Addr{} }

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff。
//
// 设计决策: 使用函数而非包级变量，明确表达"只读常量"的意图，
// 编译器会将其内联（零运行时开销）。
func Broadcast() Addr {
	return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
}
