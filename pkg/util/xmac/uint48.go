package xmac

// uint48Mask 是 48 位地址空间的掩码。
const uint48Mask = 0x0000FFFFFFFFFFFF

// Uint48 返回 MAC 地址的 48 位整数视图。
// 按网络字节序（大端）排列：字节 0 在 bit 47..40，字节 5 在 bit 7..0。
// 例如 00:1e:fb:f8:00:01 返回 0x001EFBF80001。
func (a Addr) Uint48() uint64 {
	return uint64(a.bytes[0])<<40 |
		uint64(a.bytes[1])<<32 |
		uint64(a.bytes[2])<<24 |
		uint64(a.bytes[3])<<16 |
		uint64(a.bytes[4])<<8 |
		uint64(a.bytes[5])
}

// AddrFromUint48 从 48 位整数创建 MAC 地址。
// 取 v 的低 48 位，按大端字节序排列；高 16 位被忽略。
func AddrFromUint48(v uint64) Addr {
	return Addr{bytes: [6]byte{
		byte(v >> 40),
		byte(v >> 32),
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}}
}

// ReverseUint48 反转 48 位值的字节顺序：
// 字节 0↔5、1↔4、2↔3 两两交换（6 字节序列完全倒序）。
//
// 这是纯位运算的字节置换，不做任何数值重解释；
// 自反：ReverseUint48(ReverseUint48(v)) == v & 0xFFFFFFFFFFFF。
// 用于按相反字节顺序传输地址的硬件。
func ReverseUint48(v uint64) uint64 {
	var r uint64
	r = (v >> 40) & 0x00000000000000FF
	r |= (v >> 24) & 0x000000000000FF00
	r |= (v >> 8) & 0x0000000000FF0000
	r |= (v << 8) & 0x00000000FF000000
	r |= (v << 24) & 0x000000FF00000000
	r |= (v << 40) & 0x0000FF0000000000
	return r
}

// Reversed 返回字节顺序完全倒序的地址。
// a.Reversed().Reversed() == a 恒成立。
func (a Addr) Reversed() Addr {
	return Addr{bytes: [6]byte{
		a.bytes[5], a.bytes[4], a.bytes[3],
		a.bytes[2], a.bytes[1], a.bytes[0],
	}}
}
