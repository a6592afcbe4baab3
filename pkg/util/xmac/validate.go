package xmac

// IsZero 报告 a 是否为全零地址（00:00:00:00:00:00）。
// 注意：全零地址与无效地址（零值 Addr{}）相同。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsUnicast 报告 a 是否为有效单播地址。
// 单播地址的第一字节最低位（bit 0）为 0。
// 全零/无效地址返回 false。
//
// 这是设备树地址解析采用的结构有效性判断：
// 非零且单播，等价于以太网的"已分配地址"惯例。
func (a Addr) IsUnicast() bool {
	return a.IsValid() && (a.bytes[0]&0x01) == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节最低位（bit 0）为 1，广播地址是其特例。
// 无效地址返回 false。
func (a Addr) IsMulticast() bool {
	return a.IsValid() && (a.bytes[0]&0x01) == 1
}

// IsBroadcast 报告 a 是否为广播地址（ff:ff:ff:ff:ff:ff）。
func (a Addr) IsBroadcast() bool {
	return a == Broadcast()
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的第一字节次低位（bit 1）为 1。
// 无效地址返回 false。
func (a Addr) IsLocallyAdministered() bool {
	return a.IsValid() && (a.bytes[0]&0x02) == 0x02
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA）。
// UAA 的第一字节次低位（bit 1）为 0。
// 无效地址返回 false。
func (a Addr) IsUniversallyAdministered() bool {
	return a.IsValid() && (a.bytes[0]&0x02) == 0
}
