package xmac

// Format 定义 MAC 地址的格式化风格。
type Format uint8

const (
	// FormatColon 使用冒号分隔，小写：aa:bb:cc:dd:ee:ff
	FormatColon Format = iota
	// FormatDash 使用短线分隔，小写：aa-bb-cc-dd-ee-ff
	FormatDash
	// FormatBare 无分隔符，小写：aabbccddeeff
	FormatBare
	// FormatColonUpper 使用冒号分隔，大写：AA:BB:CC:DD:EE:FF
	FormatColonUpper
	// FormatDashUpper 使用短线分隔，大写：AA-BB-CC-DD-EE-FF
	FormatDashUpper
	// FormatBareUpper 无分隔符，大写：AABBCCDDEEFF
	FormatBareUpper
)

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回默认格式（小写冒号）的字符串表示。
// 无效地址返回空字符串。
func (a Addr) String() string {
	if !a.IsValid() {
		return ""
	}
	return formatWithSep(a.bytes, ':', hexLower)
}

// FormatString 按指定格式返回 MAC 地址字符串。
// 无效地址返回空字符串。
func (a Addr) FormatString(f Format) string {
	if !a.IsValid() {
		return ""
	}

	switch f {
	case FormatColon:
		return formatWithSep(a.bytes, ':', hexLower)
	case FormatDash:
		return formatWithSep(a.bytes, '-', hexLower)
	case FormatBare:
		return formatBare(a.bytes, hexLower)
	case FormatColonUpper:
		return formatWithSep(a.bytes, ':', hexUpper)
	case FormatDashUpper:
		return formatWithSep(a.bytes, '-', hexUpper)
	case FormatBareUpper:
		return formatBare(a.bytes, hexUpper)
	default:
		return formatWithSep(a.bytes, ':', hexLower)
	}
}

// formatWithSep 使用指定分隔符格式化（xx:xx:xx:xx:xx:xx）。
// 预分配精确大小，零额外分配。
func formatWithSep(b [6]byte, sep byte, hex string) string {
	// 6*2 + 5 = 17 字节
	var buf [17]byte
	for i := range 6 {
		off := i * 3
		buf[off] = hex[b[i]>>4]
		buf[off+1] = hex[b[i]&0x0f]
		if i < 5 {
			buf[off+2] = sep
		}
	}
	return string(buf[:])
}

// formatBare 格式化为无分隔符格式（xxxxxxxxxxxx）。
func formatBare(b [6]byte, hex string) string {
	var buf [12]byte
	for i := range 6 {
		buf[i*2] = hex[b[i]>>4]
		buf[i*2+1] = hex[b[i]&0x0f]
	}
	return string(buf[:])
}
