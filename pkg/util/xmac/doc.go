// Package xmac 提供 48 位 MAC 地址（EUI-48）值类型。
//
// xmac 是 dtkit 的地址基础类型，供设备树地址解析（xmacres）与
// 序列号派生地址生成（xmacgen）使用：
//
//   - 字节/字符串构造（ParseBytes, Parse, AddrFrom6）
//   - 地址属性判断（单播/多播、全零、本地/全局管理）
//   - 多格式输出（冒号、短线、无分隔符及大写变体）
//   - 48 位整数视图（Uint48, AddrFromUint48, ReverseUint48）
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较、栈分配
//   - 零值表示无效地址，语义受 [net/netip.Addr] 启发：
//     零值 Addr{} 与全零 MAC "00:00:00:00:00:00" 不可区分，
//     两者 IsValid() 均返回 false。设备树解析中全零地址本就作为
//     "未烧录"占位值整体拒绝，该限制不影响使用
//   - 48 位整数视图按网络字节序（大端）排列：字节 0 在 bit 47..40，
//     字节 5 在 bit 7..0，与硬件寄存器中常见的传输顺序一致
//
// # 有效性约定
//
// 设备树来源的地址采用以太网惯例做结构校验：长度恰为 6 字节、
// 非全零、首字节最低位为 0（单播）。对应判断方法为 [Addr.IsUnicast]，
// 其定义已蕴含非零要求。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xmac.ParseBytes(b)
//	if errors.Is(err, xmac.ErrInvalidLength) {
//	    // 长度不是 6 字节
//	}
package xmac
