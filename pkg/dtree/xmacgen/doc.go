// Package xmacgen 提供序列号派生的确定性 MAC 地址生成（厂商特性）。
//
// 生成算法：从厂商保留地址块的 48 位基址出发，读取硬件描述树根节点的
// "serial-number" 字符串属性，计算
//
//	mac = base + serial*addrsPerUnit + index
//
// 取低 48 位按大端字节序输出。addrsPerUnit（默认 2）表示每个序列号
// 预留的接口地址数：同一设备 index 0 与 index 1 相差 1，相邻序列号
// 互不冲突。
//
// # 序列号降级策略
//
// 序列号属性缺失时直接返回 base + index；属性存在但无法解析、小于
// [MinSerial] 或不小于 [MaxSerial] 时按 0 处理并记录 Error 级日志与
// dtkit.macgen.serial.invalid 计数——生成永不失败。这是"不因序列号
// 问题阻碍接口启用"的刻意策略；代价是所有降级设备会在 base + index
// 上碰撞，因此通过日志与指标显式暴露。
//
// # 字节序反转
//
// [Generator.ReversedValue] 为按相反字节顺序传输地址的硬件提供
// 6 字节完全倒序的 48 位值（见 [xmac.ReverseUint48]），纯字节置换、
// 二次反转还原。
//
// # 并发
//
// Generator 构建后不可变，只读树属性并写结构化日志，可并发调用。
package xmacgen
