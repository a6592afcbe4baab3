// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址工具库，多格式解析、验证、序列化、48 位整数互转
//
// 设计原则：
//   - 值类型优先，零值即非法值
//   - 零依赖，跨平台兼容
package util
