// Package xnvmem 提供非易失存储（nvmem）MAC 单元协作方的参考实现。
//
// xmacres 的回退链把 nvmem 查询定义为外部协作方接口；本包提供两种
// 可直接使用的实现：
//
//   - [Store]：内存单元表，Set 写入、并发读取安全，测试与嵌入场景使用
//   - [FromFile] / [FromBytes]：从 YAML/JSON 文件加载单元表
//     （设备名 → MAC 地址字符串，支持 xmac 的全部解析格式）
//
// 同时提供 [StaticDevices]：按节点名/路径匹配的静态设备查找表，
// 实现 xmacres 的设备查找协作方，供 CLI 与测试组装完整回退链。
//
// 单元文件示例：
//
//	eth0: "00:11:22:33:44:55"
//	eth1: "00-AA-BB-CC-DD-EE"
package xnvmem
