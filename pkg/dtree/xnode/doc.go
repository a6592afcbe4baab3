// Package xnode 提供硬件描述树的只读属性视图。
//
// xnode 是 dtkit 各解析器（xphy, xmacres, xmacgen）消费的树数据来源。
// 树本身由外部产生，本包定义统一的 [Node] 只读接口，并提供两种实现：
//
//   - 内存树：[NewNode] / [NewTree] 手工构建，测试与嵌入场景使用
//   - 描述文件：[Load] / [LoadBytes] 从 YAML/JSON 描述加载（koanf 解析）
//
// # 属性编码约定
//
// 属性值统一存储为字节数组，沿用扁平设备树的编码规则：
//
//   - 字符串属性：NUL 结尾的字节序列（[Node.String] 自动去除结尾 NUL）
//   - u32 属性：4 字节大端（[Node.U32] 要求长度恰为 4）
//   - 原始字节：任意长度（[Node.Bytes]）
//
// 所有访问器返回 (value, ok)，区分"属性不存在"与"属性为空"。
//
// # 描述文件映射规则
//
// YAML/JSON 中嵌套映射成为子节点，标量成为属性：
//
//   - 字符串 → 字符串属性；键名为 "address" 或以 "-address" 结尾时，
//     先按 MAC 地址解析（aa:bb:cc:dd:ee:ff 等格式），失败则按十六进制
//     字节串解析（允许非 6 字节，便于描述遗留/损坏数据）
//   - 整数 → u32 单元（超出 uint32 范围报错）
//   - 整数列表 → 原始字节（每项 0..255）
//
// 示例描述文件：
//
//	serial-number: "229"
//	ethernet@0:
//	  phy-mode: rgmii-id
//	  local-mac-address: "00:11:22:33:44:55"
//	  trio-mac-idx: 0
//
// # 并发
//
// 树构建完成后即不可变，任意多个 goroutine 可并发读取。
package xnode
