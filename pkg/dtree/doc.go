// Package dtree 提供硬件描述树（device tree）相关的子包。
//
// 子包列表：
//   - xnode: 树节点只读属性视图、内存树构建与 YAML/JSON 描述加载
//   - xphy: PHY 接口模式表与 phy-mode / phy-connection-type 解析
//   - xmacres: MAC 地址有序回退链解析
//   - xmacgen: 序列号派生的确定性 MAC 地址生成（厂商特性）
//   - xnvmem: 非易失存储（nvmem）MAC 单元的内存/文件实现
//
// 设计原则：
//   - 解析器只读外部拥有的树数据，调用间无共享可变状态，天然并发安全
//   - 回退链每步静默让位于下一步，仅最后一步的错误原样上抛
//   - 所有操作同步有界，无内部重试与超时（重试属于调用方职责）
package dtree
