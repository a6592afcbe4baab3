// Package xmacres 提供硬件描述树 MAC 地址的有序回退链解析。
//
// 一次 [Resolver.Resolve] 按固定优先级尝试下列来源，返回首个产出
// 有效地址的来源：
//
//  1. 属性 "mac-address" —— 最近一次指派的地址（固件可能在运行期改写），
//     因此最优先
//  2. 序列号派生生成（仅配置了 [WithGenerator] 时存在此步）：节点带
//     "trio-mac-idx" u32 属性则生成并无条件返回——保留块基址首字节为
//     偶数，结果构造即有效，无需复查
//  3. 属性 "local-mac-address" —— 出厂默认地址
//  4. 属性 "address" —— 历史遗留：个别描述文件把寄存器地址字段挪用为 MAC
//  5. 属性 "nvmem-mac-address" —— 经由命名引用提供的地址
//  6. 非易失存储（nvmem）单元 "mac-address"：先定位节点对应的设备对象
//     （失败返回 [ErrNoDevice]），再查询存储协作方，其错误原样上抛
//
// 属性来源（步骤 1/3/4/5）共用同一有效性规则：长度恰为 6 字节、非全零、
// 单播位为 0。全零地址被拒绝是因为描述文件可能定义了属性但引导程序
// 没有烧录。无效或缺失的候选静默让位于下一步；整链失败时上抛最后
// 一步的错误。
//
// # 协作方
//
// 设备查找（[DeviceLookup]）与存储查询（[Storage]）都是外部协作方。
// 设备对象采用引用计数：Resolve 在 nvmem 步骤取得设备后保证在一切
// 退出路径（含错误路径）上调用 [Device.Close] 释放引用。
//
// # 厂商特性
//
// 序列号派生步骤对应编译期厂商特性：以 [WithGenerator] 在构建时一次
// 决定，不在每次调用时判定（未配置时回退链里根本没有这一步）。
//
// # 并发
//
// Resolver 构建后不可变，只读外部拥有的树数据，调用间无共享可变状态，
// 可在并行设备探测中并发调用。
package xmacres
