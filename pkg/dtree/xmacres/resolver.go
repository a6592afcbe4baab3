package xmacres

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/dtkit/pkg/dtree/xnode"
	"github.com/omeyang/dtkit/pkg/util/xmac"
)

// 被读取的节点属性名，按回退优先级排列。
const (
	// propMACAddress 最近一次指派的地址，最优先。
	propMACAddress = "mac-address"
	// propTrioMACIndex 厂商生成步骤的接口序号属性。
	propTrioMACIndex = "trio-mac-idx"
	// propLocalMACAddress 出厂默认地址。
	propLocalMACAddress = "local-mac-address"
	// propLegacyAddress 历史遗留：被挪用存放 MAC 的寄存器地址字段。
	propLegacyAddress = "address"
	// propNVMemMACAddress 经命名引用提供的地址。
	propNVMemMACAddress = "nvmem-mac-address"
)

const instrumentationName = "github.com/omeyang/dtkit/pkg/dtree/xmacres"

// sourceGenerator 与 sourceNVMem 是非属性来源在日志/指标中的标识。
const (
	sourceGenerator = "generator"
	sourceNVMem     = "nvmem"
)

// step 是回退链中的一步。
// ok 为 true 表示本步产出地址；err 非 nil 表示整链终止并上抛该错误；
// 两者皆否则静默让位于下一步。
type step struct {
	source string
	run    func(ctx context.Context, node xnode.Node) (xmac.Addr, bool, error)
}

// Resolver 按固定优先级从硬件描述节点解析 MAC 地址。
// 通过 [New] 创建；构建后不可变，可并发调用。
type Resolver struct {
	steps    []step
	devices  DeviceLookup
	storage  Storage
	logger   *slog.Logger
	resolved metric.Int64Counter
}

// New 创建 Resolver。
// 回退链的组成（是否含生成步骤）在此一次决定。
func New(opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resolver{
		devices: o.devices,
		storage: o.storage,
		logger:  o.logger,
	}

	meter := o.meter.Meter(instrumentationName)
	counter, err := meter.Int64Counter("dtkit.macres.resolved.total",
		metric.WithDescription("mac addresses resolved, by winning source"))
	if err != nil {
		o.logger.Warn("xmacres: metric instrument unavailable", "error", err)
	} else {
		r.resolved = counter
	}

	r.steps = append(r.steps, r.propStep(propMACAddress))
	if o.generator != nil {
		r.steps = append(r.steps, r.generatorStep(o.generator))
	}
	r.steps = append(r.steps,
		r.propStep(propLocalMACAddress),
		r.propStep(propLegacyAddress),
		r.propStep(propNVMemMACAddress),
		step{source: sourceNVMem, run: r.nvmemStep},
	)
	return r
}

// Resolve 解析节点的 MAC 地址。
//
// 依次尝试回退链各步，返回首个有效地址；无效或缺失的候选静默跳过。
// 整链失败时上抛最后一步（nvmem 查询）的错误：[ErrNoDevice] 或存储
// 协作方的原始错误。
//
// 返回的地址为调用方所有；Resolver 不保留任何引用。
func (r *Resolver) Resolve(ctx context.Context, node xnode.Node) (xmac.Addr, error) {
	if node == nil {
		return xmac.Addr{}, fmt.Errorf("%w: nil node", ErrNotFound)
	}

	for _, st := range r.steps {
		addr, ok, err := st.run(ctx, node)
		if err != nil {
			return xmac.Addr{}, err
		}
		if !ok {
			continue
		}
		r.logger.DebugContext(ctx, "xmacres: resolved",
			"node", node.Path(), "source", st.source, "mac", addr.String())
		if r.resolved != nil {
			r.resolved.Add(ctx, 1, metric.WithAttributes(
				attribute.String("source", st.source)))
		}
		return addr, nil
	}

	// 不可达：nvmem 步骤必然产出地址或错误
	return xmac.Addr{}, ErrNotFound
}

// propStep 构造按属性名读取的回退步骤。
// 属性缺失或内容无效（长度、全零、多播）都静默让位于下一步。
func (r *Resolver) propStep(prop string) step {
	return step{
		source: prop,
		run: func(ctx context.Context, node xnode.Node) (xmac.Addr, bool, error) {
			b, present := node.Bytes(prop)
			if !present {
				return xmac.Addr{}, false, nil
			}
			addr, err := validAddr(b)
			if err != nil {
				r.logger.DebugContext(ctx, "xmacres: property skipped",
					"node", node.Path(), "property", prop, "reason", err.Error())
				return xmac.Addr{}, false, nil
			}
			return addr, true, nil
		},
	}
}

// generatorStep 构造序列号派生生成步骤（厂商特性）。
// 节点带 trio-mac-idx 属性时生成并无条件返回：
// 保留块基址首字节为偶数，结果构造即有效，无需复查。
func (r *Resolver) generatorStep(gen Generator) step {
	return step{
		source: sourceGenerator,
		run: func(ctx context.Context, node xnode.Node) (xmac.Addr, bool, error) {
			idx, present := node.U32(propTrioMACIndex)
			if !present {
				return xmac.Addr{}, false, nil
			}
			return gen.Generate(ctx, idx), true, nil
		},
	}
}

// nvmemStep 是回退链的最后一步：经设备对象查询非易失存储单元。
// 本步的错误即整链的错误。
func (r *Resolver) nvmemStep(ctx context.Context, node xnode.Node) (xmac.Addr, bool, error) {
	if r.devices == nil || r.storage == nil {
		return xmac.Addr{}, false, fmt.Errorf("%w: %s", ErrNoDevice, node.Path())
	}

	dev, err := r.devices.Lookup(node)
	if err != nil || dev == nil {
		return xmac.Addr{}, false, fmt.Errorf("%w: %s", ErrNoDevice, node.Path())
	}
	// 设备引用在一切退出路径上释放
	defer func() { _ = dev.Close() }() //nolint:errcheck // defer cleanup: 释放引用计数，无可处理的错误

	b, err := r.storage.MACAddress(ctx, dev)
	if err != nil {
		// 存储协作方的错误原样上抛
		return xmac.Addr{}, false, err
	}

	// 协作方被信任返回正确形状的数据，仅做长度防护，不复查单播/非零
	addr, err := xmac.ParseBytes(b)
	if err != nil {
		return xmac.Addr{}, false, fmt.Errorf("%w: nvmem cell: %w", ErrInvalid, err)
	}
	return addr, true, nil
}

// validAddr 是属性来源共用的有效性检查：
// 长度恰为 6 字节、非全零、单播位为 0。
func validAddr(b []byte) (xmac.Addr, error) {
	addr, err := xmac.ParseBytes(b)
	if err != nil {
		return xmac.Addr{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !addr.IsUnicast() {
		return xmac.Addr{}, fmt.Errorf("%w: zero or multicast address", ErrInvalid)
	}
	return addr, nil
}
