package xmacgen

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/dtkit/pkg/dtree/xnode"
	"github.com/omeyang/dtkit/pkg/util/xmac"
)

const (
	// DefaultBase 是默认的厂商保留块基址（大端 6 字节 00:1e:fb:f8:00:01）。
	DefaultBase uint64 = 0x001EFBF80001

	// DefaultAddrsPerUnit 是默认的每序列号接口地址数。
	DefaultAddrsPerUnit = 2

	// MinSerial 是有效序列号的下界（含）。
	MinSerial int64 = 1

	// MaxSerial 是有效序列号的上界（不含）。
	MaxSerial int64 = 229375
)

// propSerialNumber 是树根节点上的序列号属性名。
const propSerialNumber = "serial-number"

const instrumentationName = "github.com/omeyang/dtkit/pkg/dtree/xmacgen"

// Generator 从设备序列号确定性地派生 MAC 地址。
// 通过 [New] 创建；构建后不可变，可并发调用。
type Generator struct {
	root          xnode.Node
	base          uint64
	addrsPerUnit  uint64
	logger        *slog.Logger
	serialInvalid metric.Int64Counter
}

// New 创建 Generator。root 是硬件描述树的根节点，
// 每次生成时从其 "serial-number" 属性读取序列号。
func New(root xnode.Node, opts ...Option) (*Generator, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		root:         root,
		base:         o.base.Uint48(),
		addrsPerUnit: o.addrsPerUnit,
		logger:       o.logger,
	}

	meter := o.meter.Meter(instrumentationName)
	counter, err := meter.Int64Counter("dtkit.macgen.serial.invalid",
		metric.WithDescription("serial numbers rejected as unparsable or out of range"))
	if err != nil {
		// 指标不可用不阻碍生成，降级为仅日志
		o.logger.Warn("xmacgen: metric instrument unavailable", "error", err)
	} else {
		g.serialInvalid = counter
	}

	return g, nil
}

// Generate 返回 index 号接口的派生地址。
//
// 生成是 (序列号, index, 配置) 的纯函数，永不失败：序列号缺失按 0 计，
// 无法解析或超出 [MinSerial, MaxSerial) 的序列号降级为 0 并记录诊断。
// 基址首字节为偶数，结果构造即为有效单播地址。
func (g *Generator) Generate(ctx context.Context, index uint32) xmac.Addr {
	return xmac.AddrFromUint48(g.Value(ctx, index))
}

// Value 返回派生地址的 48 位整数视图（正向字节序）。
func (g *Generator) Value(ctx context.Context, index uint32) uint64 {
	v := g.base + uint64(index)

	serialText, ok := g.root.String(propSerialNumber)
	if !ok {
		// 序列号属性缺失：序列号贡献为 0，无诊断
		return low48(v)
	}

	// 基数自动检测：支持 "229"、"0x1e5" 等写法
	serial, err := strconv.ParseInt(serialText, 0, 64)
	if err != nil || serial < MinSerial || serial >= MaxSerial {
		serial = 0
		g.logger.ErrorContext(ctx, "xmacgen: serial number out of range",
			"serial", serialText, "min", MinSerial, "max", MaxSerial)
		if g.serialInvalid != nil {
			g.serialInvalid.Add(ctx, 1, metric.WithAttributes(
				attribute.String("serial", serialText)))
		}
	}

	v = g.base + uint64(serial)*g.addrsPerUnit + uint64(index)
	g.logger.InfoContext(ctx, "xmacgen: generated mac",
		"index", index, "mac", fmt.Sprintf("%012X", low48(v)))
	return low48(v)
}

// ReversedValue 返回派生地址的字节倒序 48 位值，
// 供按相反字节顺序传输地址的硬件使用。
// 对同一 index，ReversedValue 是 Value 的字节置换，二次反转还原。
func (g *Generator) ReversedValue(ctx context.Context, index uint32) uint64 {
	return xmac.ReverseUint48(g.Value(ctx, index))
}

func low48(v uint64) uint64 {
	return v & 0x0000FFFFFFFFFFFF
}
