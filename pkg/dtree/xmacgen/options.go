package xmacgen

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/dtkit/pkg/util/xmac"
)

// Option 定义 Generator 可选配置。
type Option func(*options)

type options struct {
	base         xmac.Addr
	addrsPerUnit uint64
	logger       *slog.Logger
	meter        metric.MeterProvider
}

func defaultOptions() options {
	return options{
		base:         xmac.AddrFromUint48(DefaultBase),
		addrsPerUnit: DefaultAddrsPerUnit,
		logger:       slog.Default(),
		meter:        otel.GetMeterProvider(),
	}
}

// WithBase 设置厂商保留块的 48 位基址。
// 默认 00:1e:fb:f8:00:01（0x001EFBF80001）。
// 基址必须是非零单播地址，否则 New 返回 [ErrBadBase]。
func WithBase(base xmac.Addr) Option {
	return func(o *options) {
		o.base = base
	}
}

// WithAddrsPerUnit 设置每个序列号预留的接口地址数。
// 默认 2。必须为正整数，否则 New 返回 [ErrBadAddrsPerUnit]。
func WithAddrsPerUnit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.addrsPerUnit = uint64(n)
		} else {
			o.addrsPerUnit = 0 // validate() 报错
		}
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
// 默认使用 otel 全局 MeterProvider。传入 nil 将被忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.meter = provider
		}
	}
}

func (o *options) validate() error {
	if !o.base.IsUnicast() {
		return ErrBadBase
	}
	if o.addrsPerUnit == 0 {
		return ErrBadAddrsPerUnit
	}
	return nil
}
