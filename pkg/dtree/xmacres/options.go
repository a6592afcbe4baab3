package xmacres

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Option 定义 Resolver 可选配置。
type Option func(*options)

type options struct {
	generator Generator
	devices   DeviceLookup
	storage   Storage
	logger    *slog.Logger
	meter     metric.MeterProvider
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
		meter:  otel.GetMeterProvider(),
	}
}

// WithGenerator 启用序列号派生生成步骤（厂商特性开关）。
// 默认不启用：不配置时回退链中没有生成步骤。
// 是否启用在构建时一次决定，不在每次解析时判定。
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithDeviceLookup 设置设备查找协作方。
// 默认无：nvmem 步骤将以 [ErrNoDevice] 失败。
func WithDeviceLookup(l DeviceLookup) Option {
	return func(o *options) {
		o.devices = l
	}
}

// WithStorage 设置非易失存储协作方。
// 默认无：nvmem 步骤将以 [ErrNoDevice] 失败。
func WithStorage(s Storage) Option {
	return func(o *options) {
		o.storage = s
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
