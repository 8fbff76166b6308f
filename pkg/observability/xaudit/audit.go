package xaudit

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/randkit/pkg/random/xrand"
)

const (
	defaultInstrumentationName = "github.com/omeyang/randkit/xaudit"

	metricEntropyDraws = "randkit.entropy.draws"
	metricEntropyBytes = "randkit.entropy.bytes"
)

type config struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义审计装饰器的配置选项。
type Option func(*config)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认使用全局 Provider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// Instrument 将 next 包装为带熵消耗指标的字节源。
//
// 包装后语义完全透明：字节与 reason 原样进出，指标记录发生在
// 委托调用之后（next panic 时不产生半记录）。
//
// 设计决策 - 属性基数：reason 是自由文本，直接作为属性会导致
// 无界基数。这里只取首段操作标签（第一个冒号之前的部分），
// xrand 的派生操作数量有限，标签集合因此有界。
func Instrument(next xrand.ByteFunc, opts ...Option) (xrand.ByteFunc, error) {
	if next == nil {
		return nil, ErrNilByteFunc
	}

	cfg := &config{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	draws, err := meter.Int64Counter(
		metricEntropyDraws,
		metric.WithDescription("entropy draws from the byte source"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xaudit: create draws counter failed: %w", err)
	}

	bytes, err := meter.Int64Counter(
		metricEntropyBytes,
		metric.WithDescription("entropy bytes drawn from the byte source"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("xaudit: create bytes counter failed: %w", err)
	}

	return func(n int, reason string) []byte {
		b := next(n, reason)

		// 字节源没有请求级 context，指标用背景 context 记录
		ctx := context.Background()
		attrs := metric.WithAttributes(attribute.String("operation", operationLabel(reason)))
		draws.Add(ctx, 1, attrs)
		bytes.Add(ctx, int64(n), attrs)

		return b
	}, nil
}

// operationLabel 提取 reason 的首段操作标签。
// 没有标签分隔符时整个 reason 视为调用方直达 Bytes 的原始 reason，
// 归入 "raw" 避免基数失控。
func operationLabel(reason string) string {
	if i := strings.IndexByte(reason, ':'); i > 0 {
		return reason[:i]
	}
	return "raw"
}
