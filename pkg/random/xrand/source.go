package xrand

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/omeyang/randkit/pkg/random/xalias"
)

// ByteFunc 是原始字节源契约。
//
// 实现必须返回恰好 n 个密码学强度的均匀随机字节；不可用时必须
// 大声失败（panic），严禁返回短读或零填充的结果。reason 是审计
// 元数据，实现可以记录它，但不得解析或依赖其内容。
type ByteFunc func(n int, reason string) []byte

// defaultSamplerCacheSize 采样表缓存的默认容量。
const defaultSamplerCacheSize = 128

// CryptoBytes 是默认字节源，基于 crypto/rand。
//
// 设计决策 - panic 行为说明：
// crypto/rand.Read 失败表示操作系统熵源不可用（如 /dev/urandom 无法
// 访问），这是极其罕见的系统级故障。此时继续运行会产生不安全、
// 不可预测的随机流，因此选择 panic 快速失败，而非降级或返回错误。
func CryptoBytes(n int, _ string) []byte {
	if n < 0 {
		panic("xrand: negative byte count")
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("xrand: crypto/rand.Read failed: " + err.Error())
	}
	return buf
}

// Source 是一条独立随机流的派生层。
// 必须通过 [New] 创建，零值不可用（方法调用会 panic）。
// 所有方法都是并发安全的。
type Source struct {
	bytes ByteFunc

	// 高斯备用偏差槽：一次极坐标法产出两个偏差，第二个暂存于此，
	// 由下一次 Gaussian 调用原子地读取并清空。
	mu       sync.Mutex
	spare    float64
	hasSpare bool

	// 采样表缓存：Weighted 实例指针身份 → 构造好的采样表。
	// 有界 LRU，不拥有 Weighted 实例，淘汰即回收。
	samplers *lru.Cache[any, *xalias.Sampler]
}

// Option 定义 Source 的可选配置函数类型。
type Option func(*options)

// options 内部可选配置。
type options struct {
	bytes     ByteFunc
	cacheSize int
}

// WithByteFunc 替换默认的 crypto/rand 字节源。
// 传入 nil 时保留默认值。测试中可注入脚本化字节源以获得确定性随机流。
func WithByteFunc(fn ByteFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.bytes = fn
		}
	}
}

// WithSamplerCacheSize 设置采样表缓存容量（默认 128）。
func WithSamplerCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// New 创建一条新的随机流。
// 如果缓存容量 < 1，返回 ErrInvalidCacheSize。
func New(opts ...Option) (*Source, error) {
	o := &options{
		bytes:     CryptoBytes,
		cacheSize: defaultSamplerCacheSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.cacheSize < 1 {
		return nil, ErrInvalidCacheSize
	}

	samplers, err := lru.New[any, *xalias.Sampler](o.cacheSize)
	if err != nil {
		return nil, err
	}

	return &Source{
		bytes:    o.bytes,
		samplers: samplers,
	}, nil
}

// mustReason 校验 reason 非空。
// 空 reason 属于调用方的程序性错误，立即 panic，不做恢复。
func mustReason(reason string) {
	if reason == "" {
		panic("xrand: reason must not be empty")
	}
}

// Bytes 返回 n 个随机字节，reason 原样透传给字节源。
func (s *Source) Bytes(n int, reason string) []byte {
	mustReason(reason)
	return s.bytes(n, reason)
}

// Uint32 返回一个均匀的 32 位无符号整数（4 字节，大端序）。
func (s *Source) Uint32(reason string) uint32 {
	mustReason(reason)
	return binary.BigEndian.Uint32(s.bytes(4, "uint32: "+reason))
}

// Uint32N 返回 [0, bound) 内的整数。
//
// bound 为 0 时立即返回 0，不消耗任何熵。
//
// 对 2^32 不能整除的 bound，取模结果存在统计偏差；这是文档化的
// 近似而非缺陷，调用方接受该偏差（不做拒绝采样）。
func (s *Source) Uint32N(bound uint32, reason string) uint32 {
	mustReason(reason)
	if bound == 0 {
		return 0
	}
	return s.Uint32("bounded: "+reason) % bound
}

// BigUint 读取 byteCount 个字节并按大端序（最高有效字节在前）
// 累积为非负大整数。
func (s *Source) BigUint(byteCount int, reason string) *big.Int {
	mustReason(reason)
	return new(big.Int).SetBytes(s.bytes(byteCount, "big uint: "+reason))
}

// IEEE-754 double 的位域常量
const (
	fracMask = 1<<52 - 1   // 低 52 位尾数
	expOne   = 0x3FF << 52 // 符号 0、偏置指数 1023，即 [1.0, 2.0)
)

// Open01 返回 (0,1] 内的均匀浮点数。
//
// 实现为位级精确的构造：读取 8 字节，按小端序解释为 uint64，
// 保留低 52 位作为尾数，强制符号位为 0、偏置指数为 1023，
// 得到 [1.0, 2.0) 内的 double，再减去 1.0。
//
// 这样结果的尾数低位恰好是输入的随机位，既不会产生次正规数，
// 也没有边界偏差。全零尾数产出恰好 0.0，全一尾数产出 1-2^-52；
// 下游的 Gaussian 依赖这一精确位行为，不要改写为其他均匀算法。
func (s *Source) Open01(reason string) float64 {
	mustReason(reason)
	u := binary.LittleEndian.Uint64(s.bytes(8, "open01: "+reason))
	return math.Float64frombits(u&fracMask|expOne) - 1
}

// Gaussian 返回均值 mean、标准差 stdDev 的正态偏差（Marsaglia 极坐标法）。
//
// 极坐标法一次产出两个独立偏差：第二个以未缩放形式暂存为备用，
// 由下一次 Gaussian 调用消费（消费时才按该次调用的 mean/stdDev 缩放），
// 消费后立即清空，绝不复用。
//
// 拒绝循环在 s >= 1 时整体重抽 v1、v2；循环退出后若 s == 0
// （两个 Open01 恰好都是 0.5），直接返回 mean，不计算 log/sqrt
// 变换（log(0) 未定义），也不暂存备用偏差。
func (s *Source) Gaussian(mean, stdDev float64, reason string) float64 {
	mustReason(reason)

	s.mu.Lock()
	if s.hasSpare {
		v := s.spare
		s.hasSpare = false
		s.mu.Unlock()
		return mean + stdDev*v
	}
	s.mu.Unlock()

	var v1, v2, sum float64
	for {
		v1 = 2*s.Open01("gaussian: "+reason) - 1
		v2 = 2*s.Open01("gaussian: "+reason) - 1
		sum = v1*v1 + v2*v2
		if sum < 1 {
			break
		}
	}
	if sum == 0 {
		return mean
	}

	factor := math.Sqrt(-2 * math.Log(sum) / sum)

	s.mu.Lock()
	s.spare = v2 * factor
	s.hasSpare = true
	s.mu.Unlock()

	return mean + stdDev*v1*factor
}

// Bool 返回均匀布尔值。
func (s *Source) Bool(reason string) bool {
	mustReason(reason)
	return s.Uint32N(2, "bool: "+reason) != 0
}

// samplerFor 查找或懒构造 key 对应的采样表。
//
// 并发下同一 key 可能重复建表，后写覆盖先写；两个实例统计等价，
// 不影响正确性，因此不额外加锁串行化建表。
func (s *Source) samplerFor(key any, weights []float64) (*xalias.Sampler, error) {
	if smp, ok := s.samplers.Get(key); ok {
		return smp, nil
	}
	smp, err := xalias.New(weights)
	if err != nil {
		return nil, err
	}
	s.samplers.Add(key, smp)
	return smp, nil
}
