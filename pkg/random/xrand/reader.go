package xrand

import "io"

// byteReader 将 Source 适配为 io.Reader。
type byteReader struct {
	s      *Source
	reason string
}

// Reader 返回以固定 reason 读取本随机流的 io.Reader。
//
// 适配标准库与第三方生态中接受 io.Reader 熵源的 API，
// 如 uuid.NewRandomFromReader。Read 永不返回错误：
// 底层字节源不可用时会 panic（见 ByteFunc 契约）。
func (s *Source) Reader(reason string) io.Reader {
	mustReason(reason)
	return &byteReader{s: s, reason: reason}
}

func (r *byteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	copy(p, r.s.Bytes(len(p), r.reason))
	return len(p), nil
}
