package xaudit

import "errors"

// ErrNilByteFunc 表示被包装的字节源为 nil
var ErrNilByteFunc = errors.New("xaudit: byte func must not be nil")
