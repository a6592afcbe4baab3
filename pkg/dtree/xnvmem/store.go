package xnvmem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/dtkit/pkg/dtree/xmacres"
	"github.com/omeyang/dtkit/pkg/util/xmac"
)

// Format 定义单元文件格式。
type Format string

// 支持的单元文件格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Store 是内存 nvmem 单元表，实现 [xmacres.Storage]。
// 以设备名为键；写入后可并发读取。
type Store struct {
	mu    sync.RWMutex
	cells map[string][]byte
}

var _ xmacres.Storage = (*Store)(nil)

// NewStore 创建空单元表。
func NewStore() *Store {
	return &Store{cells: make(map[string][]byte)}
}

// Set 写入设备的 MAC 单元。mac 被复制存储。
// 同一设备重复写入时覆盖。
func (s *Store) Set(device string, mac []byte) {
	b := make([]byte, len(mac))
	copy(b, mac)
	s.mu.Lock()
	s.cells[device] = b
	s.mu.Unlock()
}

// MACAddress 实现 [xmacres.Storage]。
// 返回单元内容的副本；设备无单元时返回 [ErrCellNotFound]。
func (s *Store) MACAddress(_ context.Context, dev xmacres.Device) ([]byte, error) {
	s.mu.RLock()
	cell, ok := s.cells[dev.Name()]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCellNotFound, dev.Name())
	}
	out := make([]byte, len(cell))
	copy(out, cell)
	return out, nil
}

// FromFile 从文件加载单元表。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func FromFile(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return FromBytes(data, format)
}

// FromBytes 从字节数据加载单元表。
// 数据是设备名到 MAC 地址字符串的平面映射，
// 地址支持 [xmac.Parse] 的全部格式。
func FromBytes(data []byte, format Format) (*Store, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	store := NewStore()
	if len(data) == 0 {
		return store, nil
	}

	// 设备名可能含 "."（如 "soc.eth0"），用 "/" 作层级分隔符避免误拆
	k := koanf.New("/")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	for device, val := range k.Raw() {
		text, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: device %q: %T", ErrBadCell, device, val)
		}
		addr, err := xmac.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: device %q: %w", ErrBadCell, device, err)
		}
		b := addr.Bytes()
		store.Set(device, b[:])
	}
	return store, nil
}
