package xnode

import (
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/dtkit/pkg/util/xmac"
)

// Format 定义描述文件格式。
type Format string

// 支持的描述文件格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Load 从文件加载硬件描述树。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (*Tree, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载硬件描述树。
// 需要显式指定格式，适用于内嵌描述等场景。
// 空数据生成只有根节点的空树。
func LoadBytes(data []byte, format Format) (*Tree, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = kyaml.Parser()
	case FormatJSON:
		parser = kjson.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	root := NewNode("")
	if len(data) > 0 {
		k := koanf.New("/")
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		if err := fillNode(root, k.Raw()); err != nil {
			return nil, err
		}
	}
	return NewTree(root), nil
}

// detectFormat 根据文件扩展名检测格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// fillNode 将解析出的嵌套映射填充为节点：
// 嵌套映射成为子节点，标量成为属性。
func fillNode(n *MemNode, m map[string]any) error {
	for key, val := range m {
		switch v := val.(type) {
		case map[string]any:
			child := NewNode(key)
			if err := fillNode(child, v); err != nil {
				return err
			}
			n.AddChild(child)
		case string:
			if err := setStringProp(n, key, v); err != nil {
				return err
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float64:
			u, err := toU32(v)
			if err != nil {
				return fmt.Errorf("%s %q: %w", errPrefix(n), key, err)
			}
			n.SetU32(key, u)
		case []any:
			b, err := toBytes(v)
			if err != nil {
				return fmt.Errorf("%s %q: %w", errPrefix(n), key, err)
			}
			n.SetBytes(key, b)
		case bool:
			// 存在性属性：true 为空属性，false 等价于省略
			if v {
				n.SetBytes(key, nil)
			}
		case nil:
			n.SetBytes(key, nil)
		default:
			return fmt.Errorf("%s %q: %w: %T", errPrefix(n), key, ErrBadProperty, val)
		}
	}
	return nil
}

// setStringProp 存储字符串属性。
// 键名为 "address" 或以 "-address" 结尾时按地址字节解释：
// 先按 MAC 地址格式解析，失败则按十六进制字节串解析
// （允许非 6 字节，便于描述遗留数据）。
func setStringProp(n *MemNode, key, v string) error {
	if key == "address" || strings.HasSuffix(key, "-address") {
		if addr, err := xmac.Parse(v); err == nil {
			b := addr.Bytes()
			n.SetBytes(key, b[:])
			return nil
		}
		s := strings.TrimPrefix(strings.TrimSpace(v), "0x")
		b, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("%s %q: %w: %q", errPrefix(n), key, ErrBadProperty, v)
		}
		n.SetBytes(key, b)
		return nil
	}
	n.SetString(key, v)
	return nil
}

func toU32(v any) (uint32, error) {
	var i int64
	switch x := v.(type) {
	case int:
		i = int64(x)
	case int8:
		i = int64(x)
	case int16:
		i = int64(x)
	case int32:
		i = int64(x)
	case int64:
		i = x
	case uint:
		if uint64(x) > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d", ErrBadProperty, x)
		}
		return uint32(x), nil
	case uint8:
		return uint32(x), nil
	case uint16:
		return uint32(x), nil
	case uint32:
		return x, nil
	case uint64:
		if x > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d", ErrBadProperty, x)
		}
		return uint32(x), nil
	case float64:
		// JSON 数字统一为 float64，仅接受整数值
		if x != math.Trunc(x) || x < 0 || x > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %v", ErrBadProperty, x)
		}
		return uint32(x), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrBadProperty, v)
	}
	if i < 0 || i > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrBadProperty, i)
	}
	return uint32(i), nil
}

func toBytes(items []any) ([]byte, error) {
	b := make([]byte, 0, len(items))
	for _, item := range items {
		u, err := toU32(item)
		if err != nil || u > math.MaxUint8 {
			return nil, fmt.Errorf("%w: byte list element %v", ErrBadProperty, item)
		}
		b = append(b, byte(u))
	}
	return b, nil
}

func errPrefix(n *MemNode) string {
	if n.name == "" {
		return "xnode: root property"
	}
	return fmt.Sprintf("xnode: node %q property", n.name)
}
