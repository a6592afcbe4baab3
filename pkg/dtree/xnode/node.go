package xnode

import (
	"encoding/binary"
	"sort"
	"strings"
)

// Node 是硬件描述树节点的只读视图。
//
// 所有属性访问器返回 (value, ok)，ok 为 false 表示属性不存在。
// 实现必须在构建完成后保持不可变，保证并发读取安全。
type Node interface {
	// Name 返回节点名（根节点为空字符串）。
	Name() string

	// Path 返回节点的绝对路径（根节点为 "/"）。
	Path() string

	// Bytes 返回原始字节属性。
	Bytes(prop string) ([]byte, bool)

	// String 返回字符串属性。
	// 按扁平树约定去除结尾 NUL；无 NUL 的历史数据原样返回。
	String(prop string) (string, bool)

	// U32 返回 32 位无符号整数属性（4 字节大端单元）。
	// 属性存在但长度不是 4 字节时视为不存在。
	U32(prop string) (uint32, bool)

	// Child 按名字查找直接子节点。
	Child(name string) (Node, bool)

	// Children 返回全部直接子节点（按名字排序）。
	Children() []Node
}

// MemNode 是 Node 的内存实现。
// 通过 [NewNode] 创建、Set*/AddChild 填充；挂入 [NewTree] 后不应再修改。
type MemNode struct {
	name     string
	path     string
	props    map[string][]byte
	children map[string]*MemNode
}

var _ Node = (*MemNode)(nil)

// NewNode 创建内存节点。根节点名应为空字符串。
func NewNode(name string) *MemNode {
	return &MemNode{
		name:     name,
		props:    make(map[string][]byte),
		children: make(map[string]*MemNode),
	}
}

// SetBytes 设置原始字节属性。返回节点自身以支持链式调用。
// v 被复制存储，调用方可复用缓冲区。
func (n *MemNode) SetBytes(prop string, v []byte) *MemNode {
	b := make([]byte, len(v))
	copy(b, v)
	n.props[prop] = b
	return n
}

// SetString 设置字符串属性（按扁平树约定追加结尾 NUL）。
func (n *MemNode) SetString(prop, v string) *MemNode {
	b := make([]byte, len(v)+1)
	copy(b, v)
	n.props[prop] = b
	return n
}

// SetU32 设置 32 位无符号整数属性（4 字节大端单元）。
func (n *MemNode) SetU32(prop string, v uint32) *MemNode {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	n.props[prop] = b
	return n
}

// AddChild 挂接子节点。同名子节点会被替换。
func (n *MemNode) AddChild(child *MemNode) *MemNode {
	n.children[child.name] = child
	return n
}

// Name 实现 [Node]。
func (n *MemNode) Name() string { return n.name }

// Path 实现 [Node]。未挂入树前返回空字符串。
func (n *MemNode) Path() string { return n.path }

// Bytes 实现 [Node]。返回内部切片，调用方不得修改。
func (n *MemNode) Bytes(prop string) ([]byte, bool) {
	b, ok := n.props[prop]
	return b, ok
}

// String 实现 [Node]。
func (n *MemNode) String(prop string) (string, bool) {
	b, ok := n.props[prop]
	if !ok {
		return "", false
	}
	// 截断到首个 NUL；无 NUL 时原样返回
	if i := indexNul(b); i >= 0 {
		return string(b[:i]), true
	}
	return string(b), true
}

// U32 实现 [Node]。
func (n *MemNode) U32(prop string) (uint32, bool) {
	b, ok := n.props[prop]
	if !ok || len(b) != 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

// Child 实现 [Node]。
func (n *MemNode) Child(name string) (Node, bool) {
	c, ok := n.children[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Children 实现 [Node]。
func (n *MemNode) Children() []Node {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Node, 0, len(names))
	for _, name := range names {
		out = append(out, n.children[name])
	}
	return out
}

func indexNul(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}

// Tree 持有一棵构建完成的硬件描述树。
type Tree struct {
	root *MemNode
}

// NewTree 以 root 为根构建树，并为所有节点分配绝对路径。
// 构建完成后整棵树不可变。
func NewTree(root *MemNode) *Tree {
	root.path = "/"
	assignPaths(root)
	return &Tree{root: root}
}

func assignPaths(n *MemNode) {
	prefix := n.path
	if prefix != "/" {
		prefix += "/"
	}
	for _, c := range n.children {
		c.path = prefix + c.name
		assignPaths(c)
	}
}

// Root 返回根节点。
func (t *Tree) Root() Node { return t.root }

// Find 按绝对路径查找节点（"/" 表示根）。
func (t *Tree) Find(path string) (Node, bool) {
	if path == "" {
		return nil, false
	}
	if path == "/" {
		return t.root, true
	}
	cur := t.root
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		next, ok := cur.children[part]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
