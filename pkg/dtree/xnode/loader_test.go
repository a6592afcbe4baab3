package xnode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
serial-number: "229"
soc:
  ethernet@0:
    phy-mode: rgmii-id
    mac-address: "00:11:22:33:44:55"
    trio-mac-idx: 0
  ethernet@1:
    phy-connection-type: sgmii
    local-mac-address: "000000000000"
    address: "aa-bb-cc-dd-ee-ff"
`

func TestLoadBytes_YAML(t *testing.T) {
	t.Parallel()

	tree, err := LoadBytes([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	root := tree.Root()
	serial, ok := root.String("serial-number")
	require.True(t, ok)
	assert.Equal(t, "229", serial)

	eth0, ok := tree.Find("/soc/ethernet@0")
	require.True(t, ok)

	mode, ok := eth0.String("phy-mode")
	require.True(t, ok)
	assert.Equal(t, "rgmii-id", mode)

	mac, ok := eth0.Bytes("mac-address")
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, mac)

	idx, ok := eth0.U32("trio-mac-idx")
	require.True(t, ok)
	assert.Equal(t, uint32(0), idx)

	eth1, ok := tree.Find("/soc/ethernet@1")
	require.True(t, ok)

	// 全零地址也要原样进树，由上层解析器拒绝
	zero, ok := eth1.Bytes("local-mac-address")
	require.True(t, ok)
	assert.Equal(t, make([]byte, 6), zero)

	legacy, ok := eth1.Bytes("address")
	require.True(t, ok)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, legacy)
}

func TestLoadBytes_JSON(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"serial-number": "5",
		"ethernet@0": {
			"phy-mode": "MII",
			"trio-mac-idx": 1,
			"nvmem-mac-address": [170, 187, 204, 221, 238, 255]
		}
	}`)

	tree, err := LoadBytes(data, FormatJSON)
	require.NoError(t, err)

	eth0, ok := tree.Find("/ethernet@0")
	require.True(t, ok)

	idx, ok := eth0.U32("trio-mac-idx")
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)

	mac, ok := eth0.Bytes("nvmem-mac-address")
	require.True(t, ok)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, mac)
}

func TestLoadBytes_AddressHexFallback(t *testing.T) {
	t.Parallel()

	// 非 MAC 格式的地址串回退为十六进制字节：允许非 6 字节（遗留数据）
	tree, err := LoadBytes([]byte(`{"eth": {"mac-address": "0x0011"}}`), FormatJSON)
	require.NoError(t, err)

	n, ok := tree.Find("/eth")
	require.True(t, ok)
	b, ok := n.Bytes("mac-address")
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x11}, b)
}

func TestLoadBytes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  Format
		wantErr error
	}{
		{"bad_format", "{}", Format("toml"), ErrUnsupportedFormat},
		{"bad_yaml", "foo: [unclosed", FormatYAML, ErrLoadFailed},
		{"u32_out_of_range", `{"eth": {"trio-mac-idx": 4294967296}}`, FormatJSON, ErrBadProperty},
		{"negative", `{"eth": {"trio-mac-idx": -1}}`, FormatJSON, ErrBadProperty},
		{"bad_address", `{"eth": {"mac-address": "hello world"}}`, FormatJSON, ErrBadProperty},
		{"bad_byte_list", `{"eth": {"mac-address": [1, 999]}}`, FormatJSON, ErrBadProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.data), tt.format)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadBytes_Empty(t *testing.T) {
	t.Parallel()

	tree, err := LoadBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, tree.Root().Children())
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	tree, err := Load(path)
	require.NoError(t, err)
	_, ok := tree.Find("/soc/ethernet@0")
	assert.True(t, ok)

	t.Run("empty_path", func(t *testing.T) {
		_, err := Load("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("unknown_extension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "board.toml"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, ErrLoadFailed)
	})
}
