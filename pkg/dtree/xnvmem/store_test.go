package xnvmem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/dtkit/pkg/dtree/xnode"
)

func TestStore_MACAddress(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewStore()
	store.Set("eth0", []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})

	t.Run("hit", func(t *testing.T) {
		b, err := store.MACAddress(ctx, staticDevice{name: "eth0"})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, b)
	})

	t.Run("returns_copy", func(t *testing.T) {
		b, err := store.MACAddress(ctx, staticDevice{name: "eth0"})
		require.NoError(t, err)
		b[0] = 0xff

		again, err := store.MACAddress(ctx, staticDevice{name: "eth0"})
		require.NoError(t, err)
		assert.Equal(t, byte(0x00), again[0])
	})

	t.Run("miss", func(t *testing.T) {
		_, err := store.MACAddress(ctx, staticDevice{name: "eth9"})
		assert.ErrorIs(t, err, ErrCellNotFound)
	})
}

func TestFromBytes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("yaml", func(t *testing.T) {
		store, err := FromBytes([]byte("eth0: \"00:11:22:33:44:55\"\neth1: \"AA-BB-CC-DD-EE-FF\"\n"), FormatYAML)
		require.NoError(t, err)

		b, err := store.MACAddress(ctx, staticDevice{name: "eth1"})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, b)
	})

	t.Run("json", func(t *testing.T) {
		store, err := FromBytes([]byte(`{"eth0": "001122334455"}`), FormatJSON)
		require.NoError(t, err)

		b, err := store.MACAddress(ctx, staticDevice{name: "eth0"})
		require.NoError(t, err)
		assert.Len(t, b, 6)
	})

	t.Run("empty", func(t *testing.T) {
		store, err := FromBytes(nil, FormatYAML)
		require.NoError(t, err)
		_, err = store.MACAddress(ctx, staticDevice{name: "eth0"})
		assert.ErrorIs(t, err, ErrCellNotFound)
	})

	t.Run("bad_cell", func(t *testing.T) {
		_, err := FromBytes([]byte(`{"eth0": "not-a-mac"}`), FormatJSON)
		assert.ErrorIs(t, err, ErrBadCell)
	})

	t.Run("non_string_cell", func(t *testing.T) {
		_, err := FromBytes([]byte(`{"eth0": 42}`), FormatJSON)
		assert.ErrorIs(t, err, ErrBadCell)
	})

	t.Run("bad_format", func(t *testing.T) {
		_, err := FromBytes([]byte("{}"), Format("toml"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cells.yaml")
	require.NoError(t, os.WriteFile(path, []byte("eth0: \"00:11:22:33:44:55\"\n"), 0o600))

	store, err := FromFile(path)
	require.NoError(t, err)

	b, err := store.MACAddress(context.Background(), staticDevice{name: "eth0"})
	require.NoError(t, err)
	assert.Len(t, b, 6)

	t.Run("empty_path", func(t *testing.T) {
		_, err := FromFile("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("unknown_extension", func(t *testing.T) {
		_, err := FromFile(filepath.Join(dir, "cells.ini"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, ErrLoadFailed)
	})
}

func TestStaticDevices_Lookup(t *testing.T) {
	t.Parallel()

	eth0 := xnode.NewNode("ethernet@0")
	tree := xnode.NewTree(xnode.NewNode("").AddChild(eth0))
	node, ok := tree.Find("/ethernet@0")
	require.True(t, ok)

	t.Run("by_name", func(t *testing.T) {
		dev, err := StaticDevices("ethernet@0").Lookup(node)
		require.NoError(t, err)
		assert.Equal(t, "ethernet@0", dev.Name())
		assert.NoError(t, dev.Close())
	})

	t.Run("by_path", func(t *testing.T) {
		dev, err := StaticDevices("/ethernet@0").Lookup(node)
		require.NoError(t, err)
		assert.Equal(t, "ethernet@0", dev.Name())
	})

	t.Run("miss", func(t *testing.T) {
		_, err := StaticDevices("other").Lookup(node)
		assert.ErrorIs(t, err, ErrNoSuchDevice)
	})
}
