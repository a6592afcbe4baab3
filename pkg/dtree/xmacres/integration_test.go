package xmacres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/dtkit/pkg/dtree/xmacres"
	"github.com/omeyang/dtkit/pkg/dtree/xnode"
	"github.com/omeyang/dtkit/pkg/dtree/xnvmem"
)

// 完整回退链：树里没有任何地址属性，地址最终来自 nvmem 单元。
func TestResolve_NVMemEndToEnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tree, err := xnode.LoadBytes([]byte(`
soc:
  ethernet@0:
    phy-mode: rgmii
`), xnode.FormatYAML)
	require.NoError(t, err)

	store, err := xnvmem.FromBytes([]byte(`{"ethernet@0": "02:00:00:00:00:01"}`), xnvmem.FormatJSON)
	require.NoError(t, err)

	resolver := xmacres.New(
		xmacres.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		xmacres.WithDeviceLookup(xnvmem.StaticDevices("ethernet@0")),
		xmacres.WithStorage(store),
	)

	node, ok := tree.Find("/soc/ethernet@0")
	require.True(t, ok)

	addr, err := resolver.Resolve(ctx, node)
	require.NoError(t, err)
	assert.Equal(t, "02:00:00:00:00:01", addr.String())

	t.Run("cell_missing_error_propagates", func(t *testing.T) {
		r := xmacres.New(
			xmacres.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
			xmacres.WithDeviceLookup(xnvmem.StaticDevices("ethernet@0")),
			xmacres.WithStorage(xnvmem.NewStore()),
		)
		_, err := r.Resolve(ctx, node)
		assert.ErrorIs(t, err, xnvmem.ErrCellNotFound)
	})
}
