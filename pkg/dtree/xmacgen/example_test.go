package xmacgen_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/omeyang/dtkit/pkg/dtree/xmacgen"
	"github.com/omeyang/dtkit/pkg/dtree/xnode"
)

func ExampleGenerator_Generate() {
	root := xnode.NewNode("").SetString("serial-number", "5")
	g, err := xmacgen.New(root,
		xmacgen.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	ctx := context.Background()
	fmt.Println(g.Generate(ctx, 0))
	fmt.Println(g.Generate(ctx, 1))
	fmt.Printf("%012X\n", g.ReversedValue(ctx, 1))

	// Output:
	// 00:1e:fb:f8:00:0b
	// 00:1e:fb:f8:00:0c
	// 0C00F8FB1E00
}
