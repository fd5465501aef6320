package tools_test

import (
	"context"
	"testing"

	"github.com/effective-security/wayfarer/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	name     string
	lastArgs map[string]string
	result   string
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "a fake tool" }
func (t *fakeTool) Parameters() any     { return nil }

func (t *fakeTool) Call(_ context.Context, args map[string]string) string {
	t.lastArgs = args
	return t.result
}

func Test_Dispatch(t *testing.T) {
	ctx := context.Background()

	echo := &fakeTool{name: "echo", result: "echoed"}
	reg := tools.NewRegistry(echo)

	res := reg.Dispatch(ctx, "echo", map[string]string{"city": "Tokyo"})
	assert.Equal(t, "echoed", res)
	assert.Equal(t, map[string]string{"city": "Tokyo"}, echo.lastArgs)
}

func Test_Dispatch_Undefined(t *testing.T) {
	ctx := context.Background()
	reg := tools.NewRegistry()

	res := reg.Dispatch(ctx, "nonexistent_tool", map[string]string{})
	assert.Equal(t, "Error: Undefined tool 'nonexistent_tool'", res)
}

func Test_Dispatch_EmptyResult(t *testing.T) {
	ctx := context.Background()
	reg := tools.NewRegistry(&fakeTool{name: "void"})

	res := reg.Dispatch(ctx, "void", nil)
	assert.Equal(t, "Error: tool 'void' returned an empty result", res)
}

func Test_Register(t *testing.T) {
	first := &fakeTool{name: "echo", result: "first"}
	second := &fakeTool{name: "echo", result: "second"}

	reg := tools.NewRegistry(first, second)
	require.Len(t, reg.Tools(), 1)
	assert.Equal(t, []string{"echo"}, reg.Names())

	// first registration wins
	res := reg.Dispatch(context.Background(), "echo", nil)
	assert.Equal(t, "first", res)

	reg.Register(&fakeTool{name: "other", result: "ok"})
	assert.Equal(t, []string{"echo", "other"}, reg.Names())
	assert.NotNil(t, reg.Get("other"))
	assert.Nil(t, reg.Get("missing"))
}
