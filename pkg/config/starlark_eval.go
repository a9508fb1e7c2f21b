package config

import (
	"context"
	"fmt"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// DefaultGeneratorTimeout bounds a generator script's execution.
const DefaultGeneratorTimeout = 30 * time.Second

// StarlarkGenerator runs grid generator scripts. A script defines
// generate(size) and returns a list of size strings, one per row.
type StarlarkGenerator struct {
	timeout time.Duration
}

// NewStarlarkGenerator creates a generator. A zero timeout uses
// DefaultGeneratorTimeout.
func NewStarlarkGenerator(timeout time.Duration) *StarlarkGenerator {
	if timeout == 0 {
		timeout = DefaultGeneratorTimeout
	}
	return &StarlarkGenerator{
		timeout: timeout,
	}
}

type generateResult struct {
	rows []string
	err  error
}

// Generate executes script and calls its generate function with size.
// The script also sees size as a global.
func (sg *StarlarkGenerator) Generate(ctx context.Context, filename, script string, size int) ([]string, error) {
	evalCtx, cancel := context.WithTimeout(ctx, sg.timeout)
	defer cancel()

	thread := &starlark.Thread{
		Name: "parabolic-generate",
		Print: func(_ *starlark.Thread, msg string) {
			// Suppress print; stdout carries the grid
		},
	}

	resultCh := make(chan generateResult, 1)
	go func() {
		rows, err := sg.generateSync(thread, filename, script, size)
		resultCh <- generateResult{rows: rows, err: err}
	}()

	select {
	case <-evalCtx.Done():
		thread.Cancel(evalCtx.Err().Error())
		<-resultCh
		if ctx.Err() != nil {
			return nil, fmt.Errorf("generator cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("generator timeout after %v", sg.timeout)
	case res := <-resultCh:
		return res.rows, res.err
	}
}

func (sg *StarlarkGenerator) generateSync(thread *starlark.Thread, filename, script string, size int) ([]string, error) {
	sizeVal := starlark.MakeInt(size)
	predeclared := starlark.StringDict{
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
		"size":   sizeVal,
	}

	globals, err := starlark.ExecFile(thread, filename, script, predeclared)
	if err != nil {
		return nil, fmt.Errorf("starlark execution failed: %w", err)
	}

	fn, ok := globals["generate"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s does not define a generate(size) function", filename)
	}

	out, err := starlark.Call(thread, fn, starlark.Tuple{sizeVal}, nil)
	if err != nil {
		return nil, fmt.Errorf("generate(%d) failed: %w", size, err)
	}

	goVal, err := fromStarlarkValue(out)
	if err != nil {
		return nil, fmt.Errorf("generate(%d) result: %w", size, err)
	}

	items, ok := goVal.([]interface{})
	if !ok {
		return nil, fmt.Errorf("generate(%d) must return a list, got %s", size, out.Type())
	}
	if len(items) != size {
		return nil, fmt.Errorf("generate(%d) returned %d rows", size, len(items))
	}

	rows := make([]string, len(items))
	for i, item := range items {
		row, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("generate(%d) row %d is not a string", size, i)
		}
		rows[i] = row
	}
	return rows, nil
}

// fromStarlarkValue converts a Starlark value to a Go value.
func fromStarlarkValue(v starlark.Value) (interface{}, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return nil, fmt.Errorf("integer too large")
		}
		return i, nil
	case starlark.String:
		return string(val), nil
	case *starlark.List:
		return fromIterable(val, val.Len())
	case starlark.Tuple:
		return fromIterable(val, val.Len())
	case *starlarkstruct.Struct:
		dict := make(map[string]interface{})
		for _, name := range val.AttrNames() {
			attr, err := val.Attr(name)
			if err != nil {
				continue
			}
			value, err := fromStarlarkValue(attr)
			if err != nil {
				return nil, err
			}
			dict[name] = value
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported starlark type: %s", v.Type())
	}
}

func fromIterable(seq starlark.Indexable, n int) ([]interface{}, error) {
	list := make([]interface{}, n)
	for i := 0; i < n; i++ {
		item, err := fromStarlarkValue(seq.Index(i))
		if err != nil {
			return nil, err
		}
		list[i] = item
	}
	return list, nil
}
