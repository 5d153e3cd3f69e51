// Package wasmhost runs a simulation engine compiled to WebAssembly inside a
// wazero runtime and exposes it as a handle.Engine.
//
// The module must export its linear memory as "memory" and the functions
// listed in Exports. All values cross the boundary as i32.
package wasmhost

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"glyphgrid/pkg/engine/handle"
)

// Export names
const (
	exportMemory        = "memory"
	exportConstruct     = "construct"
	exportMoveBy        = "move_by"
	exportPosX          = "pos_x"
	exportPosY          = "pos_y"
	exportPrepareRender = "prepare_render"
	exportBuffLen       = "buff_len"
	exportBgPtr         = "bg_rgb_buff_ptr"
	exportFgPtr         = "fg_rgb_buff_ptr"
	exportGlyphPtr      = "glyph_buff_ptr"
)

// Exports lists the functions an engine module must export
var Exports = []string{
	exportConstruct,
	exportMoveBy,
	exportPosX,
	exportPosY,
	exportPrepareRender,
	exportBuffLen,
	exportBgPtr,
	exportFgPtr,
	exportGlyphPtr,
}

// Options configures module instantiation
type Options struct {
	// WASI instantiates wasi_snapshot_preview1 before the module
	WASI bool

	Logger *log.Logger
}

// Engine is a running engine module. It is not safe for concurrent use.
type Engine struct {
	ctx     context.Context
	runtime wazero.Runtime
	module  api.Module
	memory  api.Memory
	fns     map[string]api.Function
	logger  *log.Logger
}

var _ handle.Engine = (*Engine)(nil)

// Load compiles and instantiates wasm, then constructs the game with seed
// and view. ctx is retained for every later call into the module.
func Load(ctx context.Context, wasm []byte, seed uint32, view handle.View, opts Options) (*Engine, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := wazero.NewRuntime(ctx)
	e := &Engine{ctx: ctx, runtime: r, logger: logger, fns: make(map[string]api.Function)}

	if opts.WASI {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
			r.Close(ctx)
			return nil, fmt.Errorf("instantiate wasi: %w", err)
		}
	}

	cfg := wazero.NewModuleConfig().WithName("engine").WithStartFunctions("_initialize")
	mod, err := r.InstantiateWithConfig(ctx, wasm, cfg)
	if err != nil {
		r.Close(ctx)
		return nil, fmt.Errorf("instantiate engine module: %w", err)
	}
	e.module = mod

	if err := e.bind(); err != nil {
		r.Close(ctx)
		return nil, err
	}

	if _, err := e.call(exportConstruct, api.EncodeU32(seed), api.EncodeU32(uint32(view.Width)), api.EncodeU32(uint32(view.Height))); err != nil {
		r.Close(ctx)
		return nil, err
	}

	logger.Debug("engine module loaded", "seed", seed, "view", view, "memory_bytes", e.memory.Size())
	return e, nil
}

// LoadFile is Load for a module on disk
func LoadFile(ctx context.Context, path string, seed uint32, view handle.View, opts Options) (*Engine, error) {
	wasm, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engine module: %w", err)
	}
	return Load(ctx, wasm, seed, view, opts)
}

// Constructor returns a handle.Constructor loading the module at path
func Constructor(ctx context.Context, path string, opts Options) handle.Constructor {
	return func(seed uint32, view handle.View) (handle.Engine, error) {
		return LoadFile(ctx, path, seed, view, opts)
	}
}

func (e *Engine) bind() error {
	e.memory = e.module.ExportedMemory(exportMemory)
	if e.memory == nil {
		return fmt.Errorf("engine module does not export %q", exportMemory)
	}
	for _, name := range Exports {
		fn := e.module.ExportedFunction(name)
		if fn == nil {
			return fmt.Errorf("engine module does not export function %q", name)
		}
		e.fns[name] = fn
	}
	return nil
}

func (e *Engine) call(name string, params ...uint64) (uint64, error) {
	res, err := e.fns[name].Call(e.ctx, params...)
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", name, err)
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0], nil
}

// query calls a read-only export. Failures are logged and read as 0, which
// the view layer then rejects as a protocol violation.
func (e *Engine) query(name string) uint64 {
	v, err := e.call(name)
	if err != nil {
		e.logger.Error("engine query failed", "export", name, "err", err)
		return 0
	}
	return v
}

func (e *Engine) MoveBy(dx, dy int32) error {
	_, err := e.call(exportMoveBy, api.EncodeI32(dx), api.EncodeI32(dy))
	return err
}

func (e *Engine) PosX() int32 { return api.DecodeI32(e.query(exportPosX)) }
func (e *Engine) PosY() int32 { return api.DecodeI32(e.query(exportPosY)) }

func (e *Engine) PrepareRender() error {
	_, err := e.call(exportPrepareRender)
	return err
}

func (e *Engine) BuffLen() int {
	return int(api.DecodeU32(e.query(exportBuffLen)))
}

func (e *Engine) BgRGBBuffPtr() uint32 { return api.DecodeU32(e.query(exportBgPtr)) }
func (e *Engine) FgRGBBuffPtr() uint32 { return api.DecodeU32(e.query(exportFgPtr)) }
func (e *Engine) GlyphBuffPtr() uint32 { return api.DecodeU32(e.query(exportGlyphPtr)) }

// Memory returns a view of the module's whole linear memory. wazero swaps
// the backing slice when the guest grows memory, so the view must be
// fetched again after every call into the module.
func (e *Engine) Memory() []byte {
	b, ok := e.memory.Read(0, e.memory.Size())
	if !ok {
		return nil
	}
	return b
}

// Close releases the runtime and the module
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}
