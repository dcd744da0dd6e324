package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/logging"
	"github.com/dshills/lineedit/internal/session"
)

// DefaultTimeout bounds a single Run when no timeout is configured.
const DefaultTimeout = config.DefaultScriptTimeout

// Runner owns a sandboxed Lua state bound to one session.
//
// gopher-lua states are not goroutine-safe; Runner serializes runs.
type Runner struct {
	mu     sync.Mutex
	L      *lua.LState
	sess   *session.Session
	fs     afero.Fs
	out    io.Writer
	log    zerolog.Logger
	limit  time.Duration
	closed bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the time limit for each run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.limit = d
		}
	}
}

// WithOutput sets where print writes. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithFS sets the file system RunFile reads scripts from.
func WithFS(fs afero.Fs) Option {
	return func(r *Runner) {
		r.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// New creates a runner for s.
func New(s *session.Session, opts ...Option) *Runner {
	r := &Runner{
		sess:  s,
		fs:    afero.NewOsFs(),
		out:   os.Stdout,
		log:   zerolog.Nop(),
		limit: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = logging.WithComponent(r.log, "script")

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.installPrint()
	newEditorModule(s).register(r.L)

	return r
}

// openSafeLibraries opens the base, table, string, and math libraries and
// strips the base functions that load code from outside the script.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// installPrint redirects print to the runner's output.
func (r *Runner) installPrint() {
	r.L.SetGlobal("print", r.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(r.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// Run executes src.
func (r *Runner) Run(ctx context.Context, src string) error {
	return r.run(ctx, "<script>", strings.NewReader(src))
}

// RunFile executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	f, err := r.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	return r.run(ctx, path, f)
}

func (r *Runner) run(ctx context.Context, name string, src io.Reader) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}

	if r.limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.limit)
		defer cancel()
	}

	fn, err := r.L.Load(src, name)
	if err != nil {
		return fmt.Errorf("compile %s: %w", name, err)
	}

	start := time.Now()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("run %s: lua panic: %v", name, p)
		}
	}()

	r.L.Push(fn)
	err = r.L.PCall(0, lua.MultRet, nil)
	r.L.SetTop(0)

	elapsed := time.Since(start)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			r.log.Warn().Str("script", name).Dur("elapsed", elapsed).Msg("timeout")
			return fmt.Errorf("run %s: %w", name, ErrScriptTimeout)
		case ctx.Err() != nil:
			return fmt.Errorf("run %s: %w", name, ctx.Err())
		}
		return fmt.Errorf("run %s: %w", name, err)
	}

	r.log.Debug().Str("script", name).Dur("elapsed", elapsed).Msg("ran")
	return nil
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
