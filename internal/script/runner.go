// Package script drives a block from a Lua script.
//
// Scripts load the "interm" module:
//
//	local interm = require("interm")
//	for i = 0, interm.lines() - 1 do
//	  interm.update(i, "line " .. i .. ": done", true)
//	  interm.sleep(50)
//	end
//	interm.clear_all()
package script

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dpouris/interm"
	"github.com/dpouris/interm/internal/workload"
)

// Runner executes Lua scripts against a shared block.
type Runner struct {
	shared *workload.Shared
	logger *slog.Logger
}

// NewRunner binds a runner to shared.
func NewRunner(shared *workload.Shared, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{shared: shared, logger: logger}
}

// RunFile executes the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	return r.run(ctx, func(state *lua.LState) error {
		return state.DoFile(path)
	}, path)
}

// RunString executes source.
func (r *Runner) RunString(ctx context.Context, source string) error {
	return r.run(ctx, func(state *lua.LState) error {
		return state.DoString(source)
	}, "<string>")
}

func (r *Runner) run(ctx context.Context, exec func(*lua.LState) error, name string) error {
	state := lua.NewState(lua.Options{SkipOpenLibs: false})
	defer state.Close()
	state.SetContext(ctx)
	r.preloadAPI(ctx, state)

	if err := exec(state); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

func (r *Runner) preloadAPI(ctx context.Context, state *lua.LState) {
	module := state.NewTable()
	state.SetField(module, "lines", state.NewFunction(func(s *lua.LState) int {
		s.Push(lua.LNumber(len(r.shared.Slots())))
		return 1
	}))
	state.SetField(module, "content", state.NewFunction(func(s *lua.LState) int {
		idx := s.CheckInt(1)
		slots := r.shared.Slots()
		if idx < 0 || idx >= len(slots) {
			s.RaiseError("%v", fmt.Errorf("%w: %d", interm.ErrIndexNotFound, idx))
			return 0
		}
		s.Push(lua.LString(slots[idx].Content()))
		return 1
	}))
	state.SetField(module, "update", state.NewFunction(func(s *lua.LState) int {
		idx := s.CheckInt(1)
		text := s.CheckString(2)
		clearFirst := s.OptBool(3, true)
		slots := r.shared.Slots()
		if idx < 0 || idx >= len(slots) {
			s.RaiseError("%v", fmt.Errorf("%w: %d", interm.ErrIndexNotFound, idx))
			return 0
		}
		r.check(s, "update", r.shared.Update(slots[idx], text, clearFirst))
		return 0
	}))
	state.SetField(module, "move_to", state.NewFunction(func(s *lua.LState) int {
		idx := s.CheckInt(1)
		r.check(s, "move_to", r.shared.Do(func(b *interm.Block) error {
			return b.GotoIndex(idx)
		}))
		return 0
	}))
	state.SetField(module, "clear_line", state.NewFunction(func(s *lua.LState) int {
		r.check(s, "clear_line", r.shared.Do(func(b *interm.Block) error {
			return b.ClearLine()
		}))
		return 0
	}))
	state.SetField(module, "clear_all", state.NewFunction(func(s *lua.LState) int {
		r.check(s, "clear_all", r.shared.Do(func(b *interm.Block) error {
			return b.ClearAll()
		}))
		return 0
	}))
	state.SetField(module, "sleep", state.NewFunction(func(s *lua.LState) int {
		ms := s.CheckInt(1)
		if ms <= 0 {
			return 0
		}
		timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.RaiseError("%v", ctx.Err())
		case <-timer.C:
		}
		return 0
	}))
	state.SetField(module, "log", state.NewFunction(func(s *lua.LState) int {
		r.logger.Info(s.CheckString(1))
		return 0
	}))

	state.PreloadModule("interm", func(s *lua.LState) int {
		s.Push(module)
		return 1
	})
}

func (r *Runner) check(s *lua.LState, op string, err error) {
	if err == nil {
		return
	}
	r.logger.Debug("script call failed", "op", op, "err", err)
	s.RaiseError("%s: %v", op, err)
}
