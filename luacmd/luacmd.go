package luacmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"

	"github.com/keelshell/keel/shell"
)

// ErrClosed is returned when a command set is used after Close.
var ErrClosed = errors.New("luacmd: command set closed")

// scriptCommand is one command declared by a script.
type scriptCommand struct {
	name    string
	summary string
	fn      *lua.LFunction
}

// CommandSet holds a sandboxed Lua state and the commands a script
// declared in it.
//
// gopher-lua states are not goroutine-safe, so every entry into the state
// goes through the mutex; the shell may dispatch from multiple goroutines
// but script commands execute one at a time.
type CommandSet struct {
	mu     sync.Mutex
	state  *lua.LState
	order  []string
	byName map[string]*scriptCommand
	closed bool
}

// Load reads and executes a Lua script file, collecting the commands it
// declares.
func Load(path string) (*CommandSet, error) {
	return loadSource(func(L *lua.LState) error { return L.DoFile(path) })
}

// LoadString executes Lua source held in memory, collecting the commands
// it declares.
func LoadString(src string) (*CommandSet, error) {
	return loadSource(func(L *lua.LState) error { return L.DoString(src) })
}

func loadSource(do func(*lua.LState) error) (*CommandSet, error) {
	cs := &CommandSet{
		state:  newSandboxedState(),
		byName: make(map[string]*scriptCommand),
	}

	cs.state.SetGlobal("command", cs.state.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		summary := L.CheckString(2)
		fn := L.CheckFunction(3)
		if name == "" {
			L.ArgError(1, "command name must not be empty")
			return 0
		}
		if _, dup := cs.byName[name]; dup {
			L.RaiseError("command %q declared twice", name)
			return 0
		}
		cs.byName[name] = &scriptCommand{name: name, summary: summary, fn: fn}
		cs.order = append(cs.order, name)
		return 0
	}))

	if err := do(cs.state); err != nil {
		cs.state.Close()
		return nil, fmt.Errorf("luacmd: load script: %w", err)
	}
	return cs, nil
}

// newSandboxedState builds an interpreter with only the base, table,
// string, and math libraries, and with the load/dofile family removed so
// scripts cannot pull in code from outside their source.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// Names returns the declared command names in declaration order.
func (cs *CommandSet) Names() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.order...)
}

// Commands returns an augmentor declaring the script's commands in the
// shell grammar.
func (cs *CommandSet) Commands() shell.Augmentor {
	return func(root *cobra.Command) {
		cs.mu.Lock()
		defer cs.mu.Unlock()
		for _, name := range cs.order {
			cmd := cs.byName[name]
			root.AddCommand(&cobra.Command{
				Use:   cmd.name,
				Short: cmd.summary,
			})
		}
	}
}

// Handler returns a shell handler that claims the script's commands and
// passes on everything else. The matched command's Lua function is called
// with the positional arguments as a list; a returned string is printed
// to the shell's output.
func (cs *CommandSet) Handler() shell.Handler {
	return func(sh *shell.Shell, m *shell.Match) shell.Result {
		cs.mu.Lock()
		defer cs.mu.Unlock()

		cmd, ok := cs.byName[m.Command()]
		if !ok {
			return shell.Pass()
		}
		if cs.closed {
			return shell.Error(fmt.Errorf("%s: %w", cmd.name, ErrClosed))
		}

		L := cs.state
		args := L.NewTable()
		for _, a := range m.Args() {
			args.Append(lua.LString(a))
		}

		if err := L.CallByParam(lua.P{Fn: cmd.fn, NRet: 1, Protect: true}, args); err != nil {
			return shell.Errorf("%s: %w", cmd.name, err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		if s, ok := ret.(lua.LString); ok {
			fmt.Fprintln(sh.Output(), string(s))
		}
		return shell.Handled()
	}
}

// Close releases the interpreter. Dispatching one of the set's commands
// afterwards yields an error result.
func (cs *CommandSet) Close() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.closed {
		return
	}
	cs.state.Close()
	cs.closed = true
}
