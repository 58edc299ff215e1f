package command

import (
	"context"
	"fmt"

	"github.com/glo0ml34f/fauxterm/internal/session"
)

// Param documents one argument of a command.
type Param struct {
	Name string
	Desc string
}

// Info describes a command for help output and completion.
type Info struct {
	Name   string
	Usage  string
	Desc   string
	Params []Param
	// Remote executors perform network I/O and run off the input loop.
	Remote bool
}

// Context is what an executor sees while running.
type Context struct {
	context.Context
	Session *session.Session
	Args    []string
}

// Executor performs one command.
type Executor interface {
	Info() Info
	Execute(ctx *Context) ([]session.Line, error)
}

// Registry maps command names to executors, keeping registration order.
type Registry struct {
	commands map[string]Executor
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Executor)}
}

// Register adds e under its name. It panics if the name already exists.
func (r *Registry) Register(e Executor) {
	name := e.Info().Name
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("command %s already registered", name))
	}
	r.commands[name] = e
	r.order = append(r.order, name)
}

// Lookup returns the executor for name.
func (r *Registry) Lookup(name string) (Executor, bool) {
	e, ok := r.commands[name]
	return e, ok
}

// Infos returns command descriptions in registration order.
func (r *Registry) Infos() []Info {
	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.commands[name].Info())
	}
	return infos
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
