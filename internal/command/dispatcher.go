package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/glo0ml34f/fauxterm/internal/session"
)

const maxEchoLen = 70

// Result is the outcome of one task: the lines it appended and the executor
// error, if any. Err is already rendered as an error line in Lines.
type Result struct {
	Lines []session.Line
	Err   error
}

// Task tracks one dispatched command.
type Task struct {
	ID   string
	Name string
	Args []string

	done   chan struct{}
	result Result
}

func newTask(name string, args []string) *Task {
	return &Task{ID: uuid.NewString(), Name: name, Args: args, done: make(chan struct{})}
}

func (t *Task) finish(r Result) {
	t.result = r
	close(t.done)
}

// Done is closed once the task's output has been appended.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finishes and returns its result.
func (t *Task) Wait() Result {
	<-t.done
	return t.result
}

// Dispatcher runs input lines against a registry for one session.
type Dispatcher struct {
	ctx     context.Context
	session *session.Session
	reg     *Registry
	log     logrus.FieldLogger
	wg      sync.WaitGroup
}

// NewDispatcher binds a registry to a session. ctx bounds all remote tasks.
func NewDispatcher(ctx context.Context, s *session.Session, reg *Registry, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Dispatcher{
		ctx:     ctx,
		session: s,
		reg:     reg,
		log:     log.WithField("session", s.ID),
	}
}

// Registry returns the dispatcher's registry.
func (d *Dispatcher) Registry() *Registry { return d.reg }

// Parse splits a line into a lowercased command name and its arguments.
// ok is false for blank lines.
func Parse(line string) (name string, args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// Echo returns the prompt line shown for a submitted command.
func Echo(prompt, line string) string {
	if line == "" {
		return prompt
	}
	if r := []rune(line); len(r) > maxEchoLen {
		line = string(r[:maxEchoLen-1]) + "..."
	}
	return prompt + " " + line
}

// Dispatch echoes line to the log and runs the matching executor.
func (d *Dispatcher) Dispatch(line string) *Task {
	line = strings.TrimSpace(line)
	output := d.session.Log
	output.Append(session.Line{Kind: session.KindPrompt, Text: Echo(d.session.Prompt, line)})

	name, args, ok := Parse(line)
	t := newTask(name, args)
	if !ok {
		t.finish(Result{})
		return t
	}
	e, found := d.reg.Lookup(name)
	if !found {
		typed := strings.Fields(line)[0]
		out := session.Error(fmt.Sprintf("unknown command: %s. Type 'help' for the list of commands.", typed))
		output.Append(out)
		d.log.WithField("command", name).Debug("unknown command")
		t.finish(Result{Lines: []session.Line{out}})
		return t
	}
	if !e.Info().Remote {
		d.run(t, e)
		return t
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(t, e)
	}()
	return t
}

// Wait blocks until every remote task started so far has finished.
func (d *Dispatcher) Wait() { d.wg.Wait() }

func (d *Dispatcher) run(t *Task, e Executor) {
	entry := d.log.WithFields(logrus.Fields{"task": t.ID, "command": t.Name})
	start := time.Now()
	lines, err := d.execute(e, &Context{Context: d.ctx, Session: d.session, Args: t.Args})
	if err != nil {
		if cause := errors.Unwrap(err); cause != nil {
			entry = entry.WithField("cause", cause.Error())
		}
		entry.WithError(err).Warn("command failed")
		lines = []session.Line{session.Error(message(err))}
	}
	d.session.Log.Append(lines...)
	entry.WithField("duration", time.Since(start)).Debug("command finished")
	t.finish(Result{Lines: lines, Err: err})
}

func (d *Dispatcher) execute(e Executor, ctx *Context) (lines []session.Line, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return e.Execute(ctx)
}
