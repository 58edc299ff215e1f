package command

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glo0ml34f/fauxterm/internal/fetch"
	"github.com/glo0ml34f/fauxterm/internal/recipe"
	"github.com/glo0ml34f/fauxterm/internal/session"
	"github.com/glo0ml34f/fauxterm/internal/weather"
)

type fakeWeather struct {
	calls int32
	city  string
	rep   *weather.Report
	err   error
}

func (f *fakeWeather) Current(ctx context.Context, city string) (*weather.Report, error) {
	atomic.AddInt32(&f.calls, 1)
	f.city = city
	return f.rep, f.err
}

// countingServer fails the test if anything reaches it.
func countingServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestDispatcher(t *testing.T, src Sources) (*Dispatcher, *session.Session) {
	t.Helper()
	s := session.New(session.WithPrompt("me@box:$"), session.WithLocation(time.UTC))
	return NewDispatcher(context.Background(), s, Builtin(src), nil), s
}

func realSources(srv *httptest.Server) Sources {
	return Sources{
		Weather: weather.NewClient(srv.URL, "key", srv.Client()),
		Meals:   recipe.NewClient(srv.URL, srv.Client()),
		Fetcher: fetch.NewClient(srv.Client()),
	}
}

func TestParse(t *testing.T) {
	name, args, ok := Parse("  METEO   New   York ")
	if !ok || name != "meteo" || strings.Join(args, "|") != "New|York" {
		t.Fatalf("unexpected parse: %q %q %v", name, args, ok)
	}
	if _, _, ok := Parse("   "); ok {
		t.Fatalf("blank line parsed as command")
	}
}

func TestEchoTruncates(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := Echo("p:$", long)
	if got != "p:$ "+strings.Repeat("x", 69)+"..." {
		t.Fatalf("unexpected echo: %q", got)
	}
	if Echo("p:$", "") != "p:$" {
		t.Fatalf("bare prompt expected")
	}
	if Echo("p:$", strings.Repeat("y", 70)) != "p:$ "+strings.Repeat("y", 70) {
		t.Fatalf("70 characters should not be truncated")
	}
}

func TestDispatchCaseInsensitive(t *testing.T) {
	fw := &fakeWeather{rep: &weather.Report{Location: "Paris", Country: "FR"}}
	d, _ := newTestDispatcher(t, Sources{Weather: fw})

	for _, line := range []string{"METEO paris", "meteo paris", "MeTeO paris"} {
		res := d.Dispatch(line).Wait()
		if res.Err != nil {
			t.Fatalf("%s: %v", line, res.Err)
		}
		if fw.city != "paris" {
			t.Fatalf("%s: city=%q", line, fw.city)
		}
		if len(res.Lines) != 7 {
			t.Fatalf("%s: %d lines", line, len(res.Lines))
		}
	}
	if fw.calls != 3 {
		t.Fatalf("calls=%d", fw.calls)
	}
}

func TestDispatchUnknown(t *testing.T) {
	srv, hits := countingServer(t)
	d, s := newTestDispatcher(t, realSources(srv))

	res := d.Dispatch("FrobNicate now").Wait()
	if len(res.Lines) != 1 {
		t.Fatalf("expected one line, got %v", res.Lines)
	}
	line := res.Lines[0]
	if line.Kind != session.KindError || !strings.Contains(line.Text, "unknown command: FrobNicate.") || !strings.Contains(line.Text, "help") {
		t.Fatalf("unexpected line: %+v", line)
	}
	if got := s.Log.Len(); got != 2 {
		t.Fatalf("log len=%d, want prompt + error", got)
	}
	if *hits != 0 {
		t.Fatalf("unknown command hit the network")
	}
}

func TestDispatchEmptyLine(t *testing.T) {
	d, s := newTestDispatcher(t, Sources{})
	res := d.Dispatch("   ").Wait()
	if len(res.Lines) != 0 || res.Err != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	lines := s.Log.Lines()
	if len(lines) != 1 || lines[0].Kind != session.KindPrompt || lines[0].Text != "me@box:$" {
		t.Fatalf("unexpected log: %+v", lines)
	}
}

func TestDispatchEchoesCommand(t *testing.T) {
	d, s := newTestDispatcher(t, Sources{})
	d.Dispatch("help").Wait()
	first := s.Log.Lines()[0]
	if first.Kind != session.KindPrompt || first.Text != "me@box:$ help" {
		t.Fatalf("unexpected echo: %+v", first)
	}
}

func TestClear(t *testing.T) {
	d, s := newTestDispatcher(t, Sources{})
	for i := 0; i < 20; i++ {
		d.Dispatch("help").Wait()
	}
	if s.Log.Len() == 0 {
		t.Fatalf("log should not be empty before clear")
	}
	d.Dispatch("CLEAR").Wait()
	if s.Log.Len() != 0 {
		t.Fatalf("log not empty after clear: %v", s.Log.Lines())
	}
}

func TestMissingArgumentsSkipNetwork(t *testing.T) {
	srv, hits := countingServer(t)
	d, _ := newTestDispatcher(t, realSources(srv))

	for line, want := range map[string]string{"meteo": "Please enter a city.", "request": "Please enter a URL."} {
		res := d.Dispatch(line).Wait()
		if len(res.Lines) != 1 || res.Lines[0].Text != want {
			t.Fatalf("%s: unexpected lines %v", line, res.Lines)
		}
	}
	if *hits != 0 {
		t.Fatalf("network called %d times", *hits)
	}
}

func TestDateTime(t *testing.T) {
	d, _ := newTestDispatcher(t, Sources{})
	res := d.Dispatch("datetime").Wait()
	if len(res.Lines) != 1 {
		t.Fatalf("expected one line, got %v", res.Lines)
	}
	if _, err := time.Parse(DefaultDateLayout, res.Lines[0].Text); err != nil {
		t.Fatalf("not a date-time: %q: %v", res.Lines[0].Text, err)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	d, _ := newTestDispatcher(t, Sources{})
	res := d.Dispatch("help").Wait()
	names := d.Registry().Names()
	if len(res.Lines) != len(names) {
		t.Fatalf("help has %d lines for %d commands", len(res.Lines), len(names))
	}
	for i, name := range names {
		if !strings.HasPrefix(res.Lines[i].Text, "- "+name) {
			t.Fatalf("line %d=%q, want %s", i, res.Lines[i].Text, name)
		}
	}
}

type panicky struct{}

func (panicky) Info() Info                               { return Info{Name: "boom"} }
func (panicky) Execute(*Context) ([]session.Line, error) { panic("kaboom") }

func TestExecutorPanicRendersError(t *testing.T) {
	r := NewRegistry()
	r.Register(panicky{})
	s := session.New()
	d := NewDispatcher(context.Background(), s, r, nil)
	res := d.Dispatch("boom").Wait()
	if res.Err == nil || len(res.Lines) != 1 || res.Lines[0].Kind != session.KindError {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Clear{})
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on duplicate register")
		}
	}()
	r.Register(Clear{})
}

type gatedWeather struct {
	gates map[string]chan struct{}
}

func (g *gatedWeather) Current(ctx context.Context, city string) (*weather.Report, error) {
	<-g.gates[city]
	return &weather.Report{Location: city}, nil
}

func TestRemoteTasksDoNotBlockAndMayReorder(t *testing.T) {
	gw := &gatedWeather{gates: map[string]chan struct{}{"a": make(chan struct{}), "b": make(chan struct{})}}
	d, s := newTestDispatcher(t, Sources{Weather: gw})

	ta := d.Dispatch("meteo a")
	tb := d.Dispatch("meteo b")
	d.Dispatch("help").Wait()

	close(gw.gates["b"])
	tb.Wait()
	select {
	case <-ta.Done():
		t.Fatalf("task a finished before its response")
	default:
	}
	close(gw.gates["a"])
	d.Wait()

	var locations []string
	for _, l := range s.Log.Lines() {
		if strings.HasPrefix(l.Text, "Location: ") {
			locations = append(locations, l.Text)
		}
	}
	if strings.Join(locations, "|") != "Location: b, |Location: a, " {
		t.Fatalf("unexpected completion order: %v", locations)
	}
}

func TestFailureMessage(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := error(&Failure{Msg: "Error: city not found", Err: cause})
	if message(err) != "Error: city not found" {
		t.Fatalf("message=%q", message(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not unwrapped")
	}
	if message(errors.New("plain")) != "plain" {
		t.Fatalf("plain errors render as is")
	}
}
