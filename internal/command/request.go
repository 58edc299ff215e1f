package command

import (
	"context"

	"github.com/glo0ml34f/fauxterm/internal/session"
)

// JSONFetcher fetches a URL and returns its JSON body pretty printed.
type JSONFetcher interface {
	GetJSON(ctx context.Context, rawURL string) (string, error)
}

// Request fetches an arbitrary URL and prints the JSON response.
type Request struct {
	Fetcher JSONFetcher
}

func (r *Request) Info() Info {
	return Info{
		Name:   "request",
		Usage:  "request [url]",
		Desc:   "send a GET request to the URL and print the JSON response",
		Params: []Param{{Name: "url", Desc: "absolute URL returning JSON"}},
		Remote: true,
	}
}

func (r *Request) Execute(ctx *Context) ([]session.Line, error) {
	if len(ctx.Args) == 0 {
		return []session.Line{session.Text("Please enter a URL.")}, nil
	}
	body, err := r.Fetcher.GetJSON(ctx, ctx.Args[0])
	if err != nil {
		return nil, requestFailure(err)
	}
	return []session.Line{{Kind: session.KindJSON, Text: body}}, nil
}

func requestFailure(err error) *Failure {
	return &Failure{Msg: "Request error: " + err.Error(), Err: err}
}
