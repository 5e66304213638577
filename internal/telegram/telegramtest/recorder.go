// Package telegramtest provides an in-memory telegram.Caller for tests.
package telegramtest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/edgard/restobot/internal/telegram"
)

// Call is one recorded Bot API call.
type Call struct {
	Token  string
	Method string
	Params telegram.Params
}

// Responder produces the result of a call.
type Responder func(params telegram.Params) (json.RawMessage, error)

// Recorder records calls and answers them from per-method responders.
// Methods without a responder return true.
type Recorder struct {
	mu         sync.Mutex
	calls      []Call
	responders map[string]Responder
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{responders: make(map[string]Responder)}
}

// On sets the responder for method.
func (r *Recorder) On(method string, fn Responder) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responders[method] = fn
	return r
}

// Result makes method return raw JSON.
func (r *Recorder) Result(method, raw string) *Recorder {
	return r.On(method, func(telegram.Params) (json.RawMessage, error) {
		return json.RawMessage(raw), nil
	})
}

// Fail makes method return err.
func (r *Recorder) Fail(method string, err error) *Recorder {
	return r.On(method, func(telegram.Params) (json.RawMessage, error) {
		return nil, err
	})
}

// Factory returns a telegram.Factory whose clients record into r.
func (r *Recorder) Factory() telegram.Factory {
	return func(token string) *telegram.Client {
		return telegram.NewClient(&boundCaller{token: token, rec: r})
	}
}

// Client returns a client bound to token.
func (r *Recorder) Client(token string) *telegram.Client {
	return r.Factory()(token)
}

// Calls returns a copy of all recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Methods returns the recorded method names in call order.
func (r *Recorder) Methods() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Method
	}
	return out
}

// CallsTo returns the recorded calls of method.
func (r *Recorder) CallsTo(method string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

type boundCaller struct {
	token string
	rec   *Recorder
}

func (b *boundCaller) Call(_ context.Context, method string, params telegram.Params) (json.RawMessage, error) {
	r := b.rec
	r.mu.Lock()
	r.calls = append(r.calls, Call{Token: b.token, Method: method, Params: params})
	fn := r.responders[method]
	r.mu.Unlock()

	if fn == nil {
		return json.RawMessage(`true`), nil
	}
	return fn(params)
}
