package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/go-telegram/bot/models"
)

// Caller executes one Bot API method. Transport is the production implementation.
type Caller interface {
	Call(ctx context.Context, method string, params Params) (json.RawMessage, error)
}

// Client exposes the Bot API as typed methods over a Caller.
// A Client is bound to one token and is cheap to build per request.
type Client struct {
	caller Caller
}

// NewClient wraps caller.
func NewClient(caller Caller) *Client {
	return &Client{caller: caller}
}

// New builds a Client with an HTTP transport bound to token.
func New(token string, opts ...TransportOption) *Client {
	return NewClient(NewTransport(token, opts...))
}

// Factory builds a Client for a bot token.
type Factory func(token string) *Client

// NewFactory returns a Factory that applies opts to every transport.
func NewFactory(opts ...TransportOption) Factory {
	return func(token string) *Client {
		return New(token, opts...)
	}
}

var tokenPattern = regexp.MustCompile(`^[0-9]{5,}:[A-Za-z0-9_-]{30,}$`)

// ValidateTokenFormat checks the "<bot id>:<secret>" shape without calling Telegram.
func ValidateTokenFormat(token string) error {
	if token == "" {
		return &InvalidTokenError{Reason: "token is empty"}
	}
	if !tokenPattern.MatchString(token) {
		return &InvalidTokenError{Reason: "token does not look like <bot id>:<secret>"}
	}
	return nil
}

// Do calls any Bot API method after checking its required parameters.
func (c *Client) Do(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	if err := checkRequired(method, params); err != nil {
		return nil, err
	}
	return c.caller.Call(ctx, method, params)
}

func checkRequired(method string, params Params) error {
	for _, name := range requiredParams[method] {
		v, ok := params[name]
		if !ok || v == nil {
			return &MissingParameterError{Method: method, Param: name}
		}
		if s, isString := v.(string); isString && s == "" {
			return &MissingParameterError{Method: method, Param: name}
		}
	}
	return nil
}

func call[T any](ctx context.Context, c *Client, method string, params Params) (T, error) {
	var out T
	raw, err := c.Do(ctx, method, params)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodingError{Method: method, StatusCode: 200, Err: fmt.Errorf("unexpected result: %w", err)}
	}
	return out, nil
}

func (c *Client) message(ctx context.Context, method string, params Params) (*models.Message, error) {
	return call[*models.Message](ctx, c, method, params)
}

func (c *Client) boolean(ctx context.Context, method string, params Params) (bool, error) {
	return call[bool](ctx, c, method, params)
}
