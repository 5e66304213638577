package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edgard/restobot/internal/metrics"
)

const (
	// DefaultAPIBaseURL is the public Bot API endpoint.
	DefaultAPIBaseURL = "https://api.telegram.org"
	// DefaultConnectTimeout bounds TCP/TLS connection setup.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultRequestTimeout bounds a whole Bot API call.
	DefaultRequestTimeout = 30 * time.Second

	maxResponseBytes = 10 << 20
	redacted         = "<redacted>"
)

// NewHTTPClient returns the HTTP client shared by all bot transports.
func NewHTTPClient(connectTimeout, requestTimeout time.Duration) *http.Client {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	dialer := &net.Dialer{Timeout: connectTimeout, KeepAlive: 30 * time.Second}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = connectTimeout
	return &http.Client{Timeout: requestTimeout, Transport: transport}
}

var defaultHTTPClient = NewHTTPClient(DefaultConnectTimeout, DefaultRequestTimeout)

// Transport performs raw Bot API calls for one bot token.
type Transport struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithBaseURL points the transport at another Bot API server.
func WithBaseURL(baseURL string) TransportOption {
	return func(t *Transport) {
		if baseURL != "" {
			t.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for calls.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *Transport) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithLogger sets the logger used for call logging.
func WithLogger(l *slog.Logger) TransportOption {
	return func(t *Transport) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTransport creates a transport bound to token.
func NewTransport(token string, opts ...TransportOption) *Transport {
	t := &Transport{
		token:      token,
		baseURL:    DefaultAPIBaseURL,
		httpClient: defaultHTTPClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("component", "telegram")
	return t
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
	Parameters  *struct {
		RetryAfter      int   `json:"retry_after"`
		MigrateToChatID int64 `json:"migrate_to_chat_id"`
	} `json:"parameters"`
}

// Call invokes method with params and returns the raw "result" field.
func (t *Transport) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	start := time.Now()
	result, err := t.call(ctx, method, params)
	duration := time.Since(start)

	outcome := metrics.OutcomeOK
	var apiErr *APIError
	switch {
	case err == nil:
	case errors.As(err, &apiErr):
		outcome = metrics.OutcomeAPI
	case errors.As(err, new(*DecodingError)):
		outcome = metrics.OutcomeDecode
	default:
		outcome = metrics.OutcomeNetwork
	}
	metrics.RecordTelegramRequest(method, outcome, duration)

	if err != nil {
		t.logger.WarnContext(ctx, "Telegram API call failed",
			"method", method, "ok", false, "duration", duration, "error", err)
		return nil, err
	}
	t.logger.DebugContext(ctx, "Telegram API call", "method", method, "ok", true, "duration", duration)
	return result, nil
}

func (t *Transport) call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	body, contentType, err := encodeParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s parameters: %w", method, err)
	}

	endpoint := t.baseURL + "/bot" + t.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: t.redact(err)}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: t.redact(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Method: method, Err: t.redact(err)}
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DecodingError{Method: method, StatusCode: resp.StatusCode, Err: err}
	}
	if !envelope.OK {
		apiErr := &APIError{
			Method:      method,
			Code:        envelope.ErrorCode,
			Description: envelope.Description,
		}
		if apiErr.Code == 0 {
			apiErr.Code = resp.StatusCode
		}
		if envelope.Parameters != nil {
			apiErr.RetryAfter = envelope.Parameters.RetryAfter
			apiErr.MigrateToChatID = envelope.Parameters.MigrateToChatID
		}
		return nil, apiErr
	}
	if len(envelope.Result) == 0 {
		return nil, &DecodingError{Method: method, StatusCode: resp.StatusCode, Err: errors.New("missing result")}
	}
	return envelope.Result, nil
}

// redact removes the bot token from errors that embed the request URL.
func (t *Transport) redact(err error) error {
	if t.token == "" {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, t.token, redacted)
		return urlErr
	}
	if strings.Contains(err.Error(), t.token) {
		return errors.New(strings.ReplaceAll(err.Error(), t.token, redacted))
	}
	return err
}

func encodeParams(params Params) (io.Reader, string, error) {
	if hasFiles(params) {
		return encodeMultipart(params)
	}
	payload := params
	if payload == nil {
		payload = Params{}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "application/json", nil
}

// multipartEncoder collects nested files while parameters are flattened into form fields.
type multipartEncoder struct {
	writer *multipart.Writer
	files  []attachment
}

type attachment struct {
	field string
	file  InputFile
}

func encodeMultipart(params Params) (io.Reader, string, error) {
	var buf bytes.Buffer
	enc := &multipartEncoder{writer: multipart.NewWriter(&buf)}

	for key, value := range params {
		if value == nil {
			continue
		}
		if file, ok := localFile(key, value); ok {
			enc.files = append(enc.files, attachment{field: key, file: file})
			continue
		}
		switch v := value.(type) {
		case InputFile:
			enc.files = append(enc.files, attachment{field: key, file: v})
		case *InputFile:
			enc.files = append(enc.files, attachment{field: key, file: *v})
		case string:
			if err := enc.writer.WriteField(key, v); err != nil {
				return nil, "", err
			}
		case bool, int, int32, int64, float32, float64:
			if err := enc.writer.WriteField(key, scalarString(v)); err != nil {
				return nil, "", err
			}
		default:
			data, err := json.Marshal(enc.attachNested(v))
			if err != nil {
				return nil, "", fmt.Errorf("failed to encode %s: %w", key, err)
			}
			if err := enc.writer.WriteField(key, string(data)); err != nil {
				return nil, "", err
			}
		}
	}

	for _, a := range enc.files {
		if err := enc.writeFile(a); err != nil {
			return nil, "", err
		}
	}
	if err := enc.writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, enc.writer.FormDataContentType(), nil
}

// attachNested replaces nested InputFile values with attach:// references.
func (e *multipartEncoder) attachNested(v any) any {
	switch val := v.(type) {
	case InputFile:
		return e.attach(val)
	case *InputFile:
		return e.attach(*val)
	case Params:
		return e.attachMap(val)
	case map[string]any:
		return e.attachMap(val)
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = e.attachMap(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = e.attachNested(item)
		}
		return out
	default:
		return v
	}
}

func (e *multipartEncoder) attachMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, item := range m {
		if file, ok := localFile(k, item); ok {
			out[k] = e.attach(file)
			continue
		}
		out[k] = e.attachNested(item)
	}
	return out
}

func (e *multipartEncoder) attach(f InputFile) string {
	field := "file" + strconv.Itoa(len(e.files))
	e.files = append(e.files, attachment{field: field, file: f})
	return "attach://" + field
}

func (e *multipartEncoder) writeFile(a attachment) error {
	rc, err := a.file.open()
	if err != nil {
		return fmt.Errorf("failed to open upload %s: %w", a.field, err)
	}
	defer rc.Close()

	name := a.file.Name
	if name == "" {
		name = a.field
	}
	part, err := e.writer.CreateFormFile(a.field, name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("failed to read upload %s: %w", a.field, err)
	}
	return nil
}

func scalarString(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
