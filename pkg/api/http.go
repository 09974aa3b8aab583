package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/blackfynn/blackfynn-go/pkg/api/status"
	"github.com/blackfynn/blackfynn-go/pkg/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maximum size of an error body reported in HTTPError
const maxErrorBody = 4096

// HTTPError reports an unexpected response from the API.
//
// It matches status.ErrRemote.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is status.ErrRemote
func (e *HTTPError) Is(target error) bool {
	return target == status.ErrRemote
}

type httpClient struct {
	host  string
	token string
	http  *http.Client
	l     *zap.Logger
}

// New builds a client for the platform API
func New(opts ...Option) (Client, error) {
	c := &httpClient{
		http: &http.Client{Timeout: DefaultTimeout},
		l:    zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}

	if c.host == "" {
		return nil, errors.New("an API host is required")
	}
	u, err := url.Parse(c.host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid API host %q", c.host)
	}
	c.host = strings.TrimSuffix(c.host, "/")

	if c.token == "" {
		return nil, status.ErrNoSession
	}
	return c, nil
}

type packageResponse struct {
	Content model.Package `json:"content"`
}

type datasetResponse struct {
	Content model.Dataset `json:"content"`
}

type organizationResponse struct {
	Organization model.Organization `json:"organization"`
}

type moveRequest struct {
	Things      []string `json:"things"`
	Destination *string  `json:"destination"`
}

type moveFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type moveResponse struct {
	Success  []string      `json:"success"`
	Failures []moveFailure `json:"failures"`
}

func (c *httpClient) GetPackage(ctx context.Context, id string) (*model.Package, error) {
	var resp packageResponse
	if err := c.do(ctx, http.MethodGet, "/packages/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Content, nil
}

func (c *httpClient) GetDataset(ctx context.Context, id string) (*model.Dataset, error) {
	var resp datasetResponse
	if err := c.do(ctx, http.MethodGet, "/datasets/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Content, nil
}

func (c *httpClient) Move(ctx context.Context, destination *model.Package, things ...*model.Package) error {
	if len(things) == 0 {
		return nil
	}
	req := moveRequest{
		Things: make([]string, 0, len(things)),
	}
	for _, thing := range things {
		req.Things = append(req.Things, thing.ID)
	}
	if destination != nil {
		if !destination.IsCollection() {
			return errors.Errorf("destination %v is not a collection", destination)
		}
		req.Destination = &destination.ID
	}

	var resp moveResponse
	if err := c.do(ctx, http.MethodPost, "/data/move", req, &resp); err != nil {
		return err
	}
	if len(resp.Failures) > 0 {
		msgs := make([]string, 0, len(resp.Failures))
		for _, f := range resp.Failures {
			msgs = append(msgs, f.ID+": "+f.Error)
		}
		return errors.Errorf("failed to move %s", strings.Join(msgs, ", "))
	}
	c.l.Debug("moved packages", zap.Strings("things", req.Things), zap.Stringer("destination", destination))
	return nil
}

func (c *httpClient) Profile(ctx context.Context) (*model.UserProfile, error) {
	var resp model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/user/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *httpClient) Organization(ctx context.Context, id string) (*model.Organization, error) {
	var resp organizationResponse
	if err := c.do(ctx, http.MethodGet, "/organizations/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Organization, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.l.Debug("api request", zap.String("method", method), zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.l.Debug("api response", zap.String("path", path), zap.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(status.ErrNotFound, "%s %s", method, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding response of %s %s", method, path)
	}
	return nil
}
