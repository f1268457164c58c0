package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"

	"github.com/samber/lo"

	"github.com/fivetwenty-io/lark-client/internal/constants"
	larkhttp "github.com/fivetwenty-io/lark-client/internal/http"
	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

// Transport sends one HTTP request, normally *larkhttp.Client.
type Transport interface {
	Do(ctx context.Context, req *larkhttp.Request) (*larkhttp.Response, error)
}

// requester is shared by every resource client.
type requester struct {
	domain      string
	transport   Transport
	formatter   PayloadFormatter
	logger      lark.Logger
	formatError lark.ErrorFormatter
}

func newRequester(domain string, transport Transport, formatter PayloadFormatter, logger lark.Logger, formatError lark.ErrorFormatter) *requester {
	if logger == nil {
		logger = lark.NopLogger{}
	}

	if formatError == nil {
		formatError = lark.FormatError
	}

	return &requester{
		domain:      domain,
		transport:   transport,
		formatter:   formatter,
		logger:      logger,
		formatError: formatError,
	}
}

// invoke runs one call through the pipeline: format, fill the path, send. Formatter
// errors are returned as is. Transport errors are logged and returned unchanged.
func (r *requester) invoke(
	ctx context.Context, endpoint *Endpoint, payload *lark.Payload, opts []lark.RequestOption, stream bool,
) (*larkhttp.Response, error) {
	resolved, err := r.formatter.Format(ctx, endpoint, payload, lark.NewRequestOptions(opts...))
	if err != nil {
		return nil, err
	}

	path, err := larkhttp.FillPath(endpoint.Path, resolved.Path)
	if err != nil {
		return nil, err
	}

	query, err := larkhttp.EncodeQuery(resolved.Params)
	if err != nil {
		return nil, err
	}

	resp, err := r.transport.Do(ctx, &larkhttp.Request{
		Method:  endpoint.Method,
		Path:    r.domain + path,
		Route:   endpoint.Path,
		Query:   query,
		Headers: resolved.Headers,
		Body:    resolved.Data,
		Stream:  stream,
	})
	if err != nil {
		fields := r.formatError(err)
		if fields == nil {
			fields = map[string]interface{}{}
		}

		fields["endpoint"] = endpoint.Method + " " + endpoint.Path

		r.logger.Error("request failed", fields)

		return nil, err
	}

	return resp, nil
}

// send invokes endpoint and decodes the JSON body into R.
func send[R any](
	ctx context.Context, r *requester, endpoint *Endpoint, payload *lark.Payload, opts []lark.RequestOption,
) (*R, string, error) {
	resp, err := r.invoke(ctx, endpoint, payload, opts, false)
	if err != nil {
		return nil, "", err
	}

	var result R

	if len(resp.Body) > 0 {
		err = json.Unmarshal(resp.Body, &result)
		if err != nil {
			return nil, "", fmt.Errorf("parsing %s response: %w", endpoint.Path, err)
		}
	}

	return &result, resp.Headers.Get(constants.HeaderLogID), nil
}

// call invokes a JSON endpoint. A non-zero code is not an error here; see Envelope.Err.
func call[T any](
	ctx context.Context, r *requester, endpoint *Endpoint, payload *lark.Payload, opts []lark.RequestOption,
) (*lark.Envelope[T], error) {
	env, logID, err := send[lark.Envelope[T]](ctx, r, endpoint, payload, opts)
	if err != nil {
		return nil, err
	}

	env.LogID = logID

	return env, nil
}

// iterate wraps a cursor-paginated endpoint in a lazy PageIterator.
func iterate[T any](
	ctx context.Context, r *requester, endpoint *Endpoint, payload *lark.Payload, opts []lark.RequestOption,
) *lark.PageIterator[T] {
	fetch := func(ctx context.Context, pageToken string) (json.RawMessage, error) {
		env, err := call[json.RawMessage](ctx, r, endpoint, withPageToken(payload, pageToken), opts)
		if err != nil {
			return nil, err
		}

		err = env.Err()
		if err != nil {
			return nil, err
		}

		if env.Data == nil {
			return nil, nil
		}

		return *env.Data, nil
	}

	return lark.NewPageIterator[T](ctx, fetch, r.logger).WithErrorFormatter(r.formatError)
}

// withPageToken returns a copy of payload whose params carry the cursor. The first
// page is always requested without a cursor, so a page_token in the caller's params is
// dropped. The caller's params are never modified.
func withPageToken(payload *lark.Payload, pageToken string) *lark.Payload {
	page := &lark.Payload{}
	if payload != nil {
		*page = *payload
	}

	page.Params = lo.OmitByKeys(page.Params, []string{constants.PageTokenKey})

	if pageToken != "" {
		page.Params[constants.PageTokenKey] = pageToken
	}

	return page
}

// download invokes a binary endpoint. The platform reports download errors as a JSON
// envelope with a 200 status, so JSON bodies are buffered and checked for a code.
func (r *requester) download(
	ctx context.Context, endpoint *Endpoint, payload *lark.Payload, opts []lark.RequestOption,
) (*lark.File, error) {
	resp, err := r.invoke(ctx, endpoint, payload, opts, true)
	if err != nil {
		return nil, err
	}

	body := resp.Stream
	if body == nil {
		body = io.NopCloser(bytes.NewReader(resp.Body))
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Headers.Get(constants.HeaderContentType))
	if mediaType != "application/json" {
		return lark.NewFile(body, resp.Headers), nil
	}

	data, err := io.ReadAll(body)
	_ = body.Close()

	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint.Path, err)
	}

	var env lark.Envelope[lark.Empty]

	if json.Unmarshal(data, &env) == nil && !env.Success() {
		env.LogID = resp.Headers.Get(constants.HeaderLogID)
		err = env.Err()

		r.logger.Error("download failed", r.formatError(err))

		return nil, err
	}

	return lark.NewFile(io.NopCloser(bytes.NewReader(data)), resp.Headers), nil
}
