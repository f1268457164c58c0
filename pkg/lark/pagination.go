package lark

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/samber/lo"

	"github.com/fivetwenty-io/lark-client/internal/constants"
)

// PageFetcher fetches the raw "data" object of one page. An empty pageToken requests
// the first page.
type PageFetcher func(ctx context.Context, pageToken string) (json.RawMessage, error)

// PageIterator walks a cursor-paginated list endpoint one page at a time.
//
// Pages are fetched lazily and strictly in sequence. Each yielded page is the response
// data with has_more, page_token and next_page_token removed. When a page fetch fails the
// iterator logs the failure, yields a single nil page and stops; the error is available
// from Err but is never returned through the sequence. An iterator cannot be restarted.
// The first page is always requested without a cursor; a page_token in the caller's
// params is ignored.
type PageIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // the iterator is bound to the call that created it
	fetch   PageFetcher
	logger  Logger
	format  ErrorFormatter
	hasMore bool
	token   string
	done    bool
	pages   int
	err     error
}

// NewPageIterator creates an iterator over fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher, logger Logger) *PageIterator[T] {
	if logger == nil {
		logger = NopLogger{}
	}

	return &PageIterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		logger:  logger,
		format:  FormatError,
		hasMore: true,
	}
}

// WithErrorFormatter sets how fetch failures are turned into log fields.
func (it *PageIterator[T]) WithErrorFormatter(format ErrorFormatter) *PageIterator[T] {
	if format != nil {
		it.format = format
	}

	return it
}

// Next returns the next page. The boolean is false once iteration has ended. After a
// failed fetch Next returns (nil, true) exactly once before ending.
func (it *PageIterator[T]) Next() (*T, bool) {
	if it.done || !it.hasMore {
		it.done = true

		return nil, false
	}

	raw, err := it.fetch(it.ctx, it.token)
	if err != nil {
		return it.fail(err)
	}

	page, hasMore, token, err := decodePage[T](raw)
	if err != nil {
		return it.fail(err)
	}

	it.pages++
	it.hasMore = hasMore
	it.token = token

	if hasMore && token == "" {
		// has_more without a cursor would re-request the first page forever
		it.logger.Warn("page reported more results without a page token, stopping", map[string]interface{}{
			"page": it.pages,
		})

		it.hasMore = false
	}

	return page, true
}

// Pages returns the remaining pages as a range-over-func sequence.
func (it *PageIterator[T]) Pages() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for {
			page, ok := it.Next()
			if !ok || !yield(page) {
				return
			}
		}
	}
}

// All drains the iterator and returns every successfully fetched page together with
// the error that ended iteration early, if any.
func (it *PageIterator[T]) All() ([]*T, error) {
	var pages []*T

	for page := range it.Pages() {
		if page != nil {
			pages = append(pages, page)
		}
	}

	return pages, it.err
}

// ForEach calls fn for every successfully fetched page. It stops at the first error
// returned by fn, otherwise it returns the error that ended iteration early, if any.
func (it *PageIterator[T]) ForEach(fn func(page *T) error) error {
	for page := range it.Pages() {
		if page == nil {
			continue
		}

		err := fn(page)
		if err != nil {
			return err
		}
	}

	return it.err
}

// Err returns the error that ended iteration early, or nil.
func (it *PageIterator[T]) Err() error {
	return it.err
}

// PageCount returns the number of pages fetched successfully so far.
func (it *PageIterator[T]) PageCount() int {
	return it.pages
}

func (it *PageIterator[T]) fail(err error) (*T, bool) {
	it.err = err
	it.done = true

	fields := it.format(err)
	if fields == nil {
		fields = map[string]interface{}{}
	}

	fields["page"] = it.pages + 1
	it.logger.Error("page iteration stopped", fields)

	return nil, true
}

// decodePage splits a page's data object into the pagination cursor and the page body.
func decodePage[T any](raw json.RawMessage) (*T, bool, string, error) {
	fields := map[string]json.RawMessage{}

	if len(raw) > 0 && string(raw) != "null" {
		err := json.Unmarshal(raw, &fields)
		if err != nil {
			return nil, false, "", fmt.Errorf("%w: %w", ErrInvalidPageData, err)
		}
	}

	var hasMore bool

	if value, ok := fields[constants.HasMoreKey]; ok {
		// null or non-boolean values count as "no more pages"
		_ = json.Unmarshal(value, &hasMore)
	}

	token := stringField(fields, constants.PageTokenKey)
	if token == "" {
		token = stringField(fields, constants.NextPageTokenKey)
	}

	body := lo.OmitByKeys(fields, []string{
		constants.HasMoreKey,
		constants.PageTokenKey,
		constants.NextPageTokenKey,
	})

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, false, "", fmt.Errorf("encoding page body: %w", err)
	}

	var page T

	err = json.Unmarshal(encoded, &page)
	if err != nil {
		return nil, false, "", fmt.Errorf("parsing page body: %w", err)
	}

	return &page, hasMore, token, nil
}

func stringField(fields map[string]json.RawMessage, key string) string {
	value, ok := fields[key]
	if !ok {
		return ""
	}

	var s string

	_ = json.Unmarshal(value, &s)

	return s
}
