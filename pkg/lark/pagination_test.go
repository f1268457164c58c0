package lark_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

type testPage struct {
	Items []string `json:"items"`
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
	fields  []map[string]interface{}
}

func (l *recordingLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, level+":"+msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

var errPageFetch = errors.New("connection reset")

// scriptedFetcher serves responses in order and records the tokens it was called with.
type scriptedFetcher struct {
	responses []interface{}
	tokens    []string
}

func (f *scriptedFetcher) fetch(ctx context.Context, pageToken string) (json.RawMessage, error) {
	f.tokens = append(f.tokens, pageToken)

	if len(f.tokens) > len(f.responses) {
		return nil, errors.New("unexpected fetch")
	}

	switch response := f.responses[len(f.tokens)-1].(type) {
	case error:
		return nil, response
	case string:
		return json.RawMessage(response), nil
	default:
		data, err := json.Marshal(response)

		return data, err
	}
}

func TestPageIterator_Lazy(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{`{"items":["a"],"has_more":false}`}}
	it := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil)

	assert.Empty(t, fetcher.tokens)

	page, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, page.Items)
	assert.Equal(t, []string{""}, fetcher.tokens)
}

func TestPageIterator_Sequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responses []interface{}
		expected  [][]string
		tokens    []string
	}{
		{
			name: "page_token cursor",
			responses: []interface{}{
				`{"items":["a","b"],"has_more":true,"page_token":"t1"}`,
				`{"items":["c"],"has_more":false}`,
			},
			expected: [][]string{{"a", "b"}, {"c"}},
			tokens:   []string{"", "t1"},
		},
		{
			name: "next_page_token fallback",
			responses: []interface{}{
				`{"items":["a"],"has_more":true,"next_page_token":"n1"}`,
				`{"items":["b"],"has_more":true,"page_token":"p2","next_page_token":"ignored"}`,
				`{"items":["c"],"has_more":false}`,
			},
			expected: [][]string{{"a"}, {"b"}, {"c"}},
			tokens:   []string{"", "n1", "p2"},
		},
		{
			name:      "missing has_more ends after one page",
			responses: []interface{}{`{"items":["only"],"page_token":"t1"}`},
			expected:  [][]string{{"only"}},
			tokens:    []string{""},
		},
		{
			name:      "has_more without a token ends",
			responses: []interface{}{`{"items":["a"],"has_more":true}`},
			expected:  [][]string{{"a"}},
			tokens:    []string{""},
		},
		{
			name:      "null data yields an empty page",
			responses: []interface{}{`null`},
			expected:  [][]string{nil},
			tokens:    []string{""},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fetcher := &scriptedFetcher{responses: testCase.responses}
			it := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil)

			var got [][]string

			for page := range it.Pages() {
				require.NotNil(t, page)
				got = append(got, page.Items)
			}

			assert.Equal(t, testCase.expected, got)
			assert.Equal(t, testCase.tokens, fetcher.tokens)
			require.NoError(t, it.Err())
		})
	}
}

func TestPageIterator_StripsPaginationKeys(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{
		`{"items":["a"],"total":1,"has_more":false,"page_token":"x","next_page_token":"y"}`,
	}}
	it := lark.NewPageIterator[map[string]interface{}](context.Background(), fetcher.fetch, nil)

	page, ok := it.Next()
	require.True(t, ok)
	require.NotNil(t, page)

	assert.Equal(t, map[string]interface{}{"items": []interface{}{"a"}, "total": float64(1)}, *page)
}

func TestPageIterator_FailureYieldsSentinel(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{
		`{"items":["a"],"has_more":true,"page_token":"t1"}`,
		errPageFetch,
	}}
	logger := &recordingLogger{}
	it := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, logger)

	var pages []*testPage

	for page := range it.Pages() {
		pages = append(pages, page)
	}

	require.Len(t, pages, 2)
	assert.Equal(t, []string{"a"}, pages[0].Items)
	assert.Nil(t, pages[1])
	require.ErrorIs(t, it.Err(), errPageFetch)

	require.Len(t, logger.entries, 1)
	assert.Equal(t, "error:page iteration stopped", logger.entries[0])
	assert.Equal(t, 2, logger.fields[0]["page"])

	// finished iterators stay finished
	page, ok := it.Next()
	assert.Nil(t, page)
	assert.False(t, ok)
	assert.Len(t, fetcher.tokens, 2)
}

func TestPageIterator_InvalidData(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{`["not","an","object"]`}}
	it := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil)

	page, ok := it.Next()
	assert.True(t, ok)
	assert.Nil(t, page)
	require.ErrorIs(t, it.Err(), lark.ErrInvalidPageData)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestPageIterator_ErrorFormatter(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{errPageFetch}}
	logger := &recordingLogger{}
	it := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, logger).
		WithErrorFormatter(func(err error) map[string]interface{} {
			return map[string]interface{}{"custom": err.Error()}
		})

	_, _ = it.All()

	require.Len(t, logger.fields, 1)
	assert.Equal(t, "connection reset", logger.fields[0]["custom"])
}

func TestPageIterator_All(t *testing.T) {
	t.Parallel()

	t.Run("collects every page", func(t *testing.T) {
		t.Parallel()

		fetcher := &scriptedFetcher{responses: []interface{}{
			`{"items":["a"],"has_more":true,"page_token":"t1"}`,
			`{"items":["b"],"has_more":false}`,
		}}

		pages, err := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil).All()
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Len(t, fetcher.tokens, 2)
	})

	t.Run("returns pages before the failure and the error", func(t *testing.T) {
		t.Parallel()

		fetcher := &scriptedFetcher{responses: []interface{}{
			`{"items":["a"],"has_more":true,"page_token":"t1"}`,
			errPageFetch,
		}}

		pages, err := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil).All()
		require.ErrorIs(t, err, errPageFetch)
		require.Len(t, pages, 1)
	})
}

func TestPageIterator_ForEach(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{
		`{"items":["a"],"has_more":true,"page_token":"t1"}`,
		`{"items":["b"],"has_more":true,"page_token":"t2"}`,
	}}

	errStop := errors.New("stop")
	seen := 0

	err := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil).ForEach(func(page *testPage) error {
		seen++

		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, seen)
	assert.Len(t, fetcher.tokens, 1)
}

func TestPageIterator_BreakStopsFetching(t *testing.T) {
	t.Parallel()

	fetcher := &scriptedFetcher{responses: []interface{}{
		`{"items":["a"],"has_more":true,"page_token":"t1"}`,
		`{"items":["b"],"has_more":true,"page_token":"t2"}`,
	}}
	it := lark.NewPageIterator[testPage](context.Background(), fetcher.fetch, nil)

	for range it.Pages() {
		break
	}

	assert.Len(t, fetcher.tokens, 1)
	assert.Equal(t, 1, it.PageCount())
}
