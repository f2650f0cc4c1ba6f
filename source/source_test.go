package source

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	t.Run("coerces once at construction", func(t *testing.T) {
		src := Static("Apple", map[string]any{"title": "Banana", "value": "b"})

		records, err := src.Records("anything")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Apple", records[0].Value)
		assert.Equal(t, "b", records[1].Value)
	})

	t.Run("invalid shape yields zero records", func(t *testing.T) {
		src := Static("Apple", 42)

		records, err := src.Records("x")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns fresh slices", func(t *testing.T) {
		src := Static("Apple", "Banana")

		first, err := src.Records("")
		require.NoError(t, err)
		first[0] = core.Record{Title: "mutated"}

		second, err := src.Records("")
		require.NoError(t, err)
		assert.Equal(t, "Apple", second[0].Title)
	})
}

func TestFunc(t *testing.T) {
	t.Run("nil producer", func(t *testing.T) {
		_, err := Func(nil)
		assert.Equal(t, ErrNilFunc, err)
	})

	t.Run("invoked per call with the query", func(t *testing.T) {
		var queries []string
		src, err := Func(func(query string) []any {
			queries = append(queries, query)
			return []any{"Apple " + query}
		})
		require.NoError(t, err)

		for _, q := range []string{"a", "b"} {
			records, err := src.Records(q)
			require.NoError(t, err)
			require.Len(t, records, 1)
		}
		assert.Equal(t, []string{"a", "b"}, queries)
	})

	t.Run("shape failure surfaces as invalid data", func(t *testing.T) {
		src, err := Func(func(string) []any { return []any{true} })
		require.NoError(t, err)

		_, err = src.Records("x")
		assert.ErrorIs(t, err, core.ErrInvalidData)
	})
}

func TestFetchFunc(t *testing.T) {
	t.Run("nil producer", func(t *testing.T) {
		_, err := FetchFunc(nil)
		assert.Equal(t, ErrNilFunc, err)
	})

	t.Run("coerces resolved items", func(t *testing.T) {
		src, err := FetchFunc(func(_ context.Context, query string) ([]any, error) {
			return []any{"hit for " + query}, nil
		})
		require.NoError(t, err)

		records, err := src.Fetch(context.Background(), "band")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "hit for band", records[0].Title)
	})

	t.Run("producer rejection becomes a fetch error", func(t *testing.T) {
		cause := errors.New("connection refused")
		src, err := FetchFunc(func(context.Context, string) ([]any, error) {
			return nil, cause
		})
		require.NoError(t, err)

		_, err = src.Fetch(context.Background(), "x")
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("bad shape is invalid data, not a fetch error", func(t *testing.T) {
		src, err := FetchFunc(func(context.Context, string) ([]any, error) {
			return []any{42}, nil
		})
		require.NoError(t, err)

		_, err = src.Fetch(context.Background(), "x")
		assert.ErrorIs(t, err, core.ErrInvalidData)
		var fetchErr *FetchError
		assert.False(t, errors.As(err, &fetchErr))
	})
}

func TestFrom(t *testing.T) {
	t.Run("slice of any", func(t *testing.T) {
		src, err := From([]any{"Apple"})
		require.NoError(t, err)
		_, ok := src.(List)
		assert.True(t, ok)
	})

	t.Run("slice of strings", func(t *testing.T) {
		src, err := From([]string{"Apple", "Banana"})
		require.NoError(t, err)

		list, ok := src.(List)
		require.True(t, ok)
		records, err := list.Records("")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("slice of records", func(t *testing.T) {
		src, err := From([]core.Record{{Title: "Apple", Value: "a"}})
		require.NoError(t, err)
		_, ok := src.(List)
		assert.True(t, ok)
	})

	t.Run("sync producer", func(t *testing.T) {
		src, err := From(func(query string) []any { return nil })
		require.NoError(t, err)
		_, ok := src.(List)
		assert.True(t, ok)
	})

	t.Run("async producer", func(t *testing.T) {
		src, err := From(func(ctx context.Context, query string) ([]any, error) { return nil, nil })
		require.NoError(t, err)
		_, ok := src.(Fetcher)
		assert.True(t, ok)
	})

	t.Run("url string", func(t *testing.T) {
		src, err := From("https://example.com/data.json")
		require.NoError(t, err)
		_, ok := src.(Fetcher)
		assert.True(t, ok)
	})

	t.Run("existing source passes through", func(t *testing.T) {
		static := Static("Apple")
		src, err := From(static)
		require.NoError(t, err)
		assert.Equal(t, Source(static), src)
	})

	t.Run("unsupported values", func(t *testing.T) {
		for _, v := range []any{42, true, map[string]any{}, nil} {
			_, err := From(v)
			assert.ErrorIs(t, err, ErrUnsupportedData, "value %v", v)
		}
	})
}
