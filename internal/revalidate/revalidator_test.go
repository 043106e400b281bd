package revalidate

import (
	"context"
	"log/slog"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsFor(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{kind: KindProject, want: []string{"/projects", "/"}},
		{kind: KindService, want: []string{"/services", "/dashboard", "/"}},
		{kind: KindBlog, want: []string{"/blog", "/"}},
		{kind: KindUser, want: []string{"/dashboard/users"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PathsFor(tt.kind), string(tt.kind))
	}
}

func TestInvalidate_FlushesPageCache(t *testing.T) {
	r := New(slog.Default(), nil)

	r.StorePage("/api/v1/projects", []byte(`{"status":"success"}`))
	_, ok := r.Page("/api/v1/projects")
	require.True(t, ok)

	r.Invalidate(context.Background(), KindProject)

	_, ok = r.Page("/api/v1/projects")
	assert.False(t, ok)
}

func TestInvalidate_DeletesRedisPageKeys(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := New(slog.Default(), rdb)

	mock.ExpectDel("page:/services").SetVal(1)
	mock.ExpectDel("page:/dashboard").SetVal(1)
	mock.ExpectDel("page:/").SetVal(1)

	r.Invalidate(context.Background(), KindService)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate_RedisFailureIsNonFatal(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	r := New(slog.Default(), rdb)

	mock.ExpectDel("page:/dashboard/users").SetErr(assert.AnError)

	// A broken shared keyspace must never panic or surface an error.
	r.Invalidate(context.Background(), KindUser)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPageRoundTrip(t *testing.T) {
	r := New(slog.Default(), nil)

	_, ok := r.Page("/api/v1/blogs")
	assert.False(t, ok)

	r.StorePage("/api/v1/blogs", []byte(`[]`))

	body, ok := r.Page("/api/v1/blogs")
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), body)
}
