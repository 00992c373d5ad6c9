package audit

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soloparent/pkg/domain"
	"soloparent/pkg/requestcontext"
)

func TestInMemoryStore_ListRecentNewestFirst(t *testing.T) {
	store := NewInMemoryStore(3)
	ctx := context.Background()
	for _, subject := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Append(ctx, Event{Subject: subject}))
	}

	events, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, subjects(events), "oldest event evicted")

	events, err = store.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, subjects(events))
}

func TestPublisher_EmitStampsEvent(t *testing.T) {
	fixed := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	store := NewInMemoryStore(0)
	p := NewPublisher(store, WithClock(func() time.Time { return fixed }))

	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	require.NoError(t, p.Emit(ctx, Event{Action: ActionApplicantApproved, Subject: "SP-1"}))

	events, err := p.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, "req-1", events[0].RequestID)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := NewInMemoryStore(0)
	var buf bytes.Buffer
	p := NewPublisher(store, WithAsyncBuffer(10), WithPublisherLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	for i := 0; i < 5; i++ {
		require.NoError(t, p.Emit(context.Background(), Event{Action: ActionReportExported}))
	}
	p.Close()

	events, err := store.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, events, 5)
	assert.Contains(t, buf.String(), `"log_type":"audit"`)
}

func TestHandler_RecentScopedToRegion(t *testing.T) {
	store := NewInMemoryStore(0)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, Event{Region: "San Isidro", Subject: "mine-1"}))
	require.NoError(t, store.Append(ctx, Event{Region: "Poblacion", Subject: "other"}))
	require.NoError(t, store.Append(ctx, Event{Region: "san isidro", Subject: "mine-2"}))

	r := chi.NewRouter()
	NewHandler(store, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).Register(r)

	req := httptest.NewRequest(http.MethodGet, "/audit/recent?limit=10", nil)
	req = req.WithContext(requestcontext.WithSession(req.Context(), domain.Session{AdminID: "1", Region: "San Isidro"}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body recentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"mine-2", "mine-1"}, subjects(body.Events))

	req = httptest.NewRequest(http.MethodGet, "/audit/recent?limit=0", nil)
	req = req.WithContext(requestcontext.WithSession(req.Context(), domain.Session{AdminID: "1", Region: "San Isidro"}))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func subjects(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Subject
	}
	return out
}
