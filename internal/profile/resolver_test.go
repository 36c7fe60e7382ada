package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"collabnex/cli/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rec  *Record
		want State
	}{
		{"nil record", nil, Missing},
		{"empty record", &Record{}, Missing},
		{"plain user", &Record{Domain: "user"}, BasicUser},
		{"plain user with bio stays user", &Record{Domain: "user", Bio: "hi"}, BasicUser},
		{"user with odd casing and spaces", &Record{Domain: "  User "}, BasicUser},
		{"artist with bio", &Record{Domain: "Singer", Bio: "hi"}, ArtistComplete},
		{"artist domain without bio", &Record{Domain: "Painter"}, ArtistComplete},
		{"bio only", &Record{Bio: "I paint"}, ArtistComplete},
		{"whitespace-only fields", &Record{Domain: "  ", Bio: "\t"}, Missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rec))
		})
	}
}

func TestRecord_UnmarshalLegacyString(t *testing.T) {
	// Older backends returned the record as a JSON-encoded string.
	raw := `"{\"domain\":\"Singer\",\"bio\":\"hi\"}"`

	var rec Record
	require.NoError(t, rec.UnmarshalJSON([]byte(raw)))
	assert.Equal(t, "Singer", rec.Domain)
	assert.Equal(t, "hi", rec.Bio)
}

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewResolver(api.New(srv.URL, tokenFunc(func() string { return "tok" }), nil))
}

type tokenFunc func() string

func (f tokenFunc) Token() string { return f() }

func TestResolve_Success(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, mePath, req.URL.Path)
		w.Write([]byte(`{"data":{"domain":"Painter","bio":"I paint"}}`))
	})

	assert.Equal(t, ArtistComplete, r.Resolve(context.Background()))
}

func TestResolve_NotFoundIsMissing(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.Equal(t, Missing, r.Resolve(context.Background()))
}

func TestResolve_ServerErrorIsMissing(t *testing.T) {
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Equal(t, Missing, r.Resolve(context.Background()))
}

func TestUpdate_ReResolves(t *testing.T) {
	var putSeen bool
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.Method == http.MethodPut && req.URL.Path == updatePath:
			putSeen = true
			w.Write([]byte(`{"data":{"domain":"Singer"}}`))
		case req.Method == http.MethodGet && req.URL.Path == mePath:
			w.Write([]byte(`{"data":{"domain":"Singer","bio":"new bio"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	state, err := r.Update(context.Background(), &Record{Domain: "Singer", Bio: "new bio"})
	require.NoError(t, err)
	assert.True(t, putSeen)
	assert.Equal(t, ArtistComplete, state)
}
