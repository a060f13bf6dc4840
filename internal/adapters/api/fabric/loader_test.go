package fabric

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/mcli/internal/adapters/api"
	"github.com/bnema/mcli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetaServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(api.NewSource(api.NewClient("mcli-test")), server.URL+"/v2/")
}

func TestBestLoaderVersionPrefersHighestStable(t *testing.T) {
	t.Parallel()

	server := newMetaServer(t, map[string]string{
		"/v2/versions/loader/1.19.2": `[
			{"loader": {"version": "0.15.0-beta.1", "stable": false}, "intermediary": {"version": "1.19.2"}},
			{"loader": {"version": "0.14.9", "stable": true}},
			{"loader": {"version": "0.14.10", "stable": true}},
			{"loader": {"version": "0.14.8", "stable": true}}
		]`,
	})

	version, err := newTestClient(server).BestLoaderVersion(context.Background(), "1.19.2")
	require.NoError(t, err)
	assert.Equal(t, "0.14.10", version)
}

func TestBestLoaderVersionFallsBackToFirstListed(t *testing.T) {
	t.Parallel()

	server := newMetaServer(t, map[string]string{
		"/v2/versions/loader/23w01a": `[
			{"loader": {"version": "0.15.0-beta.2", "stable": false}},
			{"loader": {"version": "0.15.0-beta.1", "stable": false}}
		]`,
	})

	version, err := newTestClient(server).BestLoaderVersion(context.Background(), "23w01a")
	require.NoError(t, err)
	assert.Equal(t, "0.15.0-beta.2", version)
}

func TestBestLoaderVersionNotFound(t *testing.T) {
	t.Parallel()

	server := newMetaServer(t, map[string]string{
		"/v2/versions/loader/1.2.5": `[]`,
	})
	client := newTestClient(server)

	_, err := client.BestLoaderVersion(context.Background(), "1.2.5")
	assert.ErrorIs(t, err, domain.ErrLoaderNotFound)

	_, err = client.BestLoaderVersion(context.Background(), "not-a-version")
	assert.ErrorIs(t, err, domain.ErrLoaderNotFound)
	category, _ := domain.CategoryOf(err)
	assert.Equal(t, domain.CategoryAPI, category)
}

func TestBestLoaderVersionMalformed(t *testing.T) {
	t.Parallel()

	server := newMetaServer(t, map[string]string{
		"/v2/versions/loader/1.19.2": `[{"intermediary": {}}]`,
	})

	_, err := newTestClient(server).BestLoaderVersion(context.Background(), "1.19.2")
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)
}

func TestLoaders(t *testing.T) {
	t.Parallel()

	server := newMetaServer(t, map[string]string{
		"/v2/versions/loader": `[
			{"separator": ".", "build": 10, "maven": "net.fabricmc:fabric-loader:0.14.10", "version": "0.14.10", "stable": true},
			{"separator": ".", "build": 9, "maven": "net.fabricmc:fabric-loader:0.14.9", "version": "0.14.9", "stable": false}
		]`,
	})

	loaders, err := newTestClient(server).Loaders(context.Background())
	require.NoError(t, err)
	require.Len(t, loaders, 2)
	assert.Equal(t, domain.LoaderVersion{Version: "0.14.10", Stable: true, Separator: ".", Build: 10}, loaders[0])
}

func TestProfileURL(t *testing.T) {
	client := NewClient(nil, "https://meta.example/v2")
	assert.Equal(t,
		"https://meta.example/v2/versions/loader/1.19.2/0.14.10/profile/json",
		client.ProfileURL("1.19.2", "0.14.10"))
}
