package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mu    sync.Mutex
	dumps map[string]string
}

func (m *memoryOutput) Write(id string, contents string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dumps == nil {
		m.dumps = map[string]string{}
	}
	m.dumps[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Upstream", "catalog")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	out := &memoryOutput{}
	client := resty.New()
	InstrumentClient(client, nil, out)

	for range 2 {
		res, err := client.R().
			SetHeader("Accept", "application/json").
			Get(srv.URL + "/api/cek_stock")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode())
	}

	require.Len(t, out.dumps, 2)
	dump := out.dumps["1"]
	require.Contains(t, dump, "GET "+srv.URL+"/api/cek_stock")
	require.Contains(t, dump, "Accept: application/json")
	require.Contains(t, dump, "X-Upstream: catalog")
	require.Contains(t, dump, `{"data":[]}`)
}

func TestInstrumentClientWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	out := &memoryOutput{}
	client := resty.New()
	InstrumentClient(client, nil, out)

	res, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"kode_produk":"AKL"}`).
		Post(srv.URL + "/api/order")
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, res.StatusCode())

	require.Len(t, out.dumps, 1)
	require.Contains(t, out.dumps["1"], "POST "+srv.URL+"/api/order")
	require.Contains(t, out.dumps["1"], `{"kode_produk":"AKL"}`)
}

func TestInstrumentClientWithoutOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := resty.New()
	InstrumentClient(client, nil, nil)

	res, err := client.R().Get(srv.URL)
	require.NoError(t, err)
	require.True(t, res.IsError())
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0600))

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	out.Write("1", "hello")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}

func TestFilesystemOutputRejectsCwd(t *testing.T) {
	_, err := NewFilesystemOutput(".")
	require.Error(t, err)
	_, err = NewFilesystemOutput("/")
	require.Error(t, err)
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("b", "2")
	headers.Add("a", "1")
	headers.Add("a", "3")
	require.Equal(t, "A: 1\nA: 3\nB: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(nil))
}
