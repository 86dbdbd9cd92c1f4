package backup

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	mutex   sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusNotImplemented)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	b.mutex.Lock()
	b.objects[r.URL.Path] = body
	b.types[r.URL.Path] = r.Header.Get("content-type")
	b.mutex.Unlock()

	w.Header().Set("ETag", `"etag"`)
	w.WriteHeader(http.StatusOK)
}

func TestSnapshotKey(t *testing.T) {
	at := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	key, err := SnapshotKey("/backups/", at)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "backups/snapshot-20240301T093000Z-"), key)
	require.True(t, strings.HasSuffix(key, ".json"), key)

	other, err := SnapshotKey("", at)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(other, "snapshot-20240301T093000Z-"), other)
	require.NotEqual(t, strings.TrimPrefix(key, "backups/"), other)
}

func TestUpload(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{}, types: map[string]string{}}
	server := httptest.NewServer(bucket)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	uploader, err := NewUploader(ctx, S3Config{
		Bucket:          "supplements",
		Prefix:          "snapshots",
		Endpoint:        server.URL,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PathStyle:       true,
	})
	require.NoError(t, err)

	snapshot := map[string]any{"supplements": []string{"Vitamin D"}}
	key, err := uploader.Upload(ctx, snapshot, time.Now())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "snapshots/"))

	bucket.mutex.Lock()
	defer bucket.mutex.Unlock()
	stored, ok := bucket.objects["/supplements/"+key]
	require.True(t, ok)
	require.JSONEq(t, `{"supplements": ["Vitamin D"]}`, string(stored))
	require.Equal(t, "application/json", bucket.types["/supplements/"+key])

	_, err = NewUploader(ctx, S3Config{})
	require.Error(t, err)
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")

	err := WriteFile(path, map[string]int{"quantity": 3})
	require.NoError(t, err)

	var out map[string]json.Number
	err = ReadFile(path, &out)
	require.NoError(t, err)
	require.Equal(t, json.Number("3"), out["quantity"])
}
