package notices

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"noticewatch/lib/timezone"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "notices.json"))

	date := "01-08-2026"
	drive := "https://drive.google.com/file/d/abc"
	rec := Record{
		ScrapedAt:    time.Date(2026, 8, 24, 10, 0, 0, 0, timezone.Location),
		TotalNotices: 2,
		Notices: []Notice{
			{Title: "Admission list", Url: "https://x/a", Date: &date, GoogleDrive: &drive},
			{Title: "Holiday", Url: "https://x/b"},
		},
	}

	err := store.Write(ctx, rec)
	if err != nil {
		t.Fatal(err)
	}

	loaded, found, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, found)
	require.True(t, loaded.ScrapedAt.Equal(rec.ScrapedAt))
	require.Equal(t, rec.TotalNotices, loaded.TotalNotices)
	require.Empty(t, cmp.Diff(rec.Notices, loaded.Notices))

	// no leftover temp file after a successful write
	_, err = os.Stat(store.Path() + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestStoreOnDiskShape(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "notices.json"))

	err := store.Write(ctx, Record{
		ScrapedAt:    time.Date(2026, 8, 24, 10, 0, 0, 0, timezone.Location),
		TotalNotices: 1,
		Notices:      []Notice{{Title: "A", Url: "https://x/a"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}

	var shape map[string]any
	err = json.Unmarshal(contents, &shape)
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, shape, "scraped_at")
	require.Contains(t, shape, "total_notices")
	require.Contains(t, shape, "notices")

	entry := shape["notices"].([]any)[0].(map[string]any)
	require.Equal(t, "A", entry["title"])
	require.Equal(t, "https://x/a", entry["url"])
	require.Nil(t, entry["date"])
	require.Nil(t, entry["google_drive"])
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "notices.json"))

	rec, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, rec.Notices)
}

func TestStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notices.json")
	err := os.WriteFile(path, []byte("{not json"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	_, _, err = store.Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptStore)

	backup, err := store.MoveCorruptAside(1756000000)
	require.NoError(t, err)
	require.Equal(t, path+".corrupt-1756000000", backup)

	// the bad contents survive under the backup name
	contents, err := os.ReadFile(backup)
	require.NoError(t, err)
	require.Equal(t, "{not json", string(contents))

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, found)
}

func TestStoreWriteFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "sub", "notices.json"))

	// destination directory does not exist, the write must fail
	// without leaving a partial file behind
	err := store.Write(ctx, Record{TotalNotices: 0})
	require.Error(t, err)

	_, err = os.Stat(store.Path())
	require.True(t, os.IsNotExist(err))
}
