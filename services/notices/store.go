package notices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrCorruptStore wraps decode failures of an existing store file.
var ErrCorruptStore = errors.New("corrupt store")

// Store persists a Record as a single well-known json file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted record. A missing file is a valid first-run
// state and yields found=false. A file that exists but cannot be
// decoded yields an ErrCorruptStore-wrapped error.
func (s *Store) Load(ctx context.Context) (Record, bool, error) {
	_, span := tracer.Start(ctx, "store.Load")
	defer span.End()
	span.SetAttributes(attribute.String("path", s.path))

	contents, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Record{}, false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read store")
		return Record{}, false, err
	}

	var rec Record
	err = json.Unmarshal(contents, &rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode store")
		return Record{}, false, fmt.Errorf("%w: %s: %s", ErrCorruptStore, s.path, err)
	}

	span.SetAttributes(attribute.Int("notices", len(rec.Notices)))
	return rec, true, nil
}

// MoveCorruptAside renames an unreadable store file out of the way so
// the run can proceed with an empty baseline without destroying
// whatever is still in the old file.
func (s *Store) MoveCorruptAside(scrapedAtUnix int64) (string, error) {
	backup := fmt.Sprintf("%s.corrupt-%d", s.path, scrapedAtUnix)
	err := os.Rename(s.path, backup)
	if err != nil {
		return "", err
	}
	return backup, nil
}

// Write persists the record atomically: the json is written to a
// temporary file next to the destination and renamed over it, so a
// failed write leaves the previous version intact.
func (s *Store) Write(ctx context.Context, rec Record) error {
	_, span := tracer.Start(ctx, "store.Write")
	defer span.End()
	span.SetAttributes(
		attribute.String("path", s.path),
		attribute.Int("notices", len(rec.Notices)),
	)

	contents, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to encode store")
		return err
	}

	tmp := s.path + ".tmp"
	err = os.WriteFile(tmp, contents, 0644)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write temp store")
		return err
	}

	err = os.Rename(tmp, s.path)
	if err != nil {
		os.Remove(tmp)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to replace store")
		return err
	}

	return nil
}
