package object

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ObjectStore defines the contract for saving and retrieving uploaded files.
type ObjectStore interface {
	Save(ctx context.Context, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// TimestampPrefix renders t as a microsecond-resolution stamp used to prefix stored files.
func TimestampPrefix(t time.Time) string {
	return t.Format("20060102150405") + fmt.Sprintf("%06d", t.Nanosecond()/1000)
}

