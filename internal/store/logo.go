package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/planvest/admin-backend/internal/errs"
)

// logoStore writes plan logos to a public GCS bucket and hands back the
// served URL.
type logoStore struct {
	client *storage.Client
	bucket string
}

func NewLogoStore(client *storage.Client, bucket string) *logoStore {
	return &logoStore{client: client, bucket: bucket}
}

func (s *logoStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", errs.NewExternalServiceError("gcs", "failed to write logo object", true)
	}
	if err := w.Close(); err != nil {
		return "", errs.NewExternalServiceError("gcs", "failed to finalize logo object", true)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

// Delete removes a previously uploaded logo given its served URL. URLs
// outside this bucket are ignored.
func (s *logoStore) Delete(ctx context.Context, logoURL string) error {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucket)
	objectName, ok := strings.CutPrefix(logoURL, prefix)
	if !ok || objectName == "" {
		return nil
	}

	err := s.client.Bucket(s.bucket).Object(objectName).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		return errs.NewExternalServiceError("gcs", "failed to delete logo object", true)
	}
	return nil
}
