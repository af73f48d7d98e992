package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	storage_go "github.com/supabase-community/storage-go"
)

// remoteFolder namespaces interview uploads inside the bucket.
const remoteFolder = "interview-videos"

// Supabase mirrors uploads to a Supabase storage bucket while keeping the
// local copy as a fallback, matching the local-plus-cloud behaviour of the
// upload collaborator. Remote failures degrade to local-only storage.
type Supabase struct {
	local  *Local
	client *storage_go.Client
	bucket string
	logger *logrus.Logger
}

// NewSupabase wraps a local store with a Supabase storage client.
func NewSupabase(local *Local, client *storage_go.Client, bucket string, logger *logrus.Logger) *Supabase {
	return &Supabase{local: local, client: client, bucket: bucket, logger: logger}
}

func (s *Supabase) Save(ctx context.Context, name, contentType string, data []byte) (FileRef, error) {
	ref, err := s.local.Save(ctx, name, contentType, data)
	if err != nil {
		return FileRef{}, err
	}

	remotePath := fmt.Sprintf("%s/%s", remoteFolder, name)
	opts := storage_go.FileOptions{ContentType: &contentType}
	if _, err := s.client.UploadFile(s.bucket, remotePath, bytes.NewReader(data), opts); err != nil {
		s.logger.WithField("path", remotePath).WithError(err).Warn("Remote upload failed, keeping local copy only")
		return ref, nil
	}

	publicURL := s.client.GetPublicUrl(s.bucket, remotePath).SignedURL
	ref.RemoteURL = &publicURL
	ref.RemotePublicID = &remotePath
	return ref, nil
}

// Remove deletes the remote object best-effort, then the local copy.
func (s *Supabase) Remove(ctx context.Context, ref FileRef) error {
	if ref.RemotePublicID != nil {
		if _, err := s.client.RemoveFile(s.bucket, []string{*ref.RemotePublicID}); err != nil {
			s.logger.WithField("path", *ref.RemotePublicID).WithError(err).Warn("Remote deletion failed")
		}
	}
	return s.local.Remove(ctx, ref)
}

func (s *Supabase) Mode() string {
	return "supabase"
}
