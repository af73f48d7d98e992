package config

import (
	storage_go "github.com/supabase-community/storage-go"

	"interviewhub/api-gateway/internal/storage"
)

// InitObjectStore builds the file storage collaborator. When Supabase
// storage credentials are present, uploads are mirrored to the configured
// bucket; otherwise files stay on the local disk only, as the original
// deployment does without cloud credentials.
func InitObjectStore(cfg Config) (storage.ObjectStore, error) {
	local, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	if cfg.SupabaseStorageURL == "" || cfg.SupabaseKey == "" {
		Log.Warn("Supabase storage credentials not set, files will be stored locally only")
		return local, nil
	}

	client := storage_go.NewClient(cfg.SupabaseStorageURL, cfg.SupabaseKey, nil)
	Log.WithField("bucket", cfg.SupabaseBucket).Info("Supabase storage client initialized")
	return storage.NewSupabase(local, client, cfg.SupabaseBucket, Log), nil
}
