package storage

import "log"

// Config carries the backend settings read from the environment at startup.
type Config struct {
	FirebaseCredentials string // base64 service-account JSON; empty disables the cloud path
	LocalPath           string // sqlite file for the fallback store
}

// Select picks the backend once at startup: the cloud store when credentials
// are configured and initialize cleanly, otherwise the local store. Cloud
// init failure falls back to local with a log line, never an error. The
// choice is not re-evaluated afterwards.
func Select(cfg Config) (Backend, error) {
	if cfg.FirebaseCredentials != "" {
		cloud, err := NewFirestoreBackend(cfg.FirebaseCredentials)
		if err == nil {
			log.Println("[storage] using cloud backend")
			return cloud, nil
		}
		log.Printf("[storage] cloud init failed, falling back to local: %v", err)
	} else {
		log.Println("[storage] no cloud credentials, using local backend")
	}

	local, err := NewLocalBackend(cfg.LocalPath)
	if err != nil {
		return nil, err
	}
	return local, nil
}
