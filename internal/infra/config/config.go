// internal/infra/config/config.go
package config

import "os"

// Config はアプリケーション全体の環境変数設定を保持します。
type Config struct {
	Port                     string
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Firebase Auth 用のプロジェクトID（未指定なら GCP のデフォルト）
	FirebaseProjectID string

	// CatalogFile is the path of the static product catalog (JSON array).
	CatalogFile string

	// AllowedOrigin is the frontend origin for CORS.
	AllowedOrigin string

	// ShareBaseURL is the public base used to build /share/{listId} links.
	ShareBaseURL string
}

// Load は環境変数を読み込み Config を返します。
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "shoplist-dev")

	return &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		CatalogFile:              getenvDefault("CATALOG_FILE", "data/catalog.json"),
		AllowedOrigin:            getenvDefault("ALLOWED_ORIGIN", "*"),
		ShareBaseURL:             getenvDefault("SHARE_BASE_URL", "http://localhost:3000"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
