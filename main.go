package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"atyraumap/cronjobs"
	"atyraumap/datastore"
	"atyraumap/moderation"
	"atyraumap/projection"
	"atyraumap/routes"
	"atyraumap/search"
	"atyraumap/storage"
	"atyraumap/translate"
)

func main() {
	// Load .env file; a missing file is fine, the env may be set directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	localPath := os.Getenv("LOCAL_DB_PATH")
	if localPath == "" {
		localPath = "atyrau-map.db"
	}

	// Pick the backend once: cloud when credentials work, local otherwise
	backend, err := storage.Select(storage.Config{
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		LocalPath:           localPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer backend.Close()

	store := datastore.New()
	proj := projection.New(store)
	store.OnChanged(func() {
		// derived views are rebuilt per request; this is just the heartbeat
		log.Printf("[data] collections changed: %d points, %d suggestions",
			len(store.Points()), len(store.Suggestions()))
	})
	store.Start(backend)

	session := moderation.NewSession(os.Getenv("ADMIN_SECRET"))
	wf := moderation.New(backend, store, session)
	if t := translate.New(os.Getenv("OPENAI_API_KEY")); t != nil {
		log.Println("Translation assist enabled")
		wf = wf.WithTranslator(t)
	}

	// Outbound place search is optional: without maps credentials only the
	// local coordinate parse answers queries
	geocoder, err := search.NewMapsGeocoder()
	if err != nil {
		log.Printf("Place search degraded to coordinate parse only: %v", err)
		geocoder = nil
	}

	exportPath := os.Getenv("EXPORT_PATH")
	if exportPath == "" {
		exportPath = "atyrau-map-export.json"
	}
	cronjobs.InitCronJobs(store, exportPath)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(store, wf, proj, geocoder)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
