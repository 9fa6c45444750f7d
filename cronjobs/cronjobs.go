package cronjobs

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"atyraumap/datastore"
)

type exportFile struct {
	ExportedAt  string      `json:"exportedAt"`
	Points      interface{} `json:"points"`
	Suggestions interface{} `json:"suggestions"`
}

// InitCronJobs starts the background schedule: a nightly JSON export of both
// collections for the offline data-preparation tooling, and an hourly
// pending-queue reminder in the log.
func InitCronJobs(store *datastore.Store, exportPath string) *cron.Cron {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Nightly export at 03:15 local
	_, err := c.AddFunc("15 3 * * *", func() {
		log.Println("\nCronJob: collection export running")
		if err := ExportCollections(store, exportPath); err != nil {
			log.Println("Error exporting collections:", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling collection export:", err)
	}

	// Hourly pending-queue reminder
	_, err = c.AddFunc("0 * * * *", func() {
		pending := len(store.Suggestions())
		if pending > 0 {
			log.Printf("CronJob: %d suggestions waiting for moderation", pending)
		}
	})
	if err != nil {
		log.Println("Error scheduling pending reminder:", err)
	}

	c.Start()
	return c
}

// ExportCollections snapshots both collections into a JSON file the offline
// geocoding scripts can pick up.
func ExportCollections(store *datastore.Store, path string) error {
	out := exportFile{
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Points:      store.Points(),
		Suggestions: store.Suggestions(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Printf("Exported %d points, %d suggestions to %s", len(store.Points()), len(store.Suggestions()), path)
	return nil
}
