// Package snapshot periodically writes the save document to disk so
// that a crash loses at most one interval of data.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/studentfinance/backend/internal/models"
)

// document mirrors the save document of the browser app.
type document struct {
	Expenses    json.RawMessage `json:"expenses"`
	Goals       json.RawMessage `json:"goals"`
	CurrentUser json.RawMessage `json:"currentUser"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Start schedules periodic snapshots.
//
// Snapshots are disabled when SNAPSHOT_PATH is not set. The schedule
// defaults to every 30 seconds, SNAPSHOT_INTERVAL accepts any cron
// spec understood by robfig/cron. The returned function stops the
// schedule and waits for a running snapshot to finish.
func Start() (func(), error) {
	path, ok := os.LookupEnv("SNAPSHOT_PATH")
	if !ok || path == "" {
		log.Debug().Msg("Snapshots are disabled, set SNAPSHOT_PATH to enable them")
		return func() {}, nil
	}

	interval := "@every 30s"
	if value, ok := os.LookupEnv("SNAPSHOT_INTERVAL"); ok {
		interval = value
	}

	c := cron.New()
	_, err := c.AddFunc(interval, func() {
		if err := Write(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Snapshot")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not schedule snapshots: %w", err)
	}

	c.Start()
	log.Info().Str("path", path).Str("interval", interval).Msg("Snapshot")

	return func() {
		<-c.Stop().Done()
	}, nil
}

// Write writes the current save document to path.
//
// The document is written to a temporary file first and then renamed
// so that readers never see a partial snapshot.
func Write(path string) error {
	// Ensure the profile exists so that the document always has one
	_, err := models.Profile()
	if err != nil {
		return err
	}

	expenses, err := models.Expense{}.Export()
	if err != nil {
		return err
	}

	goals, err := models.Goal{}.Export()
	if err != nil {
		return err
	}

	profile, err := models.UserProfile{}.Export()
	if err != nil {
		return err
	}

	j, err := json.Marshal(document{
		Expenses:    expenses,
		Goals:       goals,
		CurrentUser: profile,
		Timestamp:   time.Now().In(time.UTC),
	})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create snapshot file: %w", err)
	}

	_, err = tmp.Write(j)
	if err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}

	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("could not write snapshot: %w", err)
	}

	return nil
}
