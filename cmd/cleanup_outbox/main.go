package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/equiv-service/internal/config"
	"github.com/light-bringer/equiv-service/internal/models/m_outbox"
	"github.com/light-bringer/equiv-service/internal/pkg/committer"
)

var (
	cfgFile       = flag.String("config", "", "config file (default: ./equivcat.yaml)")
	retentionDays = flag.Int("retention", 0, "retention days for processed events (overrides config)")
	dryRun        = flag.Bool("dry-run", false, "show what would be deleted without actually deleting")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	retention := cfg.Outbox.RetentionDays
	if *retentionDays > 0 {
		retention = *retentionDays
	}

	if err := cleanupOutbox(ctx, cfg.Spanner.DatabasePath(), retention, *dryRun); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, spannerDB string, retention int, dryRun bool) error {
	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -retention)

	log.Printf("Starting outbox cleanup...")
	log.Printf("  Cutoff: %s (retention: %d days)", cutoff.Format(time.RFC3339), retention)
	log.Printf("  Dry run: %v", dryRun)

	eventIDs, err := findExpiredEvents(ctx, client, cutoff)
	if err != nil {
		return err
	}

	if len(eventIDs) == 0 {
		log.Println("No old events to delete")
		return nil
	}

	if dryRun {
		log.Printf("DRY RUN: Would delete %d events", len(eventIDs))
		log.Println("Run without --dry-run to actually delete events")
		return nil
	}

	log.Printf("Deleting %d old events...", len(eventIDs))

	model := m_outbox.NewModel()
	plan := committer.NewPlan()
	for _, id := range eventIDs {
		plan.Add(model.DeleteMut(id))
	}

	comm := committer.NewCommitter(client)
	if err := comm.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	log.Printf("Successfully deleted %d events", plan.Count())
	return nil
}

// findExpiredEvents returns the ids of completed and failed events processed
// before the cutoff.
func findExpiredEvents(ctx context.Context, client *spanner.Client, cutoff time.Time) ([]string, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id
			FROM outbox_events
			WHERE status IN (@completed, @failed) AND processed_at < @cutoff`,
		Params: map[string]interface{}{
			"completed": m_outbox.StatusCompleted,
			"failed":    m_outbox.StatusFailed,
			"cutoff":    cutoff,
		},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var ids []string
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query expired events: %w", err)
		}

		var id string
		if err := row.Columns(&id); err != nil {
			return nil, fmt.Errorf("failed to parse event id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
