package db

import (
	"context"

	"wordwatch/internal/models"
)

// IncrementDetection upserts the alert count of a keyword by source.
func (d *DB) IncrementDetection(ctx context.Context, keyword, source string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO detections (keyword, source, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, source) DO UPDATE
		SET count = detections.count + 1, last_seen_at = NOW()
	`, keyword, source)
	return err
}

// GetAllDetections returns all detection rows for metrics export.
func (d *DB) GetAllDetections(ctx context.Context) ([]models.Detection, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword, source, count, last_seen_at FROM detections`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detections []models.Detection
	for rows.Next() {
		var det models.Detection
		if err := rows.Scan(&det.Keyword, &det.Source, &det.Count, &det.LastSeenAt); err != nil {
			return nil, err
		}
		detections = append(detections, det)
	}
	return detections, rows.Err()
}
