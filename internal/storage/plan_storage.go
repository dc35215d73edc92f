package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"NutritionAssistant/internal/models"
)

// RecordPlan appends one generation to the session's audit trail.
func (s *Store) RecordPlan(record models.PlanRecord) error {
	planJSON, err := json.Marshal(record.Plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	stmt, err := s.db.Prepare("INSERT INTO plan_records(id, bmi, calories, plan_json, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare plan record insert: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(record.ID, record.BMI, record.Calories, string(planJSON), record.CreatedAt); err != nil {
		return fmt.Errorf("failed to record plan: %w", err)
	}
	return nil
}

// PlanHistory returns generation records, newest first.
func (s *Store) PlanHistory() ([]models.PlanRecord, error) {
	rows, err := s.db.Query("SELECT id, bmi, calories, plan_json, created_at FROM plan_records ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query plan records: %w", err)
	}
	defer rows.Close()

	var records []models.PlanRecord
	for rows.Next() {
		var record models.PlanRecord
		var planJSON string
		if err := rows.Scan(&record.ID, &record.BMI, &record.Calories, &planJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan record: %w", err)
		}
		if err := json.Unmarshal([]byte(planJSON), &record.Plan); err != nil {
			return nil, fmt.Errorf("failed to decode plan record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Timestamp is the canonical created_at format for plan records.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
