package storage

import (
	"encoding/json"
	"fmt"

	"NutritionAssistant/internal/models"
)

// ClearHistories wipes the weight and meal-log sequences (a new profile
// starts them over) while keeping the plan audit trail.
func (s *Store) ClearHistories() error {
	for _, table := range []string{"weight_entries", "meal_log_entries"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (s *Store) AppendWeight(entry models.WeightEntry) error {
	_, err := s.db.Exec("INSERT INTO weight_entries(date, weight) VALUES(?, ?)", entry.Date, entry.Weight)
	if err != nil {
		return fmt.Errorf("failed to append weight entry: %w", err)
	}
	return nil
}

// WeightHistory returns the weight sequence in insertion order.
func (s *Store) WeightHistory() ([]models.WeightEntry, error) {
	rows, err := s.db.Query("SELECT date, weight FROM weight_entries ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query weight entries: %w", err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var entry models.WeightEntry
		if err := rows.Scan(&entry.Date, &entry.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan weight entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) AppendMealLog(entry models.MealLogEntry) error {
	slots, err := json.Marshal(entry.Slots)
	if err != nil {
		return fmt.Errorf("failed to encode meal slots: %w", err)
	}
	if _, err := s.db.Exec("INSERT INTO meal_log_entries(date, slots) VALUES(?, ?)", entry.Date, string(slots)); err != nil {
		return fmt.Errorf("failed to append meal log entry: %w", err)
	}
	return nil
}

// MealLogHistory returns the meal-log sequence in insertion order.
func (s *Store) MealLogHistory() ([]models.MealLogEntry, error) {
	rows, err := s.db.Query("SELECT date, slots FROM meal_log_entries ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query meal log entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MealLogEntry
	for rows.Next() {
		var entry models.MealLogEntry
		var slots string
		if err := rows.Scan(&entry.Date, &slots); err != nil {
			return nil, fmt.Errorf("failed to scan meal log entry: %w", err)
		}
		if err := json.Unmarshal([]byte(slots), &entry.Slots); err != nil {
			return nil, fmt.Errorf("failed to decode meal slots: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
