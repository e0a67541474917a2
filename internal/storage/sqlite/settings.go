package sqlite

import (
	"fmt"

	"github.com/kestrelhq/daybook/internal/constants"
	"github.com/kestrelhq/daybook/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingCutoffHour:
			if _, err := fmt.Sscanf(value, "%d", &settings.CutoffHour); err != nil {
				return models.Settings{}, fmt.Errorf("parsing cutoff_hour: %w", err)
			}
		case constants.SettingStreakWindow:
			if _, err := fmt.Sscanf(value, "%d", &settings.StreakWindowDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing streak_window_days: %w", err)
			}
		case constants.SettingRecentPageCount:
			if _, err := fmt.Sscanf(value, "%d", &settings.RecentPageCount); err != nil {
				return models.Settings{}, fmt.Errorf("parsing recent_page_count: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingTimezone, settings.Timezone); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingCutoffHour, fmt.Sprintf("%d", settings.CutoffHour)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingStreakWindow, fmt.Sprintf("%d", settings.StreakWindowDays)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingRecentPageCount, fmt.Sprintf("%d", settings.RecentPageCount)); err != nil {
		return err
	}

	return tx.Commit()
}
