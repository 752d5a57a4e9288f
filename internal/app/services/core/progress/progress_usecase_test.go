package progress

import (
	"testing"
	"time"

	"jondonfit-service/internal/app/models"
	"jondonfit-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func entryDaysAgo(now time.Time, days int) *models.WeightEntry {
	return &models.WeightEntry{
		UserID:    "u1",
		WeightKg:  80,
		EntryDate: now.AddDate(0, 0, -days),
	}
}

func TestBuildWeighInReminder(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name          string
		daysAgo       int
		expectedLevel string
	}{
		{"same day", 0, constvars.ReminderLevelNone},
		{"two days", 2, constvars.ReminderLevelNone},
		{"three days", 3, constvars.ReminderLevelGentle},
		{"six days", 6, constvars.ReminderLevelGentle},
		{"seven days", 7, constvars.ReminderLevelReminder},
		{"eleven days", 11, constvars.ReminderLevelReminder},
		{"twelve days", 12, constvars.ReminderLevelStrong},
		{"thirteen days", 13, constvars.ReminderLevelStrong},
		{"fourteen days", 14, constvars.ReminderLevelMandatory},
		{"thirty days", 30, constvars.ReminderLevelMandatory},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reminder := BuildWeighInReminder(entryDaysAgo(now, tc.daysAgo), now)
			assert.Equal(t, tc.expectedLevel, reminder.Level)
			assert.Equal(t, tc.daysAgo, reminder.DaysSinceLastEntry)
			assert.NotNil(t, reminder.LastEntryDate)
		})
	}

	t.Run("no entries yet is mandatory", func(t *testing.T) {
		reminder := BuildWeighInReminder(nil, now)
		assert.Equal(t, constvars.ReminderLevelMandatory, reminder.Level)
		assert.Equal(t, -1, reminder.DaysSinceLastEntry)
		assert.Nil(t, reminder.LastEntryDate)
	})
}
