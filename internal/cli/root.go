package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelhq/daybook/internal/constants"
	"github.com/kestrelhq/daybook/internal/models"
	"github.com/kestrelhq/daybook/internal/practice"
	"github.com/kestrelhq/daybook/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Engine builds the practice engine over the loaded store, with preferences
// and the reference timezone resolved from settings.
func (c *Context) Engine() (*practice.Service, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	prefs := settingsPrefs{settings: settings}
	clock := practice.SystemClock{TimezoneName: settings.Timezone}
	return practice.NewService(c.Store, prefs, clock), nil
}

// settingsPrefs adapts stored settings to the engine's preference contract.
type settingsPrefs struct {
	settings models.Settings
}

func (p settingsPrefs) CutoffHour(string) (int, bool, error) {
	return p.settings.CutoffHour, true, nil
}

func (p settingsPrefs) StreakWindow(string) (int, bool, error) {
	return p.settings.StreakWindowDays, p.settings.StreakWindowDays > 0, nil
}

// pagesPractice returns the reserved morning pages practice, creating it on
// first use.
func (c *Context) pagesPractice() (models.Practice, error) {
	p, err := c.Store.GetPracticeByName(constants.PagesPracticeName)
	if err == nil {
		return p, nil
	}

	p = models.Practice{
		ID:        uuid.New().String(),
		Name:      constants.PagesPracticeName,
		CreatedAt: time.Now(),
	}
	if err := c.Store.AddPractice(p); err != nil {
		return models.Practice{}, fmt.Errorf("failed to create %s practice: %w", constants.PagesPracticeName, err)
	}
	return p, nil
}
