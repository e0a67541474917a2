package cli

import (
	"fmt"
	"strconv"

	"github.com/kestrelhq/daybook/internal/constants"
	"github.com/kestrelhq/daybook/internal/errors"
	"github.com/kestrelhq/daybook/internal/keyring"
	"github.com/kestrelhq/daybook/internal/storage/postgres"
	"github.com/kestrelhq/daybook/internal/validation"
)

type SettingsCmd struct {
	Get GetSettingsCmd `cmd:"" help:"Show current settings." default:"1"`
	Set SetSettingsCmd `cmd:"" help:"Change a setting."`
}

type GetSettingsCmd struct{}

func (c *GetSettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", constants.SettingTimezone, settings.Timezone)
	fmt.Printf("%s: %d\n", constants.SettingCutoffHour, settings.CutoffHour)
	fmt.Printf("%s: %d\n", constants.SettingStreakWindow, settings.StreakWindowDays)
	fmt.Printf("%s: %d\n", constants.SettingRecentPageCount, settings.RecentPageCount)
	return nil
}

type SetSettingsCmd struct {
	Key   string `arg:"" help:"Setting key (timezone, cutoff_hour, streak_window_days, recent_page_count, connection-string)."`
	Value string `arg:"" help:"New value."`
}

func (c *SetSettingsCmd) Run(ctx *Context) error {
	// The connection string never touches the settings table; it goes to
	// the OS keyring.
	if c.Key == "connection-string" {
		if ok, err := postgres.ValidateConnString(c.Value); !ok {
			return err
		}
		if err := keyring.SetConnectionString(c.Value); err != nil {
			return err
		}
		fmt.Println("Stored connection string in the OS keyring.")
		return nil
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case constants.SettingTimezone:
		if err := validation.Timezone(c.Value); err != nil {
			return err
		}
		settings.Timezone = c.Value
	case constants.SettingCutoffHour:
		h, err := strconv.Atoi(c.Value)
		if err != nil {
			return errors.NewInput("cutoff hour must be a number, got %q", c.Value)
		}
		if err := validation.Hour(h); err != nil {
			return err
		}
		settings.CutoffHour = h
	case constants.SettingStreakWindow:
		d, err := strconv.Atoi(c.Value)
		if err != nil {
			return errors.NewInput("streak window must be a number of days, got %q", c.Value)
		}
		if err := validation.Window(d); err != nil {
			return err
		}
		settings.StreakWindowDays = d
	case constants.SettingRecentPageCount:
		n, err := strconv.Atoi(c.Value)
		if err != nil {
			return errors.NewInput("recent page count must be a number, got %q", c.Value)
		}
		if err := validation.Window(n); err != nil {
			return err
		}
		settings.RecentPageCount = n
	default:
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Updated %s.\n", c.Key)
	return nil
}
