package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/kestrelhq/daybook/internal/validation"
)

type SetupCmd struct{}

// Run walks through first-run configuration interactively.
func (c *SetupCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	timezone := settings.Timezone
	cutoff := strconv.Itoa(settings.CutoffHour)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Reference timezone").
				Description("IANA name like America/New_York, or Local for the system timezone.").
				Value(&timezone).
				Validate(validation.Timezone),
			huh.NewInput().
				Title("Morning pages cutoff hour").
				Description("Hour of day (0-23) after which the rest of the app unlocks.").
				Value(&cutoff).
				Validate(func(s string) error {
					h, err := strconv.Atoi(s)
					if err != nil {
						return fmt.Errorf("enter a number between 0 and 23")
					}
					return validation.Hour(h)
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	settings.Timezone = timezone
	settings.CutoffHour, _ = strconv.Atoi(cutoff)

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings saved.")
	return nil
}
