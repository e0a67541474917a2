package cli

import (
	"fmt"

	"github.com/kestrelhq/daybook/internal/keyring"
	"github.com/kestrelhq/daybook/internal/validation"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// The reserved morning pages practice exists from the start
	if _, err := ctx.pagesPractice(); err != nil {
		return err
	}

	fmt.Printf("Initialized daybook storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	ok := true

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		fmt.Println(denyStyle.Render(fmt.Sprintf("✗ settings: %v", err)))
		return fmt.Errorf("storage is unhealthy")
	}
	fmt.Println(doneStyle.Render("✓ storage reachable, settings load"))

	if err := validation.Timezone(settings.Timezone); err != nil {
		ok = false
		fmt.Println(denyStyle.Render(fmt.Sprintf("✗ timezone: %v", err)))
	} else {
		fmt.Println(doneStyle.Render(fmt.Sprintf("✓ timezone %q", settings.Timezone)))
	}

	if err := validation.Hour(settings.CutoffHour); err != nil {
		ok = false
		fmt.Println(denyStyle.Render(fmt.Sprintf("✗ cutoff hour: %v", err)))
	} else {
		fmt.Println(doneStyle.Render(fmt.Sprintf("✓ cutoff hour %d", settings.CutoffHour)))
	}

	if keyring.IsAvailable() {
		fmt.Println(doneStyle.Render("✓ OS keyring available"))
	} else {
		fmt.Println(mutedStyle.Render("- OS keyring unavailable (only needed for PostgreSQL credentials)"))
	}

	if !ok {
		return fmt.Errorf("problems found")
	}
	fmt.Println("All checks passed.")
	return nil
}
