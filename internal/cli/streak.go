package cli

import (
	"fmt"
)

type StreakCmd struct {
	Name string `arg:"" help:"Practice name."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetPracticeByName(c.Name)
	if err != nil {
		return fmt.Errorf("practice %q not found", c.Name)
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	result, err := engine.Streak(p.ID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(c.Name))
	fmt.Printf("Current streak: %s\n", streakStyle.Render(fmt.Sprintf("%d day(s)", result.Current)))
	fmt.Printf("Longest streak: %d day(s)\n", result.Longest)
	if result.LastCompleted != nil {
		fmt.Printf("Last completed: %s\n", result.LastCompleted)
	} else {
		fmt.Println(mutedStyle.Render("No completed days yet."))
	}
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	practices, err := ctx.Store.GetAllPractices(false, false)
	if err != nil {
		return err
	}

	if len(practices) == 0 {
		fmt.Println("No practices found.")
		return nil
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	today, err := engine.Today("")
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Practices for %s", today)))
	fmt.Println()

	done := 0
	for _, p := range practices {
		record, err := engine.RecordFor(p.ID, today)
		if err != nil {
			return err
		}

		mark := "[ ]"
		if record != nil && record.Completed {
			mark = doneStyle.Render("[x]")
			done++
		}

		result, err := engine.Streak(p.ID)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%s %s", mark, p.Name)
		if result.Current > 0 {
			line += streakStyle.Render(fmt.Sprintf("  %d🔥", result.Current))
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("%d of %d completed today.\n", done, len(practices))
	return nil
}
