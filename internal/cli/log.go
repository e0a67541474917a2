package cli

import (
	"fmt"

	"github.com/kestrelhq/daybook/internal/daykey"
)

type LogCmd struct {
	Name   string `arg:"" help:"Practice name."`
	Date   string `help:"Day in YYYY-MM-DD format (default: today)." default:""`
	Missed bool   `help:"Record the day as missed instead of completed."`
	Count  *int   `help:"Completion count for the day."`
	Note   string `help:"Optional note for this day." default:""`
}

func (c *LogCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetPracticeByName(c.Name)
	if err != nil {
		return fmt.Errorf("practice %q not found", c.Name)
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	var day *daykey.Key
	if c.Date != "" {
		d, err := daykey.Parse(c.Date)
		if err != nil {
			return err
		}
		day = &d
	}

	record, err := engine.Log(p.ID, day, !c.Missed, c.Count, c.Note)
	if err != nil {
		return err
	}

	if c.Missed {
		fmt.Printf("Logged practice %q as missed for %s\n", c.Name, record.Day)
	} else {
		fmt.Printf("Marked practice %q for %s\n", c.Name, record.Day)
	}
	return nil
}

type HistoryCmd struct {
	Name string `arg:"" help:"Practice name."`
	From string `help:"Window start (YYYY-MM-DD, default: 30 days ago)." default:""`
	To   string `help:"Window end (YYYY-MM-DD, default: today)." default:""`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetPracticeByName(c.Name)
	if err != nil {
		return fmt.Errorf("practice %q not found", c.Name)
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	today, err := engine.Today(p.ID)
	if err != nil {
		return err
	}

	to := today
	if c.To != "" {
		if to, err = daykey.Parse(c.To); err != nil {
			return err
		}
	}
	from := to
	for i := 0; i < 29; i++ {
		from = from.Prev()
	}
	if c.From != "" {
		if from, err = daykey.Parse(c.From); err != nil {
			return err
		}
	}

	records, err := engine.History(p.ID, from, to)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No records for %q between %s and %s.\n", c.Name, from, to)
		return nil
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: %s to %s", c.Name, from, to)))
	for _, r := range records {
		mark := denyStyle.Render("✗")
		if r.Completed {
			mark = doneStyle.Render("✓")
		}
		line := fmt.Sprintf("%s %s", mark, r.Day)
		if r.Count > 1 {
			line += mutedStyle.Render(fmt.Sprintf(" x%d", r.Count))
		}
		if r.Note != "" {
			line += mutedStyle.Render("  " + r.Note)
		}
		fmt.Println(line)
	}
	return nil
}
