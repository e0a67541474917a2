package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelhq/daybook/internal/models"
)

type PracticeCmd struct {
	Add       PracticeAddCmd       `cmd:"" help:"Add a new daily practice."`
	List      PracticeListCmd      `cmd:"" help:"List practices."`
	Archive   PracticeArchiveCmd   `cmd:"" help:"Archive a practice."`
	Unarchive PracticeUnarchiveCmd `cmd:"" help:"Unarchive a practice."`
	Delete    PracticeDeleteCmd    `cmd:"" help:"Delete a practice (soft delete)."`
	Restore   PracticeRestoreCmd   `cmd:"" help:"Restore a deleted practice."`
}

type PracticeAddCmd struct {
	Name string `arg:"" help:"Practice name."`
}

func (c *PracticeAddCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.GetPracticeByName(c.Name); err == nil {
		return fmt.Errorf("practice with name %q already exists", c.Name)
	}

	practice := models.Practice{
		ID:        uuid.New().String(),
		Name:      c.Name,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddPractice(practice); err != nil {
		return err
	}

	fmt.Printf("Added practice: %s\n", c.Name)
	return nil
}

type PracticeListCmd struct {
	Archived bool `help:"Include archived practices."`
	Deleted  bool `help:"Include deleted practices."`
}

func (c *PracticeListCmd) Run(ctx *Context) error {
	practices, err := ctx.Store.GetAllPractices(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(practices) == 0 {
		fmt.Println("No practices found.")
		return nil
	}

	for _, p := range practices {
		status := ""
		if p.DeletedAt != nil {
			status = mutedStyle.Render(" [DELETED]")
		} else if p.ArchivedAt != nil {
			status = mutedStyle.Render(" [ARCHIVED]")
		}
		fmt.Printf("%s%s\n", p.Name, status)
	}

	return nil
}

type PracticeArchiveCmd struct {
	Name string `arg:"" help:"Practice name."`
}

func (c *PracticeArchiveCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetPracticeByName(c.Name)
	if err != nil {
		return fmt.Errorf("practice %q not found", c.Name)
	}
	if err := ctx.Store.ArchivePractice(p.ID); err != nil {
		return err
	}
	fmt.Printf("Archived practice: %s\n", c.Name)
	return nil
}

type PracticeUnarchiveCmd struct {
	Name string `arg:"" help:"Practice name."`
}

func (c *PracticeUnarchiveCmd) Run(ctx *Context) error {
	practices, err := ctx.Store.GetAllPractices(true, false)
	if err != nil {
		return err
	}
	for _, p := range practices {
		if p.Name == c.Name {
			if err := ctx.Store.UnarchivePractice(p.ID); err != nil {
				return err
			}
			fmt.Printf("Unarchived practice: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("practice %q not found", c.Name)
}

type PracticeDeleteCmd struct {
	Name string `arg:"" help:"Practice name."`
}

func (c *PracticeDeleteCmd) Run(ctx *Context) error {
	p, err := ctx.Store.GetPracticeByName(c.Name)
	if err != nil {
		return fmt.Errorf("practice %q not found", c.Name)
	}
	if err := ctx.Store.DeletePractice(p.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted practice: %s\n", c.Name)
	return nil
}

type PracticeRestoreCmd struct {
	Name string `arg:"" help:"Practice name."`
}

func (c *PracticeRestoreCmd) Run(ctx *Context) error {
	practices, err := ctx.Store.GetAllPractices(true, true)
	if err != nil {
		return err
	}
	for _, p := range practices {
		if p.Name == c.Name && p.DeletedAt != nil {
			if err := ctx.Store.RestorePractice(p.ID); err != nil {
				return err
			}
			fmt.Printf("Restored practice: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("deleted practice %q not found", c.Name)
}
