package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelhq/daybook/internal/models"
)

type PagesCmd struct {
	Status PagesStatusCmd `cmd:"" help:"Show today's morning pages access decision." default:"1"`
	Write  PagesWriteCmd  `cmd:"" help:"Write today's morning pages."`
	Recent PagesRecentCmd `cmd:"" help:"Show recent morning pages entries."`
}

type PagesStatusCmd struct{}

func (c *PagesStatusCmd) Run(ctx *Context) error {
	p, err := ctx.pagesPractice()
	if err != nil {
		return err
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	decision, err := engine.AccessDecision(p.ID)
	if err != nil {
		return err
	}

	switch decision.Reason {
	case models.ReasonAfterCutoff:
		fmt.Println(doneStyle.Render("Unlocked: the cutoff hour has passed."))
	case models.ReasonAlreadyCompleted:
		fmt.Println(doneStyle.Render("Unlocked: morning pages are done for today."))
		if decision.Record != nil && decision.Record.Note != "" {
			fmt.Println(mutedStyle.Render(decision.Record.Note))
		}
	case models.ReasonBeforeCutoffIncomplete:
		fmt.Println(denyStyle.Render("Locked: write your morning pages to unlock, or wait for the cutoff hour."))
	}
	return nil
}

type PagesWriteCmd struct {
	Content string `arg:"" optional:"" help:"Entry text. Reads stdin when omitted."`
}

func (c *PagesWriteCmd) Run(ctx *Context) error {
	content := c.Content
	if content == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read entry from stdin: %w", err)
		}
		content = string(data)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("entry content is required")
	}

	p, err := ctx.pagesPractice()
	if err != nil {
		return err
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	today, err := engine.Today(p.ID)
	if err != nil {
		return err
	}

	wordCount := len(strings.Fields(content))
	now := time.Now()
	entry := models.PageEntry{
		ID:        uuid.New().String(),
		Day:       today,
		Content:   content,
		WordCount: wordCount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := ctx.Store.GetPageEntry(today); err != nil {
		return err
	} else if existing != nil {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}

	if err := ctx.Store.PutPageEntry(entry); err != nil {
		return err
	}

	if _, err := engine.Log(p.ID, nil, true, nil, ""); err != nil {
		return err
	}

	fmt.Printf("Saved morning pages for %s (%d words).\n", today, wordCount)
	return nil
}

type PagesRecentCmd struct {
	Limit int `help:"How many entries to show." default:"0"`
}

func (c *PagesRecentCmd) Run(ctx *Context) error {
	limit := c.Limit
	if limit <= 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		limit = settings.RecentPageCount
	}

	entries, err := ctx.Store.GetRecentPageEntries(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No morning pages yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Println(titleStyle.Render(e.Day.String()) + mutedStyle.Render(fmt.Sprintf("  %d words", e.WordCount)))
		preview := e.Content
		if len(preview) > 120 {
			preview = preview[:120] + "…"
		}
		fmt.Println(preview)
		fmt.Println()
	}
	return nil
}
