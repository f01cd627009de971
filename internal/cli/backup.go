package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/backup"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output file, defaults to myday-backup-<date>.json." default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	now := ctx.Clock.Now()
	doc, err := backup.Export(ctx.Store, s.User.UserID, now)
	if err != nil {
		return err
	}
	path := c.Output
	if path == "" {
		path = backup.DefaultFilename(now)
	}
	if err := backup.WriteFile(doc, path); err != nil {
		return err
	}
	fmt.Printf("Exported backup to %s\n", path)
	return nil
}

// ImportCmd overwrites routines, stats, and events with the backup's
// contents. Goals, missions, and merit are untouched.
type ImportCmd struct {
	File string `arg:"" help:"Backup file to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	s, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	doc, err := backup.Parse(data)
	if err != nil {
		return fmt.Errorf("invalid backup: %w", err)
	}
	if !c.Yes && !confirm("Importing replaces your current routines, stats, and events. Continue?") {
		fmt.Println("Aborted")
		return nil
	}
	if err := backup.Import(ctx.Store, s.User.UserID, doc); err != nil {
		return err
	}
	fmt.Printf("Imported backup from %s (exported %s)\n", c.File, doc.ExportDate.Format(time.RFC3339))
	return nil
}
