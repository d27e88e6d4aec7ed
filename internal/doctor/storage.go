package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/snapshot"
	"github.com/rileyhilliard/triage/internal/store"
	"github.com/spf13/afero"
)

// writeCheckName is written and removed to prove the data directory is writable.
const writeCheckName = ".doctor-write-check"

// DataDirCheck verifies exports can be written to the data directory.
type DataDirCheck struct {
	Fs     afero.Fs // Defaults to the OS filesystem
	Dir    string
	Format snapshot.Format
}

func (c *DataDirCheck) Name() string     { return "data_dir" }
func (c *DataDirCheck) Category() string { return CategoryStorage }

func (c *DataDirCheck) fs() afero.Fs {
	if c.Fs == nil {
		return afero.NewOsFs()
	}
	return c.Fs
}

func (c *DataDirCheck) Run(ctx context.Context) CheckResult {
	if c.Dir == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No data directory",
			Suggestion: "Set XDG_DATA_HOME or store.dir in the config",
		}
	}

	fs := c.fs()
	info, err := fs.Stat(c.Dir)
	switch {
	case os.IsNotExist(err):
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s doesn't exist yet", c.Dir),
			Suggestion: "It is created on the first export",
			Fixable:    true,
		}
	case err != nil:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Can't access %s: %v", c.Dir, err),
		}
	case !info.IsDir():
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s is not a directory", c.Dir),
			Suggestion: "Point store.dir at a directory",
		}
	}

	st := store.New(fs, c.Dir)
	written, err := st.Write(ctx, writeCheckName, []byte("ok\n"), store.ScopeAppData)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    errors.Summary(err),
			Suggestion: fmt.Sprintf("Check that %s is writable", c.Dir),
		}
	}
	_ = fs.Remove(written)

	msg := fmt.Sprintf("Writable: %s", c.Dir)
	report := snapshot.FileName(c.Format)
	if ri, err := fs.Stat(filepath.Join(c.Dir, report)); err == nil {
		msg += fmt.Sprintf(" (last export %s, %s)", report, humanize.IBytes(uint64(ri.Size())))
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

// Fix creates the data directory.
func (c *DataDirCheck) Fix() error {
	if c.Dir == "" {
		return errors.New(errors.ErrPersist, "No data directory", "")
	}
	return c.fs().MkdirAll(c.Dir, 0o755)
}

// NewStorageChecks creates the storage checks for dir.
func NewStorageChecks(dir string, format snapshot.Format) []Check {
	return []Check{&DataDirCheck{Dir: dir, Format: format}}
}
