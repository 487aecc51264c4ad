package indexSplitter

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Runner runs one external command to completion
type Runner func(name string, args ...string) error

// ExecRun runs name with stdout and stderr attached to the launcher's
func ExecRun(name string, args ...string) error {
	var cmd = exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	slog.Info("Run", "cmd", cmd)
	return cmd.Run()
}

// Dispatcher submits a job list through the UGER command batch processor
type Dispatcher struct {
	Config  UgerConfig
	Enabled bool
	Run     Runner
}

func (d *Dispatcher) TrackingDir(outdir string) string {
	return filepath.Join(outdir, d.Config.TrackingDir)
}

// Args is the batch processor argv for jobList, processor first
func (d *Dispatcher) Args(jobList, outdir string) []string {
	return []string{
		d.Config.Processor,
		"--cmds_file", jobList,
		"--batch_size", strconv.Itoa(d.Config.BatchSize),
		"--queue", d.Config.Queue,
		"--memory", strconv.Itoa(d.Config.Memory),
		"--tracking_dir", d.TrackingDir(outdir),
		"--project_name", d.Config.ProjectName,
		"--bash_header", d.Config.BashHeader,
	}
}

// Dispatch clears a stale tracking dir and runs the batch processor once.
// When disabled it only logs the command.
func (d *Dispatcher) Dispatch(jobList, outdir string) error {
	var args = d.Args(jobList, outdir)
	if !d.Enabled {
		slog.Info("Skip qsub, run batch processor use", "cmd", strings.Join(args, " "))
		return nil
	}

	if err := CheckTrackingDir(d.Config.TrackingDir); err != nil {
		return err
	}
	var trackingDir = d.TrackingDir(outdir)
	if _, err := os.Stat(trackingDir); err == nil {
		slog.Info("RemoveAll", "trackingDir", trackingDir)
		if err := os.RemoveAll(trackingDir); err != nil {
			return fmt.Errorf("clear tracking dir: %w", err)
		}
	}

	var run = d.Run
	if run == nil {
		run = ExecRun
	}
	if err := run(args[0], args[1:]...); err != nil {
		return fmt.Errorf("batch processor %s: %w", args[0], err)
	}
	return nil
}
