package indexSplitter

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// recorder is a Runner that remembers every call
type recorder struct {
	calls [][]string
	err   error
}

func (r *recorder) Run(name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestDispatcher_Args(t *testing.T) {
	var d = &Dispatcher{Config: DefaultUgerConfig()}
	var got = d.Args("/out/index_bcsplit_joblist.txt", "/out")
	var want = []string{
		"/broad/IDP-Dx_work/nirmalya/tools/ugetools/UGE_SUBMISSIONS/UGER_cmd_batch_processor.py",
		"--cmds_file", "/out/index_bcsplit_joblist.txt",
		"--batch_size", "1",
		"--queue", "long",
		"--memory", "16",
		"--tracking_dir", "/out/UGER_cbp",
		"--project_name", "broad",
		"--bash_header", "/broad/IDP-Dx_work/nirmalya/bash_header",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v; want %v", got, want)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("disabled runs nothing and keeps tracking dir", func(t *testing.T) {
		var (
			outdir = t.TempDir()
			rec    = &recorder{}
			d      = &Dispatcher{Config: DefaultUgerConfig(), Run: rec.Run}
		)
		var tracking = d.TrackingDir(outdir)
		if err := os.MkdirAll(tracking, 0755); err != nil {
			t.Fatal(err)
		}
		if err := d.Dispatch(filepath.Join(outdir, JobListName), outdir); err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		if len(rec.calls) != 0 {
			t.Errorf("Expected no command, but got: %v", rec.calls)
		}
		if _, err := os.Stat(tracking); err != nil {
			t.Errorf("Expected tracking dir kept, but got: %v", err)
		}
	})

	t.Run("enabled clears tracking dir and runs once", func(t *testing.T) {
		var (
			outdir = t.TempDir()
			rec    = &recorder{}
			d      = &Dispatcher{Config: DefaultUgerConfig(), Enabled: true, Run: rec.Run}
		)
		var stale = filepath.Join(d.TrackingDir(outdir), "stale.txt")
		if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}

		var jobList = filepath.Join(outdir, JobListName)
		if err := d.Dispatch(jobList, outdir); err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		if _, err := os.Stat(d.TrackingDir(outdir)); !os.IsNotExist(err) {
			t.Errorf("Expected tracking dir removed, but got: %v", err)
		}
		if len(rec.calls) != 1 {
			t.Fatalf("Expected 1 command, but got: %d", len(rec.calls))
		}
		if !reflect.DeepEqual(rec.calls[0], d.Args(jobList, outdir)) {
			t.Errorf("command = %v; want %v", rec.calls[0], d.Args(jobList, outdir))
		}
	})

	t.Run("enabled without tracking dir", func(t *testing.T) {
		var (
			outdir = t.TempDir()
			rec    = &recorder{}
			d      = &Dispatcher{Config: DefaultUgerConfig(), Enabled: true, Run: rec.Run}
		)
		if err := d.Dispatch(filepath.Join(outdir, JobListName), outdir); err != nil {
			t.Fatalf("Expected no error, but got: %v", err)
		}
		if len(rec.calls) != 1 {
			t.Errorf("Expected 1 command, but got: %d", len(rec.calls))
		}
	})

	t.Run("runner failure is returned", func(t *testing.T) {
		var (
			outdir = t.TempDir()
			boom   = errors.New("exit status 1")
			rec    = &recorder{err: boom}
			d      = &Dispatcher{Config: DefaultUgerConfig(), Enabled: true, Run: rec.Run}
		)
		var err = d.Dispatch(filepath.Join(outdir, JobListName), outdir)
		if !errors.Is(err, boom) {
			t.Errorf("Expected %v, but got: %v", boom, err)
		}
	})

	t.Run("tracking dir at outdir keeps job list", func(t *testing.T) {
		var (
			outdir = t.TempDir()
			rec    = &recorder{}
			d      = &Dispatcher{Config: DefaultUgerConfig(), Enabled: true, Run: rec.Run}
		)
		d.Config.TrackingDir = "."
		var jobList = filepath.Join(outdir, JobListName)
		if err := os.WriteFile(jobList, []byte("job\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := d.Dispatch(jobList, outdir); err == nil {
			t.Error("Expected an error, but got nil")
		}
		if _, err := os.Stat(jobList); err != nil {
			t.Errorf("Expected job list kept, but got: %v", err)
		}
		if len(rec.calls) != 0 {
			t.Errorf("Expected no command, but got: %v", rec.calls)
		}
	})
}

func TestExecRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	if err := ExecRun("sh", "-c", "exit 0"); err != nil {
		t.Errorf("Expected no error, but got: %v", err)
	}

	var err = ExecRun("sh", "-c", "exit 3")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("Expected exit status 3, but got: %v", err)
	}

	// the exit status survives Dispatch wrapping
	var d = &Dispatcher{Config: DefaultUgerConfig(), Enabled: true, Run: func(name string, args ...string) error {
		return ExecRun("sh", "-c", "exit 3")
	}}
	var outdir = t.TempDir()
	err = d.Dispatch(filepath.Join(outdir, JobListName), outdir)
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("Expected exit status 3, but got: %v", err)
	}
}
