package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"IndexSplitter/pkg/indexSplitter"
	"IndexSplitter/pkg/wechatwork"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// embed etc
//
//go:embed etc/*.txt
var etcEMFS embed.FS

// options holds the parsed command line
type options struct {
	indir    string
	outdir   string
	dictFile string

	noQsub   bool
	bin      string
	suffix   string
	cfgDir   string
	mismatch int
	bcStart  int
	bcSize   int
	xlsx     bool
	plot     bool
	wxKey    string
}

func newFlagSet(opt *options, output io.Writer) *flag.FlagSet {
	var fs = flag.NewFlagSet("IndexSplitterMain", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opt.indir, "indir", "", "Input directory")
	fs.StringVar(&opt.indir, "i", "", "Input directory (shorthand)")
	fs.StringVar(&opt.outdir, "outdir", "", "Output directory")
	fs.StringVar(&opt.outdir, "o", "", "Output directory (shorthand)")
	fs.StringVar(&opt.dictFile, "dict_file", "", "p7 index dict file")
	fs.StringVar(&opt.dictFile, "d", "", "p7 index dict file (shorthand)")

	fs.BoolVar(
		&opt.noQsub,
		"no_qsub",
		false,
		"Does not submit qsub jobs.",
	)
	fs.StringVar(
		&opt.bin,
		"bin",
		filepath.Join(exPath, "index_splitter"),
		"index splitter binary",
	)
	fs.StringVar(
		&opt.suffix,
		"suffix",
		indexSplitter.DefaultSuffix,
		"input file suffix",
	)
	fs.StringVar(
		&opt.cfgDir,
		"cfg",
		exPath,
		"directory holding etc/uger.txt, fallback to embedded",
	)
	fs.IntVar(
		&opt.mismatch,
		"mismatch",
		indexSplitter.NotSet,
		"index splitter -m, -1 to use its default",
	)
	fs.IntVar(
		&opt.bcStart,
		"bc-start",
		indexSplitter.NotSet,
		"index splitter --bc-start, -1 to use its default",
	)
	fs.IntVar(
		&opt.bcSize,
		"bc-size",
		indexSplitter.NotSet,
		"index splitter --bc-size, -1 to use its default",
	)
	fs.BoolVar(
		&opt.xlsx,
		"xlsx",
		false,
		"also write job list as xlsx",
	)
	fs.BoolVar(
		&opt.plot,
		"plot",
		false,
		"plot file count per prefix",
	)
	fs.StringVar(
		&opt.wxKey,
		"wxkey",
		"",
		"WeChat Work webhook key, empty to disable notification",
	)
	return fs
}

// run returns the process exit code: the batch processor's own code when it
// fails, 2 for bad usage, 1 for other errors
func run(args []string, stderr io.Writer) int {
	var opt options
	var fs = newFlagSet(&opt, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opt.indir == "" || opt.outdir == "" || opt.dictFile == "" {
		fs.Usage()
		fmt.Fprintln(stderr, "-indir/-outdir/-dict_file required!")
		return 2
	}

	var batch = &indexSplitter.Batch{
		Indir:    opt.indir,
		Outdir:   opt.outdir,
		DictFile: opt.dictFile,
		Bin:      opt.bin,
		Suffix:   opt.suffix,
		CfgDir:   opt.cfgDir,
		Options: indexSplitter.SplitterOptions{
			Mismatch: opt.mismatch,
			BcStart:  opt.bcStart,
			BcSize:   opt.bcSize,
		},
		Xlsx: opt.xlsx,
		Plot: opt.plot,
		Dispatcher: &indexSplitter.Dispatcher{
			Enabled: !opt.noQsub,
			Run:     indexSplitter.ExecRun,
		},
	}
	if opt.wxKey != "" {
		batch.Notifier = wechatwork.NewNotificationSender(opt.wxKey)
	}

	var err = batch.BatchRun(etcEMFS)
	if err == nil {
		return 0
	}
	slog.Error("BatchRun", "err", err)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
