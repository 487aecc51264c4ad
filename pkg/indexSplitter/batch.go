package indexSplitter

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// output file names under Outdir
const (
	JobListName     = "index_bcsplit_joblist.txt"
	InfoName        = "index_bcsplit_info.txt"
	JobListXlsxName = "index_bcsplit_joblist.xlsx"
	PlotName        = "index_bcsplit_prefix.html"
)

// Notifier receives the run summary
type Notifier interface {
	SendMarkdown(content string) error
	SendText(content string, mentionedList, mentionedMobileList []string) error
}

type Batch struct {
	Indir    string
	Outdir   string
	DictFile string
	Bin      string
	Suffix   string
	CfgDir   string

	Options SplitterOptions
	Xlsx    bool
	Plot    bool

	Dispatcher *Dispatcher
	Notifier   Notifier

	PrefixSet map[string][]string
	Prefixes  []string
	Jobs      []*Job
	JobList   string
}

func (batch *Batch) LoadConfig(cfgFS fs.FS) error {
	var cfg, err = LoadUgerConfig(batch.CfgDir, cfgFS)
	if err != nil {
		return err
	}
	if batch.Dispatcher == nil {
		batch.Dispatcher = &Dispatcher{}
	}
	batch.Dispatcher.Config = cfg
	return nil
}

func (batch *Batch) Discover() (err error) {
	batch.PrefixSet, err = Discover(batch.Indir, batch.Suffix)
	if err != nil {
		return
	}
	batch.Prefixes = SortPrefix(batch.PrefixSet)
	return
}

func (batch *Batch) Prepare() error {
	// prepare output directory
	return os.MkdirAll(batch.Outdir, 0755)
}

func (batch *Batch) BuildJobs() {
	batch.Jobs = batch.Jobs[:0]
	for _, prefix := range batch.Prefixes {
		var job = NewJob(prefix, batch.Indir, batch.Outdir, batch.DictFile)
		job.Files = batch.PrefixSet[prefix]
		batch.Jobs = append(batch.Jobs, job)
	}
}

// WriteJobList writes one index_splitter command line per job
func (batch *Batch) WriteJobList() {
	batch.JobList = filepath.Join(batch.Outdir, JobListName)
	var file = osUtil.Create(batch.JobList)
	defer simpleUtil.DeferClose(file)

	for _, job := range batch.Jobs {
		var line = job.CommandLine(batch.Bin, batch.Options)
		slog.Info("job", "prefix", job.OutputPrefix, "cmd", line)
		fmtUtil.Fprintln(file, line)
	}
	slog.Info("WriteJobList", "path", batch.JobList, "jobs", len(batch.Jobs))
}

func (batch *Batch) WriteInfoTxt(path string) {
	var file = osUtil.Create(path)
	defer simpleUtil.DeferClose(file)

	// write title
	fmtUtil.FprintStringArray(file, []string{"prefix", "lane", "index", "read1", "read2", "files"}, "\t")

	for _, job := range batch.Jobs {
		fmtUtil.Fprintf(
			file,
			"%s\t%s\t%s\t%s\t%s\t%s\n",
			job.Prefix,
			job.Lane,
			job.IndexFile,
			job.Read1,
			job.Read2,
			strings.Join(job.Files, ","),
		)
	}
}

func (batch *Batch) Report() error {
	if batch.Xlsx {
		var err = WriteJobListXlsx(filepath.Join(batch.Outdir, JobListXlsxName), batch.Jobs, batch.Bin, batch.Options)
		if err != nil {
			return fmt.Errorf("write job list xlsx: %w", err)
		}
	}
	if batch.Plot {
		var err = PlotPrefixFiles(filepath.Join(batch.Outdir, PlotName), batch.Indir, batch.Prefixes, batch.PrefixSet)
		if err != nil {
			return fmt.Errorf("plot prefix files: %w", err)
		}
	}
	return nil
}

func (batch *Batch) Dispatch() error {
	if batch.Dispatcher == nil {
		batch.Dispatcher = &Dispatcher{Config: DefaultUgerConfig()}
	}
	return batch.Dispatcher.Dispatch(batch.JobList, batch.Outdir)
}

// Summary is the markdown sent to Notifier
func (batch *Batch) Summary(dispatchErr error) string {
	var status = "written, not submitted"
	if batch.Dispatcher != nil && batch.Dispatcher.Enabled {
		status = "submitted"
		if dispatchErr != nil {
			status = "submit failed: " + dispatchErr.Error()
		}
	}
	return fmt.Sprintf(
		"### index splitter job list\n> indir: %s\n> outdir: %s\n> jobs: %d\n> joblist: %s\n> status: %s\n",
		batch.Indir,
		batch.Outdir,
		len(batch.Jobs),
		batch.JobList,
		status,
	)
}

func (batch *Batch) Notify(dispatchErr error) {
	if batch.Notifier == nil {
		return
	}
	var summary = batch.Summary(dispatchErr)
	var err = batch.Notifier.SendMarkdown(summary)
	if err == nil {
		return
	}
	// plain text for robots without markdown
	slog.Warn("Notify markdown", "err", err)
	if err = batch.Notifier.SendText(summary, nil, nil); err != nil {
		slog.Error("Notify", "err", err)
	}
}

// BatchRun is discover -> build list -> optionally dispatch
func (batch *Batch) BatchRun(cfgFS fs.FS) error {
	now := time.Now()
	slog.Info("BatchRun", "indir", batch.Indir, "outdir", batch.Outdir, "dict", batch.DictFile)

	if err := batch.LoadConfig(cfgFS); err != nil {
		return err
	}
	if err := batch.Discover(); err != nil {
		return err
	}
	if err := batch.Prepare(); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	batch.BuildJobs()
	batch.WriteJobList()
	batch.WriteInfoTxt(filepath.Join(batch.Outdir, InfoName))
	if err := batch.Report(); err != nil {
		return err
	}

	var err = batch.Dispatch()
	batch.Notify(err)
	if err != nil {
		return err
	}

	slog.Info("Done", "joblist", batch.JobList, "time", time.Since(now))
	return nil
}
