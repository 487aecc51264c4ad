package indexSplitter

import (
	"path/filepath"
	"strconv"
	"strings"
)

// file name conventions under indir
const (
	IndexSuffix = ".barcode_1.fastq.gz"
	Read1Suffix = ".1.fastq.gz"
	Read2Suffix = ".2.fastq.gz"
)

// NotSet leaves an index_splitter option at the binary's own default
const NotSet = -1

// SplitterOptions are optional index_splitter flags, NotSet means not passed.
// 0 is a real value for Mismatch and BcStart, BcSize must be positive.
type SplitterOptions struct {
	Mismatch int
	BcStart  int
	BcSize   int
}

func DefaultSplitterOptions() SplitterOptions {
	return SplitterOptions{
		Mismatch: NotSet,
		BcStart:  NotSet,
		BcSize:   NotSet,
	}
}

func (opt SplitterOptions) Args() (args []string) {
	if opt.Mismatch >= 0 {
		args = append(args, "-m", strconv.Itoa(opt.Mismatch))
	}
	if opt.BcStart >= 0 {
		args = append(args, "--bc-start", strconv.Itoa(opt.BcStart))
	}
	if opt.BcSize > 0 {
		args = append(args, "--bc-size", strconv.Itoa(opt.BcSize))
	}
	return
}

// Job is one index_splitter invocation
type Job struct {
	Prefix string
	Lane   string

	DictFile     string
	IndexFile    string
	Read1        string
	Read2        string
	OutputPrefix string
	OutputDir    string

	Files []string
}

// NewJob derives the index and read paths of prefix by naming convention.
// Nothing is checked on disk.
func NewJob(prefix, indir, outdir, dictFile string) *Job {
	var (
		lane = Lane(prefix)
		base = prefix + "." + lane
	)
	return &Job{
		Prefix:       prefix,
		Lane:         lane,
		DictFile:     dictFile,
		IndexFile:    filepath.Join(indir, base+IndexSuffix),
		Read1:        filepath.Join(indir, base+Read1Suffix),
		Read2:        filepath.Join(indir, base+Read2Suffix),
		OutputPrefix: base,
		OutputDir:    outdir,
	}
}

// Args returns the full argv of the job, bin first
func (job *Job) Args(bin string, opt SplitterOptions) []string {
	var args = []string{
		bin,
		"-d", job.DictFile,
		"-i", job.IndexFile,
		"--file1", job.Read1,
		"--file2", job.Read2,
		"-p", job.OutputPrefix,
		"-o", job.OutputDir,
	}
	return append(args, opt.Args()...)
}

// CommandLine is the job as one shell line, without trailing newline
func (job *Job) CommandLine(bin string, opt SplitterOptions) string {
	return strings.Join(job.Args(bin, opt), " ")
}
