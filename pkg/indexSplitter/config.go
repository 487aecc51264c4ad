package indexSplitter

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/liserjrqlxue/goUtil/scannerUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// UgerConfigPath is the dispatch config, relative to cfgDir or the config FS
const UgerConfigPath = "etc/uger.txt"

// UgerConfig holds the UGER_cmd_batch_processor.py parameters
type UgerConfig struct {
	Processor   string
	BatchSize   int
	Queue       string
	Memory      int
	ProjectName string
	BashHeader  string
	TrackingDir string // relative to outdir
}

func DefaultUgerConfig() UgerConfig {
	return UgerConfig{
		Processor:   "/broad/IDP-Dx_work/nirmalya/tools/ugetools/UGE_SUBMISSIONS/UGER_cmd_batch_processor.py",
		BatchSize:   1,
		Queue:       "long",
		Memory:      16,
		ProjectName: "broad",
		BashHeader:  "/broad/IDP-Dx_work/nirmalya/bash_header",
		TrackingDir: "UGER_cbp",
	}
}

// Set updates one field by its etc/uger.txt name, unknown names are ignored
func (cfg *UgerConfig) Set(name, value string) error {
	var err error
	switch name {
	case "processor":
		cfg.Processor = value
	case "batch_size":
		cfg.BatchSize, err = strconv.Atoi(value)
	case "queue":
		cfg.Queue = value
	case "memory":
		cfg.Memory, err = strconv.Atoi(value)
	case "project_name":
		cfg.ProjectName = value
	case "bash_header":
		cfg.BashHeader = value
	case "tracking_dir":
		err = CheckTrackingDir(value)
		if err == nil {
			cfg.TrackingDir = value
		}
	default:
		slog.Warn("skip unknown uger config", "name", name)
	}
	if err != nil {
		return fmt.Errorf("uger config %s=%q: %w", name, value, err)
	}
	return nil
}

// CheckTrackingDir rejects tracking dirs that are not a sub directory of
// outdir, they are removed before every submission
func CheckTrackingDir(dir string) error {
	if !filepath.IsLocal(dir) || filepath.Clean(dir) == "." {
		return fmt.Errorf("tracking dir %q must be a sub directory of outdir", dir)
	}
	return nil
}

// LoadUgerConfig reads Name/Value rows from cfgDir or cfgFS over the defaults
func LoadUgerConfig(cfgDir string, cfgFS fs.FS) (cfg UgerConfig, err error) {
	cfg = DefaultUgerConfig()

	file, err := Open(UgerConfigPath, cfgDir, cfgFS)
	if err != nil {
		return cfg, fmt.Errorf("open %s: %w", UgerConfigPath, err)
	}
	defer simpleUtil.DeferClose(file)

	var rows, _ = scannerUtil.Scanner2MapArray(bufio.NewScanner(file), "\t", nil)
	for _, row := range rows {
		if row["Value"] == "" {
			continue
		}
		err = cfg.Set(row["Name"], row["Value"])
		if err != nil {
			return
		}
	}
	return
}
