package indexSplitter

import (
	"log/slog"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

const JobListSheet = "JobList"

var JobListTitle = []interface{}{"Prefix", "Lane", "Index", "Read1", "Read2", "OutputPrefix", "Files", "Command"}

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

// WriteJobListXlsx writes one row per job under a title row to path
func WriteJobListXlsx(path string, jobs []*Job, bin string, opt SplitterOptions) error {
	var xlsx = excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)

	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", JobListSheet))
	var center = simpleUtil.HandleError(xlsx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	}))

	SetRow(xlsx, JobListSheet, 1, 1, JobListTitle)
	for i, job := range jobs {
		SetRow(xlsx, JobListSheet, 1, i+2, []interface{}{
			job.Prefix,
			job.Lane,
			job.IndexFile,
			job.Read1,
			job.Read2,
			job.OutputPrefix,
			len(job.Files),
			job.CommandLine(bin, opt),
		})
	}
	simpleUtil.CheckErr(xlsx.SetCellStyle(JobListSheet, "A1", "H1", center))
	simpleUtil.CheckErr(xlsx.SetColWidth(JobListSheet, "A", "B", 20))
	simpleUtil.CheckErr(xlsx.SetColWidth(JobListSheet, "C", "F", 50))

	slog.Info("save xlsx", "path", path, "jobs", len(jobs))
	return xlsx.SaveAs(path)
}
