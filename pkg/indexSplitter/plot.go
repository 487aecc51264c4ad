package indexSplitter

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// PlotPrefixFiles renders the matching file count of each prefix as a bar chart
func PlotPrefixFiles(path, indir string, prefixes []string, prefixSet map[string][]string) error {
	var (
		bar    = charts.NewBar()
		output = osUtil.Create(path)
	)
	defer simpleUtil.DeferClose(output)
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "FASTQ files per prefix",
			Subtitle: indir,
		}))

	bar.SetXAxis(prefixes).
		AddSeries("files", generateBarItems(prefixes, prefixSet))
	return bar.Render(output)
}

func generateBarItems(prefixes []string, prefixSet map[string][]string) []opts.BarData {
	var items = make([]opts.BarData, 0, len(prefixes))
	for _, prefix := range prefixes {
		items = append(items, opts.BarData{Value: len(prefixSet[prefix])})
	}
	return items
}
