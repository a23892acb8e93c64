package bmain

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/roger-dv/better-main/internal/arena"
	"github.com/roger-dv/better-main/internal/argview"
	"github.com/roger-dv/better-main/internal/util"
)

type argInfo struct {
	Index int    `json:"index"`
	Bytes int    `json:"bytes"`
	Arg   string `json:"arg"`
}

type argReport struct {
	Count int           `json:"count"`
	Args  []argInfo     `json:"args"`
	Arena arena.Metrics `json:"arena"`
}

func buildReport(args *argview.Sequence, a *arena.Fixed) argReport {
	report := argReport{
		Count: args.Len(),
		Args:  make([]argInfo, 0, args.Len()),
		Arena: a.Metrics(),
	}
	args.Each(func(i int, arg string) {
		report.Args = append(report.Args, argInfo{Index: i, Bytes: len(arg), Arg: arg})
	})
	return report
}

func renderJson(out io.Writer, args *argview.Sequence, a *arena.Fixed, query string) util.BmainCmdError {
	output, err := json.Marshal(buildReport(args, a))
	if err != nil {
		log.Errorf("Failed to marshal output: %v", err)
		return util.ErrorCmdArg
	}

	if query != "" {
		result := gjson.GetBytes(output, query)
		if !result.Exists() {
			log.Errorf("Query %q matched nothing", query)
			return util.ErrorCmdArg
		}
		fmt.Fprintln(out, result.String())
		return util.ErrorSuccess
	}

	fmt.Fprintln(out, string(output))
	return util.ErrorSuccess
}

func renderTable(out io.Writer, args *argview.Sequence) util.BmainCmdError {
	table := tablewriter.NewWriter(out)
	util.SetBorderlessTable(table)
	table.SetHeader([]string{"Index", "Bytes", "Arg"})
	if width := util.TerminalWidth(os.Stdout.Fd()); width > 0 {
		table.SetColWidth(width)
	}

	args.Each(func(i int, arg string) {
		table.Append([]string{strconv.Itoa(i), strconv.Itoa(len(arg)), arg})
	})
	table.Render()
	return util.ErrorSuccess
}
