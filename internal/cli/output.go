package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type output struct {
	w     io.Writer
	plain bool
}

func (o output) table(header []string, rows [][]string) {
	if o.plain {
		for _, row := range rows {
			fmt.Fprintln(o.w, strings.Join(row, " "))
		}
		return
	}
	table := tablewriter.NewWriter(o.w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetBorder(true)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		out[i] = v
	}
	return out, nil
}

func formatInts(values []int) []string {
	return lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	})
}

func formatList[T any](values []T) string {
	return "[" + strings.Join(lo.Map(values, func(v T, _ int) string {
		return fmt.Sprint(v)
	}), " ") + "]"
}

func indexed(values []string) [][]string {
	return lo.Map(values, func(v string, i int) []string {
		return []string{strconv.Itoa(i), v}
	})
}
