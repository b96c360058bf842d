// SPDX-License-Identifier: MIT

package main

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kevinoid/ytdl2rss/internal/feed"
	"github.com/kevinoid/ytdl2rss/internal/metrics"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    maxWidth(headers[i]),
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func maxWidth(header string) int {
	if header == "Title" {
		return 48
	}
	return 0
}

// renderSummary lists every video considered for the feed.
func renderSummary(res *feed.Result) string {
	headers := []string{"#", "ID", "Title", "Size", "Status"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft}

	rows := make([][]string, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		size := "-"
		if o.Length != nil {
			size = formatBytes(*o.Length)
		}
		status := "ok"
		if o.Err != nil {
			status = "skipped (" + metrics.Reason(o.Err) + ")"
		}
		rows = append(rows, []string{
			strconv.Itoa(o.Index + 1),
			o.ID,
			o.Title,
			size,
			status,
		})
	}
	return renderTable(headers, rows, aligns)
}

func formatBytes(n int64) string {
	if n < 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}
