// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Table is a tablewriter table with string rows.
type Table struct {
	*tablewriter.Table
}

// NewTable creates a left aligned table writing to w.
func NewTable(w io.Writer, headers ...string) *Table {
	t := &Table{Table: tablewriter.NewTable(w)}
	t.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignLeft
	})
	if len(headers) > 0 {
		anyHeaders := make([]any, len(headers))
		for i, h := range headers {
			anyHeaders[i] = h
		}
		t.Header(anyHeaders...)
	}
	return t
}

func (t *Table) AppendRow(cells ...string) error {
	return t.Append(cells)
}

// RenderWithTitle prints title on its own line above the table.
func (t *Table) RenderWithTitle(w io.Writer, title string) error {
	if title != "" {
		if _, err := io.WriteString(w, title+"\n"); err != nil {
			return err
		}
	}
	return t.Render()
}
