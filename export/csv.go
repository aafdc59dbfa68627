package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"hmt/calculator"
)

const timeColumn = "Time (hr)"

// Header 表头: 时间列 + 每个节点一列
func Header(nodes int) []string {
	header := make([]string, 0, nodes+1)
	header = append(header, timeColumn)
	for n := 0; n < nodes; n++ {
		header = append(header, fmt.Sprintf("Node T%d", n))
	}
	return header
}

// WriteCSV 每个时间层一行，precision < 0 时使用最短的精确表示
func WriteCSV(w io.Writer, r *calculator.Result, precision int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(r.Nodes())); err != nil {
		return err
	}

	record := make([]string, r.Nodes()+1)
	var err error
	r.Traverse(func(_ int, hour float64, row []float64) {
		if err != nil {
			return
		}
		record[0] = strconv.FormatFloat(hour, 'f', precision, 64)
		for n, v := range row {
			record[n+1] = strconv.FormatFloat(v, 'f', precision, 64)
		}
		err = cw.Write(record)
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
