package allocation

import "strings"

const PathSeparator = " / "

// Row is one node of a breakdown in depth-first order.
type Row struct {
	Path         []string
	Depth        int
	Percentage   float64
	ShareOfTotal float64
	Amount       float64
}

func (r Row) Name() string {
	return r.Path[len(r.Path)-1]
}

func (r Row) PathString() string {
	return strings.Join(r.Path, PathSeparator)
}

// Flatten walks the tree depth first, parents before their children.
func Flatten(breakdown Breakdown) []Row {
	rows := make([]Row, 0)
	var walk func(nodes []CategoryAllocation, parent []string)
	walk = func(nodes []CategoryAllocation, parent []string) {
		for _, node := range nodes {
			path := make([]string, len(parent)+1)
			copy(path, parent)
			path[len(parent)] = node.Name
			rows = append(rows, Row{
				Path:         path,
				Depth:        len(parent),
				Percentage:   node.Percentage,
				ShareOfTotal: node.ShareOfTotal,
				Amount:       node.Amount,
			})
			walk(node.Children, path)
		}
	}
	walk(breakdown.Categories, nil)
	return rows
}
