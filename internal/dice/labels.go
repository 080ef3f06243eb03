package dice

import "fmt"

// Labels renders a percentage table as display strings with one decimal
// digit, e.g. 0.1234 -> "12.3". Ties follow %.1f and round to even:
// 0.0625 -> "6.2", 0.1875 -> "18.8".
func Labels(p *PctTable) [][]string {
	labels := make([][]string, len(p.Cells))
	for r, col := range p.Cells {
		labels[r] = make([]string, len(col))
		for h, v := range col {
			labels[r][h] = fmt.Sprintf("%.1f", v*100)
		}
	}
	return labels
}
