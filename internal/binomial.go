package internal

// MaxDegree is the highest degree whose binomial row fits in a 64-bit int.
// C(66, 33) is just under 2^63; C(67, 33) is not.
const MaxDegree = 66

// BinomialTable holds rows 0 through n of Pascal's triangle, so that
// table[i][j] is "i choose j" for 0 <= j <= i <= n.
type BinomialTable [][]int

// Build the table with Pascal's recurrence. Each row reuses the one above it,
// so there are no factorials to overflow long before the coefficients do.
func NewBinomialTable(n int) BinomialTable {
	if n < 0 {
		fatalf("negative degree %d", n)
	}
	table := make(BinomialTable, n+1)
	for i := 0; i <= n; i++ {
		row := make([]int, i+1)
		row[0] = 1
		row[i] = 1
		for j := 1; j < i; j++ {
			row[j] = table[i-1][j-1] + table[i-1][j]
		}
		table[i] = row
	}
	return table
}

func (table BinomialTable) Degree() int {
	return len(table) - 1
}

func (table BinomialTable) Row(i int) []int {
	if i < 0 || i >= len(table) {
		fatalf("binomial row %d out of range for degree %d", i, table.Degree())
	}
	return table[i]
}

func (table BinomialTable) Coefficient(i, j int) int {
	row := table.Row(i)
	if j < 0 || j >= len(row) {
		fatalf("binomial column %d out of range for row %d", j, i)
	}
	return row[j]
}
