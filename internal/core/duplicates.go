package core

type duplicateKey struct {
	pid     string
	docType string
}

// MarkDuplicates marks every row whose (PID, DocType) pair already appeared
// in an earlier row as a duplicate of the first occurrence. Comparison is
// exact. It returns the number of rows marked.
func MarkDuplicates(rows []*Row) int {
	first := make(map[duplicateKey]int, len(rows))
	marked := 0

	for _, row := range rows {
		key := duplicateKey{pid: row.PID, docType: row.DocType}
		if idx, seen := first[key]; seen {
			row.MarkAsDuplicateOf(idx)
			marked++
			continue
		}
		first[key] = row.Index
	}

	return marked
}
