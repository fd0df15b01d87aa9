package expedition

import "fmt"

// PartLabel renders a requirement's part number into the string form stored
// on completion records. Every component that joins requirements against
// completions must go through this function; the two tables share no foreign
// key, only this rendered label.
func PartLabel(partNumber int) string {
	return fmt.Sprintf("Part %d", partNumber)
}
