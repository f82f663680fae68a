package assembler

// Labels maps label names to instruction addresses.
type Labels map[string]int

// Lookup returns the address bound to name.
func (l Labels) Lookup(name string) (int, bool) {
	addr, ok := l[name]
	return addr, ok
}

// ScanLabels is pass 1. It binds every label to the index of the next real
// instruction. Instructions are counted but not parsed, so a malformed line
// still takes up its address. A redefined label keeps its last binding.
// The trace function, when set, is called for each binding.
func ScanLabels(lines []SourceLine, trace func(name string, addr int)) (Labels, int) {
	labels := make(Labels)
	count := 0
	for _, l := range lines {
		switch l.Kind {
		case LineLabel:
			name := l.Label()
			labels[name] = count
			if trace != nil {
				trace(name, count)
			}
		case LineInstruction:
			count++
		}
	}
	return labels, count
}
