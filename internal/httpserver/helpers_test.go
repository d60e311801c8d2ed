package httpserver

import "strconv"

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }
