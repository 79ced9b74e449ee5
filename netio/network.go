package netio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/boolnet/core"
)

// WriteNetwork serializes bn in the line-oriented network format: node count
// first, then one `parents; truth_table` line per node with bracketed list
// syntax and 0/1 truth values.
func WriteNetwork(w io.Writer, bn *core.Network) error {
	if bn == nil {
		return ErrNetworkNil
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", bn.NodeCount()); err != nil {
		return err
	}
	for i := 0; i < bn.NodeCount(); i++ {
		nd, err := bn.Node(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s; %s\n", formatInts(nd.Parents), formatBits(nd.Truth)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadNetwork parses the network format back into a validated core.Network.
// Blank lines are ignored; structural problems fail with ErrNetworkFormat
// (wrapped with positional detail), semantic problems with core's own
// validation errors.
func ReadNetwork(r io.Reader) (*core.Network, error) {
	sc := bufio.NewScanner(r)

	line, ok := nextLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: missing node count", ErrNetworkFormat)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("%w: node count %q", ErrNetworkFormat, line)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: node count %d", ErrNetworkFormat, n)
	}

	nodes := make([]core.Node, 0, n)
	for i := 0; i < n; i++ {
		line, ok = nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d node lines, got %d", ErrNetworkFormat, n, i)
		}
		parts := strings.SplitN(line, ";", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: node %d: missing %q separator", ErrNetworkFormat, i, ";")
		}
		parents, err := parseInts(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: node %d parents: %v", ErrNetworkFormat, i, err)
		}
		truth, err := parseBits(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: node %d truth table: %v", ErrNetworkFormat, i, err)
		}
		nodes = append(nodes, core.Node{Parents: parents, Truth: truth})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return core.New(nodes)
}

// nextLine returns the next non-blank, space-trimmed line.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// formatInts renders ints in bracketed list syntax: [0, 3, 5] or [].
func formatInts(vs []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatBits renders truth values as a bracketed 0/1 list.
func formatBits(vs []bool) string {
	ints := make([]int, len(vs))
	for i, v := range vs {
		if v {
			ints[i] = 1
		}
	}
	return formatInts(ints)
}

// parseInts parses bracketed list syntax into ints.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("expected bracketed list, got %q", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []int{}, nil
	}
	fields := strings.Split(inner, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("element %d: %q", i, strings.TrimSpace(f))
		}
		out[i] = v
	}
	return out, nil
}

// parseBits parses a bracketed 0/1 list into truth values.
func parseBits(s string) ([]bool, error) {
	ints, err := parseInts(s)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(ints))
	for i, v := range ints {
		switch v {
		case 0:
			// false already
		case 1:
			out[i] = true
		default:
			return nil, fmt.Errorf("element %d: %d is not 0/1", i, v)
		}
	}
	return out, nil
}
