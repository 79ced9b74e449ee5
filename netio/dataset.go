package netio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/trajectory"
)

// colSep separates dataset columns; the downstream inference tooling splits
// on runs of whitespace, so the exact width is cosmetic but kept stable.
const colSep = "   "

// WriteDataset serializes a trajectory dataset in the layout consumed by
// network-inference tools: a commented header naming the columns, one row
// per observation (1-based trajectory index, observation time advancing by
// the sampling frequency, one 0/1 column per node), and a `#` line closing
// each trajectory.
func WriteDataset(w io.Writer, bn *core.Network, ds *trajectory.Dataset) error {
	if bn == nil {
		return ErrNetworkNil
	}
	if ds == nil {
		return ErrDatasetNil
	}

	bw := bufio.NewWriter(w)

	// Header: #trajectory   time   x0 ... xN-1
	if _, err := fmt.Fprintf(bw, "#trajectory%stime", colSep); err != nil {
		return err
	}
	for i := 0; i < bn.NodeCount(); i++ {
		if _, err := fmt.Fprintf(bw, "%sx%d", colSep, i); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for ti, traj := range ds.Trajectories {
		time := 0
		for _, s := range traj {
			bits, err := bn.Decode(s)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(bw, "%d%s%d", ti+1, colSep, time); err != nil {
				return err
			}
			for _, b := range bits {
				v := 0
				if b {
					v = 1
				}
				if _, err := fmt.Fprintf(bw, "%s%d", colSep, v); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
			time += ds.SamplingFrequency
		}
		if _, err := fmt.Fprintln(bw, "#"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
