package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
	"github.com/katalvlaran/boolnet/netgen"
	"github.com/katalvlaran/boolnet/netio"
	"github.com/katalvlaran/boolnet/trajectory"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boolnet",
		Short: "Boolean network generation, attractor analysis, and sampling",
		Long: `boolnet works with Boolean regulatory networks: it generates random
networks, classifies every state of the state space into attractors and
transients (synchronous or asynchronous update), and samples trajectory
datasets for downstream network-inference tools.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newAnalyzeCmd(),
		newSampleCmd(),
		newRunCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boolnet version %s\n", version)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random Boolean network",
		Long: `Generate a random Boolean network: each node draws up to --max-parents
distinct parents and a random truth table. The result is written in the
line-oriented network format (node count, then one parents/truth line per
node).

Example:
  boolnet generate --nodes 8 --seed 42 --out network.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, _ := cmd.Flags().GetInt("nodes")
			maxParents, _ := cmd.Flags().GetInt("max-parents")
			seed, _ := cmd.Flags().GetInt64("seed")
			out, _ := cmd.Flags().GetString("out")

			bn, err := netgen.Random(nodes,
				netgen.WithMaxParents(maxParents),
				netgen.WithSeed(seed),
			)
			if err != nil {
				return fmt.Errorf("generate network: %w", err)
			}

			return withOutput(cmd, out, func(w io.Writer) error {
				return netio.WriteNetwork(w, bn)
			})
		},
	}

	cmd.Flags().Int("nodes", 0, "Number of nodes (required)")
	cmd.Flags().Int("max-parents", netgen.DefaultMaxParents, "Maximum parents per node")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 = library default)")
	cmd.Flags().String("out", "", "Output file (default: stdout)")
	cmd.MarkFlagRequired("nodes")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <network-file>",
		Short: "Classify the full state space of a network",
		Long: `Classify every state of the network's state space as attractor or
transient under the chosen update discipline, and print a summary of the
attractors found. With --table, a per-state classification table follows.

Example:
  boolnet analyze network.txt --mode asynchronous --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName, _ := cmd.Flags().GetString("mode")
			maxStates, _ := cmd.Flags().GetInt("max-states")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			table, _ := cmd.Flags().GetBool("table")

			bn, err := readNetworkFile(args[0])
			if err != nil {
				return err
			}
			mode, err := netio.ParseMode(modeName)
			if err != nil {
				return err
			}

			opts := []attractor.Option{attractor.WithMaxStates(maxStates)}
			if timeout > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()
				opts = append(opts, attractor.WithContext(ctx))
			}

			st, err := attractor.Analyze(bn, mode, opts...)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "nodes: %d\n", bn.NodeCount())
			fmt.Fprintf(w, "states: %d\n", st.StateCount())
			fmt.Fprintf(w, "mode: %s\n", st.Mode())
			fmt.Fprintf(w, "attractors: %d\n", st.AttractorCount())
			for id := 0; id < st.AttractorCount(); id++ {
				members, err := st.AttractorMembers(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  %d: %v (size %d)\n", id, members, len(members))
			}

			if table {
				return printStateTable(w, st)
			}
			return nil
		},
	}

	cmd.Flags().String("mode", attractor.Synchronous.String(), "Update discipline (synchronous or asynchronous)")
	cmd.Flags().Int("max-states", attractor.DefaultMaxStates, "Abort when the state space exceeds this size")
	cmd.Flags().Duration("timeout", 0, "Abort the analysis after this duration (0 = no limit)")
	cmd.Flags().Bool("table", false, "Print the per-state classification table")

	return cmd
}

// printStateTable lists every state's classification. Distance is only
// defined for synchronous analyses; transients of an asynchronous analysis
// carry no attractor id either.
func printStateTable(w io.Writer, st *attractor.Store) error {
	sync := st.Mode() == attractor.Synchronous
	if sync {
		fmt.Fprintln(w, "state\tattractor\tid\tdistance")
	} else {
		fmt.Fprintln(w, "state\tattractor\tid")
	}
	for s := core.State(0); int(s) < st.StateCount(); s++ {
		rec, err := st.Record(s)
		if err != nil {
			return err
		}
		id := "-"
		if rec.AttractorID != attractor.Unassigned {
			id = fmt.Sprintf("%d", rec.AttractorID)
		}
		if sync {
			fmt.Fprintf(w, "%d\t%t\t%s\t%d\n", s, rec.IsAttractor, id, rec.Distance)
		} else {
			fmt.Fprintf(w, "%d\t%t\t%s\n", s, rec.IsAttractor, id)
		}
	}
	return nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <network-file>",
		Short: "Simulate trajectories and write a dataset",
		Long: `Simulate trajectories of the network under the chosen update discipline
and write them as a dataset file. Start states are drawn uniformly at
random unless --start lists one per trajectory.

Example:
  boolnet sample network.txt --count 10 --length 20 --seed 7 --out dataset.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName, _ := cmd.Flags().GetString("mode")
			count, _ := cmd.Flags().GetInt("count")
			length, _ := cmd.Flags().GetInt("length")
			freq, _ := cmd.Flags().GetInt("sampling-frequency")
			seed, _ := cmd.Flags().GetInt64("seed")
			starts, _ := cmd.Flags().GetIntSlice("start")
			out, _ := cmd.Flags().GetString("out")

			bn, err := readNetworkFile(args[0])
			if err != nil {
				return err
			}
			mode, err := netio.ParseMode(modeName)
			if err != nil {
				return err
			}

			opts := []trajectory.Option{
				trajectory.WithCount(count),
				trajectory.WithLength(length),
				trajectory.WithSamplingFrequency(freq),
				trajectory.WithSeed(seed),
			}
			if len(starts) > 0 {
				ss := make([]core.State, len(starts))
				for i, s := range starts {
					ss[i] = core.State(s)
				}
				opts = append(opts, trajectory.WithStartStates(ss))
			}

			ds, err := trajectory.Simulate(bn, mode, opts...)
			if err != nil {
				return fmt.Errorf("simulate: %w", err)
			}

			return withOutput(cmd, out, func(w io.Writer) error {
				return netio.WriteDataset(w, bn, ds)
			})
		},
	}

	cmd.Flags().String("mode", attractor.Synchronous.String(), "Update discipline (synchronous or asynchronous)")
	cmd.Flags().Int("count", trajectory.DefaultCount, "Number of trajectories")
	cmd.Flags().Int("length", trajectory.DefaultLength, "Recorded states per trajectory")
	cmd.Flags().Int("sampling-frequency", trajectory.DefaultSamplingFrequency, "Record every k-th simulated state")
	cmd.Flags().Int64("seed", 0, "RNG seed (0 = library default)")
	cmd.Flags().IntSlice("start", nil, "Explicit start states, one per trajectory")
	cmd.Flags().String("out", "", "Output file (default: stdout)")

	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <experiment-file>",
		Short: "Run a full experiment from a YAML config",
		Long: `Run one end-to-end experiment described by a YAML file: generate a random
network, classify its state space, simulate long trajectories from every
state, draw dataset fragments with the configured transient/attractor
composition, and write both the network and the dataset to disk.

Example:
  boolnet run experiment.yaml --network-out net.txt --dataset-out data.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			networkOut, _ := cmd.Flags().GetString("network-out")
			datasetOut, _ := cmd.Flags().GetString("dataset-out")

			exp, err := netio.LoadExperiment(args[0])
			if err != nil {
				return err
			}
			mode, err := exp.AnalysisMode()
			if err != nil {
				return err
			}

			bn, err := netgen.Random(exp.Nodes,
				netgen.WithMaxParents(exp.MaxParents),
				netgen.WithSeed(exp.Seed),
			)
			if err != nil {
				return fmt.Errorf("generate network: %w", err)
			}
			if err := writeFileWith(networkOut, func(w io.Writer) error {
				return netio.WriteNetwork(w, bn)
			}); err != nil {
				return err
			}

			st, err := attractor.Analyze(bn, mode)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			long, err := trajectory.GenerateLong(bn, st,
				trajectory.WithMaxLength(exp.MaxLength),
				trajectory.WithSeed(exp.Seed),
			)
			if err != nil {
				return fmt.Errorf("generate trajectories: %w", err)
			}

			fragments, err := trajectory.Sample(long, st,
				trajectory.WithCount(exp.Trajectories),
				trajectory.WithLength(exp.Length),
				trajectory.WithSamplingFrequency(exp.SamplingFrequency),
				trajectory.WithTransientFraction(exp.TransientFraction),
				trajectory.WithSeed(exp.Seed),
			)
			if err != nil {
				return fmt.Errorf("sample dataset: %w", err)
			}
			ds := &trajectory.Dataset{
				Trajectories:      fragments,
				SamplingFrequency: exp.SamplingFrequency,
			}
			if err := writeFileWith(datasetOut, func(w io.Writer) error {
				return netio.WriteDataset(w, bn, ds)
			}); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "network: %d nodes -> %s\n", bn.NodeCount(), networkOut)
			fmt.Fprintf(w, "attractors: %d (%s)\n", st.AttractorCount(), st.Mode())
			fmt.Fprintf(w, "dataset: %d trajectories of %d states -> %s\n",
				len(ds.Trajectories), exp.Length, datasetOut)
			return nil
		},
	}

	cmd.Flags().String("network-out", "network.txt", "Network output file")
	cmd.Flags().String("dataset-out", "dataset.txt", "Dataset output file")

	return cmd
}

// readNetworkFile loads a network file, "-" meaning stdin.
func readNetworkFile(path string) (*core.Network, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	bn, err := netio.ReadNetwork(r)
	if err != nil {
		return nil, fmt.Errorf("read network %s: %w", path, err)
	}
	return bn, nil
}

// withOutput runs fn against the --out file, or the command's stdout when
// no file was given.
func withOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(cmd.OutOrStdout())
	}
	return writeFileWith(path, fn)
}

func writeFileWith(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
