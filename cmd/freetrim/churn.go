//go:build cgo

package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/freetrim"
	"github.com/vkngwrapper/freetrim/heap"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

type churnOptions struct {
	goroutines int
	frees      int
	size       int
	batch      int
	threshold  uint64
	pad        int
	verbose    bool
}

func newChurnCommand() *cobra.Command {
	opts := churnOptions{}

	cmd := &cobra.Command{
		Use:   "churn",
		Short: "Allocate and free C memory from many goroutines with trimming installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChurn(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.goroutines, "goroutines", "g", 4, "number of goroutines freeing concurrently")
	flags.IntVarP(&opts.frees, "frees", "n", 100000, "number of blocks each goroutine allocates and frees")
	flags.IntVarP(&opts.size, "size", "s", 4096, "size in bytes of each block")
	flags.IntVar(&opts.batch, "batch", 1000, "number of blocks each goroutine holds before freeing them")
	flags.Uint64Var(&opts.threshold, "threshold", freetrim.DefaultThreshold, "deallocations between trims")
	flags.IntVar(&opts.pad, "pad", freetrim.DefaultPad, "bytes of slack to keep when trimming")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every install and trim to stderr")

	return cmd
}

func runChurn(out io.Writer, opts churnOptions) error {
	if opts.goroutines <= 0 || opts.frees < 0 || opts.size <= 0 || opts.batch <= 0 {
		return errors.New("goroutines, size and batch must be positive and frees must not be negative")
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	host := heap.Default()
	controller, err := freetrim.New(logger, host, freetrim.CreateOptions{
		Threshold: opts.threshold,
		Pad:       opts.pad,
	})
	if err != nil {
		return err
	}

	err = controller.Install()
	if err != nil {
		return errors.Wrap(err, "could not install trim hook")
	}
	defer func() {
		if uninstallErr := controller.Uninstall(); uninstallErr != nil {
			logger.Warn("churn", slog.Any("error", uninstallErr))
		}
	}()

	var group errgroup.Group
	for i := 0; i < opts.goroutines; i++ {
		worker := i
		group.Go(func() error {
			return churnWorker(worker, opts)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, controller.BuildStatsString())
	return err
}

func churnWorker(worker int, opts churnOptions) error {
	held := make([]unsafe.Pointer, 0, opts.batch)
	defer func() {
		for _, ptr := range held {
			heap.Free(ptr)
		}
	}()

	for i := 0; i < opts.frees; i++ {
		ptr := heap.Malloc(opts.size)
		if ptr == nil {
			return errors.Newf("worker %d: allocation %d of %d bytes failed", worker, i, opts.size)
		}

		held = append(held, ptr)
		if len(held) == opts.batch {
			for _, heldPtr := range held {
				heap.Free(heldPtr)
			}
			held = held[:0]
		}
	}

	return nil
}
