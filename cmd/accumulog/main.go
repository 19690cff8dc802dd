// Command accumulog maintains a durable accumulator in a local leveldb
// backed blockstore. The committed state is kept as a content addressed
// block pointed at by the "head" tag, so every command operates on a
// consistent snapshot and push republishes the head only after a fully
// committed append.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/textileio/go-accumulator/blockstore"
)

const headTag = "head"

var (
	dbPath  string
	verbose bool
	log     *zap.SugaredLogger
)

func main() {
	root := &cobra.Command{
		Use:           "accumulog",
		Short:         "append-only authenticated accumulator over a local blockstore",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			base := zap.NewNop()
			if verbose {
				var err error
				base, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
			}
			log = base.Sugar()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "accumulog.db", "path to the blockstore database")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPushCmd(), newGetCmd(), newRootCmd(), newPeaksCmd(), newCountCmd(), newCatCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "accumulog: %v\n", err)
		os.Exit(1)
	}
}

// withStore opens the blockstore for the duration of fn.
func withStore(fn func(store *blockstore.LevelDB) error) error {
	store, err := blockstore.NewLevelDB(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Warnw("closing blockstore", "err", cerr)
		}
	}()
	return fn(store)
}

func isNotFound(err error) bool {
	return errors.Is(err, blockstore.ErrNotFound)
}
