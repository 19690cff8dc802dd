package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/textileio/go-accumulator/accumulator"
	"github.com/textileio/go-accumulator/blockstore"
)

// loadHead resolves the committed state, or an empty accumulator if nothing
// was pushed yet.
func loadHead(ctx context.Context, store *blockstore.LevelDB) (accumulator.State, error) {
	ref, err := store.Tag(ctx, headTag)
	if isNotFound(err) {
		log.Debugw("no head tag, starting empty", "db", dbPath)
		return accumulator.NewState(ctx, store)
	}
	if err != nil {
		return accumulator.State{}, err
	}
	data, err := store.Get(ctx, ref)
	if err != nil {
		return accumulator.State{}, fmt.Errorf("resolving head %s: %w", ref, err)
	}
	return accumulator.DecodeState(data)
}

// saveHead commits the state block and repoints the head tag at it.
func saveHead(ctx context.Context, store *blockstore.LevelDB, s accumulator.State) error {
	data, err := accumulator.EncodeState(s)
	if err != nil {
		return err
	}
	ref, err := store.Put(ctx, data)
	if err != nil {
		return err
	}
	return store.SetTag(ctx, headTag, ref)
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <value>",
		Short: "append a value and print its index and the new root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *blockstore.LevelDB) error {
				ctx := cmd.Context()
				s, err := loadHead(ctx, store)
				if err != nil {
					return err
				}
				res, err := accumulator.Push(ctx, store, &s, []byte(args[0]))
				if err != nil {
					return err
				}
				if err := saveHead(ctx, store, s); err != nil {
					return err
				}
				log.Infow("pushed", "index", res.Index, "root", res.Root, "leafCount", s.LeafCount)
				fmt.Printf("%d %s\n", res.Index, res.Root)
				return nil
			})
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <index>",
		Short: "print the value pushed at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing index %q: %w", args[0], err)
			}
			return withStore(func(store *blockstore.LevelDB) error {
				ctx := cmd.Context()
				s, err := loadHead(ctx, store)
				if err != nil {
					return err
				}
				value, ok, err := accumulator.GetLeafAt[[]byte](ctx, store, s, index)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no value at index %d (leaf count %d)", index, s.LeafCount)
				}
				fmt.Printf("%s\n", value)
				return nil
			})
		},
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "print the current root commitment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *blockstore.LevelDB) error {
				ctx := cmd.Context()
				s, err := loadHead(ctx, store)
				if err != nil {
					return err
				}
				root, err := accumulator.GetRoot(ctx, store, s)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", root)
				return nil
			})
		},
	}
}

func newPeaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peaks",
		Short: "print the current peaks, tallest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *blockstore.LevelDB) error {
				ctx := cmd.Context()
				s, err := loadHead(ctx, store)
				if err != nil {
					return err
				}
				peaks, err := accumulator.GetPeaks(ctx, store, s)
				if err != nil {
					return err
				}
				for i, peak := range peaks {
					fmt.Printf("%d %s\n", i, peak)
				}
				return nil
			})
		},
	}
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <ref>",
		Short: "print the raw bytes of a block by its content reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := blockstore.ParseRef(args[0])
			if err != nil {
				return err
			}
			return withStore(func(store *blockstore.LevelDB) error {
				data, err := store.Get(cmd.Context(), ref)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "print the leaf count and peak count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *blockstore.LevelDB) error {
				ctx := cmd.Context()
				s, err := loadHead(ctx, store)
				if err != nil {
					return err
				}
				fmt.Printf("leaves=%d peaks=%d\n", s.LeafCount, s.PeakCount())
				return nil
			})
		},
	}
}
