// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/Fantom-foundation/trieslice/slice"
	"github.com/Fantom-foundation/trieslice/slice/archive"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var Archive = cli.Command{
	Name:  "archive",
	Usage: "manages an archive of slice documents",
	Flags: []cli.Flag{
		&archiveDirFlag,
		&archiveCacheFlag,
	},
	Subcommands: []*cli.Command{
		{
			Action:    addPerformanceDiagnoses(archivePut),
			Name:      "put",
			Usage:     "adds slice documents to the archive",
			ArgsUsage: "<file>...",
		},
		{
			Action:    archiveGet,
			Name:      "get",
			Usage:     "prints or exports an archived slice document; ids of root slices start with '-', so pass them after --",
			ArgsUsage: "[--] <slice-id> [<output>]",
		},
		{
			Action: archiveList,
			Name:   "list",
			Usage:  "lists the ids of all archived slices",
		},
	},
}

var (
	archiveDirFlag = cli.StringFlag{
		Name:     "dir",
		Usage:    "the directory of the archive",
		Required: true,
	}
	archiveCacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "the size of the LevelDB block cache in MiB",
		Value: archive.DefaultConfig.CacheSizeMiB,
	}
)

// withArchive opens the archive selected by the command line flags for
// the duration of the given operation.
func withArchive(context *cli.Context, op func(*archive.Archive) error) (err error) {
	config := archive.DefaultConfig
	config.Directory = context.String(archiveDirFlag.Name)
	config.CacheSizeMiB = context.Int(archiveCacheFlag.Name)

	log.Debug("Opening archive", "dir", config.Directory)
	store, err := archive.Open(config)
	if err != nil {
		return err
	}
	defer func() {
		log.Debug("Closing archive", "dir", config.Directory)
		if closeError := store.Close(); closeError != nil {
			if err == nil {
				err = closeError
			} else {
				log.Error("Failure closing archive", "err", closeError)
			}
		}
	}()
	return op(store)
}

func archivePut(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return fmt.Errorf("missing slice documents")
	}
	return withArchive(context, func(store *archive.Archive) error {
		for _, file := range context.Args().Slice() {
			snapshot, err := slice.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			if err := store.Put(snapshot); err != nil {
				return fmt.Errorf("failed to archive %s: %w", file, err)
			}
			log.Info("Archived slice", "slice", snapshot.Id(), "file", file)
		}
		return nil
	})
}

func archiveGet(context *cli.Context) error {
	if context.Args().Len() < 1 || context.Args().Len() > 2 {
		return fmt.Errorf("expected slice id and optional output file")
	}
	id := context.Args().Get(0)
	return withArchive(context, func(store *archive.Archive) error {
		if context.Args().Len() == 2 {
			snapshot, err := store.Get(id)
			if err != nil {
				return err
			}
			return slice.WriteFile(context.Args().Get(1), snapshot, false)
		}
		data, err := store.GetRaw(id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(context.App.Writer, "%s\n", data)
		return err
	})
}

func archiveList(context *cli.Context) error {
	return withArchive(context, func(store *archive.Archive) error {
		ids, err := store.Ids()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(context.App.Writer, id)
		}
		return nil
	})
}
