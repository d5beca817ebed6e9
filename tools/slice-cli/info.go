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
	"github.com/urfave/cli/v2"
)

var Info = cli.Command{
	Action:    info,
	Name:      "info",
	Usage:     "prints summary information about a slice document",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&metadataFlag,
	},
}

var (
	metadataFlag = cli.BoolFlag{
		Name:  "metadata",
		Usage: "print recorded timings and node counts",
	}
)

func info(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing slice document")
	}
	file := context.Args().Get(0)
	snapshot, err := slice.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	out := context.App.Writer
	fmt.Fprintf(out, "Slice %s\n", snapshot.Id())
	if id, err := slice.ParseId(snapshot.Id()); err != nil {
		fmt.Fprintf(out, "\tId:        %v\n", err)
	} else {
		fmt.Fprintf(out, "\tPath:      %q\n", id.Path)
		fmt.Fprintf(out, "\tMax depth: %d\n", id.MaxDepth)
		fmt.Fprintf(out, "\tRoot:      %v\n", id.Root)
	}
	fmt.Fprintf(out, "\tKind:      %v\n", snapshot.Kind())

	if nodes, present := snapshot.TrieNodes().Get(); present {
		fmt.Fprintf(out, "\tStem:      %d nodes\n", nodes.Stem().Len())
		fmt.Fprintf(out, "\tHead:      %d nodes\n", nodes.Head().Len())
		if interior, present := nodes.Slice().Get(); present {
			fmt.Fprintf(out, "\tSlice:     %d nodes\n", interior.Len())
		} else {
			fmt.Fprintf(out, "\tSlice:     -\n")
		}
	} else {
		fmt.Fprintf(out, "\tTrie nodes: -\n")
	}
	if leaves, present := snapshot.Leaves().Get(); present {
		fmt.Fprintf(out, "\tLeaves:    %d contracts\n", leaves.Len())
	} else {
		fmt.Fprintf(out, "\tLeaves:    -\n")
	}

	metadata, present := snapshot.Metadata().Get()
	if !present {
		fmt.Fprintf(out, "\tMetadata:  -\n")
		return nil
	}
	if !context.Bool(metadataFlag.Name) {
		fmt.Fprintf(out, "\tMetadata:  %d timings, %d node counts\n", metadata.Timings().Len(), metadata.NodeCounts().Len())
		return nil
	}
	fmt.Fprintf(out, "\tTimings (ms):\n")
	metadata.Timings().ForEach(func(label, value string) {
		fmt.Fprintf(out, "\t\t%-24s %s\n", label, value)
	})
	fmt.Fprintf(out, "\tNode counts:\n")
	metadata.NodeCounts().ForEach(func(label, value string) {
		fmt.Fprintf(out, "\t\t%-24s %s\n", label, value)
	})
	return nil
}
