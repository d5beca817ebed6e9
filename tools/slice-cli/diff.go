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
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var Diff = cli.Command{
	Action:    diff,
	Name:      "diff",
	Usage:     "lists the differences between two slice documents",
	ArgsUsage: "<before> <after>",
	Flags: []cli.Flag{
		&mergePatchFlag,
	},
}

var (
	mergePatchFlag = cli.BoolFlag{
		Name:  "merge-patch",
		Usage: "print the differences as JSON merge patch (RFC 7386)",
	}
)

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
	changedColor = color.New(color.FgYellow)
	fieldColor   = color.New(color.Bold)
)

func diff(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected two slice documents")
	}
	before, err := readCanonical(context.Args().Get(0))
	if err != nil {
		return err
	}
	after, err := readCanonical(context.Args().Get(1))
	if err != nil {
		return err
	}

	out := context.App.Writer
	if jsonpatch.Equal(before.data, after.data) {
		fmt.Fprintln(out, "Slices are identical")
		return nil
	}

	if context.Bool(mergePatchFlag.Name) {
		patch, err := jsonpatch.CreateMergePatch(before.data, after.data)
		if err != nil {
			return fmt.Errorf("failed to create merge patch: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", patch)
		return err
	}

	delta := slice.Diff(before.snapshot, after.snapshot)
	if delta.IdBefore != delta.IdAfter {
		fieldColor.Fprintf(out, "slice-id:")
		fmt.Fprintf(out, " %s -> %s\n", delta.IdBefore, delta.IdAfter)
	}
	for _, field := range delta.Presence {
		fieldColor.Fprintf(out, "%s:", field)
		fmt.Fprintln(out, " presence changed")
	}
	for _, section := range delta.Sections() {
		if section.Keys.Empty() {
			continue
		}
		fieldColor.Fprintf(out, "%s:\n", section.Field)
		for _, key := range section.Keys.Added {
			addedColor.Fprintf(out, "\t+ %s\n", key)
		}
		for _, key := range section.Keys.Removed {
			removedColor.Fprintf(out, "\t- %s\n", key)
		}
		for _, key := range section.Keys.Changed {
			changedColor.Fprintf(out, "\t~ %s\n", key)
		}
	}
	return nil
}

type document struct {
	snapshot slice.Snapshot
	data     []byte
}

// readCanonical reads a slice document and re-encodes it, such that
// formatting differences of the files do not show up as differences.
func readCanonical(file string) (document, error) {
	snapshot, err := slice.ReadFile(file)
	if err != nil {
		return document{}, fmt.Errorf("failed to read %s: %w", file, err)
	}
	data, err := slice.Encode(snapshot)
	if err != nil {
		return document{}, err
	}
	return document{snapshot: snapshot, data: data}, nil
}
