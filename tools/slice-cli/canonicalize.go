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
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var Canonicalize = cli.Command{
	Action:    canonicalize,
	Name:      "canonicalize",
	Usage:     "re-encodes a slice document in its canonical form",
	ArgsUsage: "<input> [<output>]",
	Flags: []cli.Flag{
		&indentFlag,
	},
}

var (
	indentFlag = cli.BoolFlag{
		Name:  "indent",
		Usage: "indent the produced document",
	}
)

func canonicalize(context *cli.Context) error {
	if context.Args().Len() < 1 || context.Args().Len() > 2 {
		return fmt.Errorf("expected input file and optional output file")
	}
	in := context.Args().Get(0)
	indent := context.Bool(indentFlag.Name)

	snapshot, err := slice.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}

	if context.Args().Len() == 2 {
		out := context.Args().Get(1)
		if err := slice.WriteFile(out, snapshot, indent); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		log.Info("Wrote canonical document", "slice", snapshot.Id(), "file", out)
		return nil
	}

	var data []byte
	if indent {
		data, err = slice.EncodeIndent(snapshot, "", "\t")
	} else {
		data, err = slice.Encode(snapshot)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(context.App.Writer, "%s\n", data)
	return err
}
