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
	"io"
	"time"

	"github.com/Fantom-foundation/trieslice/slice"
	"github.com/urfave/cli/v2"
)

var Verify = cli.Command{
	Action:    addPerformanceDiagnoses(verify),
	Name:      "verify",
	Usage:     "verifies the consistency of a slice document",
	ArgsUsage: "<file>",
}

func verify(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing slice document")
	}
	file := context.Args().Get(0)

	snapshot, err := slice.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	return slice.Verify(snapshot, &verificationObserver{out: context.App.Writer})
}

type verificationObserver struct {
	out   io.Writer
	start time.Time
}

func (o *verificationObserver) StartVerification() {
	o.start = time.Now()
	o.printHeader()
	fmt.Fprintln(o.out, "Starting verification ...")
}

func (o *verificationObserver) Progress(msg string) {
	o.printHeader()
	fmt.Fprintln(o.out, msg)
}

func (o *verificationObserver) EndVerification(res error) {
	if res == nil {
		o.printHeader()
		fmt.Fprintln(o.out, "Verification successful!")
	}
}

func (o *verificationObserver) printHeader() {
	now := time.Now()
	t := uint64(now.Sub(o.start).Seconds())
	fmt.Fprintf(o.out, "%s [t=%4d:%02d] - ", now.Format("15:04:05"), t/60, t%60)
}
