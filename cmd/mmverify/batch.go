package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/session"
)

var (
	batchVerbosity int
	batchCheck     bool
)

func init() {
	batchCmd.Flags().CountVarP(&batchVerbosity, "verbose", "v", "increase diagnostic verbosity (-v, -vv)")
	batchCmd.Flags().BoolVar(&batchCheck, "check", true, "verify $p proofs as they are read (disable to parse-only)")
}

var batchCmd = &cobra.Command{
	Use:   "batch <database.mm>...",
	Short: "Verify several independent databases concurrently",
	Long: `batch ingests each argument as its own database with its own session
(frame stack and label table), driving them concurrently via
session.IngestAll. This is a host fanning out independent sessions, not
parallel verification within a single database (§5 keeps that
single-threaded).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := session.IngestAll(context.Background(), args, batchCheck, batchVerbosity)
		if err != nil {
			if ve, ok := err.(*mmerr.VerificationError); ok {
				fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString(ve.Kind.Code()), ve.Error())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return err
		}
		for i, sess := range sessions {
			fmt.Printf("%s %s: %d label(s) declared\n", color.GreenString("ok"), args[i], len(sess.Labels()))
		}
		return nil
	},
}
