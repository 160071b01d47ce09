package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/session"
)

var (
	verifyVerbosity int
	verifyCheck     bool
)

func init() {
	verifyCmd.Flags().CountVarP(&verifyVerbosity, "verbose", "v", "increase diagnostic verbosity (-v, -vv)")
	verifyCmd.Flags().BoolVar(&verifyCheck, "check", true, "verify $p proofs as they are read (disable to parse-only)")
}

var verifyCmd = &cobra.Command{
	Use:   "verify <database.mm>",
	Short: "Parse and check a Metamath database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		sess := session.New(verifyVerbosity)

		if err := sess.IngestFile(path, verifyCheck); err != nil {
			if ve, ok := err.(*mmerr.VerificationError); ok {
				fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString(ve.Kind.Code()), ve.Error())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			return err
		}

		labels := sess.Labels()
		fmt.Printf("%s %s: %d label(s) declared\n", color.GreenString("ok"), path, len(labels))
		return nil
	},
}
