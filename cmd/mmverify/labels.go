package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/metamath-go/mmverify/mm/session"
)

var labelsVerbosity int

func init() {
	labelsCmd.Flags().CountVarP(&labelsVerbosity, "verbose", "v", "increase diagnostic verbosity (-v, -vv)")
}

var labelsCmd = &cobra.Command{
	Use:   "labels <database.mm>",
	Short: "Parse a database and print its declared labels",
	Long:  "Parses (without verifying) a Metamath database and prints every declared label along with its kind, the session.Session.Labels() introspection surface.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		sess := session.New(labelsVerbosity)

		if err := sess.IngestFile(path, false); err != nil {
			return err
		}

		entries := sess.Labels()
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("%-20s %s\n", name, entries[name].Kind)
		}
		return nil
	},
}
