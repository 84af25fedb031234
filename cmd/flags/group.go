// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GroupedFlags is a titled subset of a command's flags shown together in help.
type GroupedFlags struct {
	Name    string
	FlagSet *pflag.FlagSet
}

// RegisterFlagGroup declares flags through register and adds them to cmd.
func RegisterFlagGroup(cmd *cobra.Command, name string, register func(set *pflag.FlagSet)) GroupedFlags {
	set := pflag.NewFlagSet(name, pflag.ContinueOnError)
	register(set)
	cmd.Flags().AddFlagSet(set)
	return GroupedFlags{Name: name, FlagSet: set}
}

// WithGroupedHelp prints the usage with each group under its own heading
// followed by the remaining local and global flags.
func WithGroupedHelp(groups []GroupedFlags) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		desc := cmd.Long
		if desc == "" {
			desc = cmd.Short
		}
		if desc != "" {
			fmt.Fprintln(w, desc)
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Usage:\n  %s\n", cmd.UseLine())

		grouped := map[string]bool{}
		for _, g := range groups {
			g.FlagSet.VisitAll(func(f *pflag.Flag) { grouped[f.Name] = true })
			fmt.Fprintf(w, "\n%s:\n%s", g.Name, g.FlagSet.FlagUsages())
		}
		rest := pflag.NewFlagSet("flags", pflag.ContinueOnError)
		cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
			if !grouped[f.Name] {
				rest.AddFlag(f)
			}
		})
		if rest.HasFlags() {
			fmt.Fprintf(w, "\nFlags:\n%s", rest.FlagUsages())
		}
		if cmd.HasAvailableInheritedFlags() {
			fmt.Fprintf(w, "\nGlobal Flags:\n%s", cmd.InheritedFlags().FlagUsages())
		}
	}
}
