package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/clay"
)

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute element ids",
	}
	cmd.AddCommand(newHashStringCmd())
	cmd.AddCommand(newHashNumberCmd())
	return cmd
}

func newHashStringCmd() *cobra.Command {
	var offset, seed uint32

	cmd := &cobra.Command{
		Use:   "string <key>",
		Short: "Hash a string id",
		Long: `Hash a string id with the core's string hash.

With the defaults (offset 0, seed 0) this is the global id of the key.
For a local id with an index, pass --seed <parent id> and
--offset <parent child count + 1 + index>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := clay.HashString(args[0], offset, seed)
			loggerFromContext(cmd.Context()).Debug("hashed string", "key", args[0], "offset", offset, "seed", seed)
			printID(cmd, id)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&offset, "offset", 0, "offset mixed into the hash")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "parent id")
	return cmd
}

func newHashNumberCmd() *cobra.Command {
	var seed uint32

	cmd := &cobra.Command{
		Use:   "number <offset>",
		Short: "Hash a numeric offset (anonymous element id)",
		Long: `Hash a numeric offset with the core's number hash.

An anonymous element gets "hash number <parent child count> --seed <parent id>".
This is also the id NextHovered looks for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[0], err)
			}
			printID(cmd, clay.HashNumber(uint32(offset), seed))
			return nil
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 0, "parent id")
	return cmd
}

func printID(cmd *cobra.Command, id clay.ElementID) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", StyleLabel.Render("id:    "), StyleNumber.Render(strconv.FormatUint(uint64(id.ID), 10)))
	fmt.Fprintf(out, "%s %d\n", StyleLabel.Render("offset:"), id.Offset)
	fmt.Fprintf(out, "%s %d\n", StyleLabel.Render("base:  "), id.BaseID)
	if id.StringID != clay.DefaultStringID {
		fmt.Fprintf(out, "%s %q\n", StyleLabel.Render("string:"), id.StringID)
	}
}
