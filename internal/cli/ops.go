package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type opList []OpInfo

func (l opList) String() string {
	var b strings.Builder
	for _, o := range l {
		fmt.Fprintf(&b, "%-15s %s\n", o.Name, o.Help)
	}
	return b.String()
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List script operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return formatter.Success(opList(Ops))
		},
	}
}
