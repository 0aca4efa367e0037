package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/evdash/internal/store"
)

var passesLimit int

var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List recorded render passes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		if st == nil {
			return eris.New("audit log is disabled, set store.driver to sqlite or postgres")
		}
		defer st.Close() //nolint:errcheck

		passes, err := st.ListPasses(ctx, passesLimit)
		if err != nil {
			return err
		}
		if len(passes) == 0 {
			fmt.Fprintln(os.Stderr, "No render passes recorded.")
			return nil
		}

		formatPassesList(os.Stdout, passes)
		return nil
	},
}

func init() {
	passesCmd.Flags().IntVar(&passesLimit, "limit", 50, "max passes to display")
	rootCmd.AddCommand(passesCmd)
}

// formatPassesList writes a tabular pass listing to w.
func formatPassesList(out io.Writer, passes []store.PassRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCREATED\tRANGE\tCITY\tACCESS\tSTATIONS\tDURATION")
	_, _ = fmt.Fprintln(w, "--\t-------\t-----\t----\t------\t--------\t--------")
	for _, p := range passes {
		city := p.City
		if city == "" {
			city = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s..%s\t%s\t%s\t%d\t%dms\n",
			truncateID(p.ID),
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.Start.Format("2006-01-02"),
			p.End.Format("2006-01-02"),
			city,
			strings.Join(p.AccessCodes, ","),
			p.StationCount,
			p.DurationMS,
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
