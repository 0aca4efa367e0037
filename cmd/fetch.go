package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/evdash/internal/fetcher"
)

var (
	fetchURL string
	fetchOut string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a dataset file over HTTP(S) or FTP",
	Long:  "Downloads a remote dataset file into the data directory. ZIP archives are extracted after download.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		httpOpts, ftpOpts := fetchOptions()
		f, err := fetcher.ForURL(fetchURL, httpOpts, ftpOpts)
		if err != nil {
			return err
		}

		out := fetchOut
		if out == "" {
			name := path.Base(fetchURL)
			if name == "." || name == "/" {
				return eris.Errorf("cannot derive a file name from %q, use --out", fetchURL)
			}
			out = filepath.Join(cfg.Data.Dir, name)
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return eris.Wrap(err, "fetch: create output dir")
		}

		n, err := f.DownloadToFile(ctx, fetchURL, out)
		if err != nil {
			return err
		}
		zap.L().Info("downloaded", zap.String("path", out), zap.Int64("bytes", n))

		if strings.EqualFold(filepath.Ext(out), ".zip") {
			extracted, err := fetcher.ExtractZIP(out, filepath.Dir(out))
			if err != nil {
				return err
			}
			zap.L().Info("extracted archive",
				zap.String("archive", out),
				zap.Strings("files", extracted),
			)
		}

		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "http(s) or ftp URL to download (required)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "output path (default: data dir + URL base name)")
	_ = fetchCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(fetchCmd)
}
