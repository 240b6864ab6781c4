package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
)

const (
	formatJSON = "json"
	formatText = "text"
)

type classifyFlags struct {
	format string
	stdin  bool
}

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	flags := &classifyFlags{}
	classifier := deviceinfo.New(deviceinfo.WithLogger(log))

	cmd := &cobra.Command{
		Use:   "deviceinfo [user-agent]",
		Short: "Classify a browser user agent into OS, device, engine and browser.",
		Long: "Classify a browser user agent into OS, device, engine and browser.\n\n" +
			"Without arguments the DEVICEINFO_DEFAULT_USER_AGENT value is classified.",
		// the user agent is passed unquoted as often as quoted
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.format != formatJSON && flags.format != formatText {
				return fmt.Errorf("unsupported output format %q", flags.format)
			}
			out := cmd.OutOrStdout()

			if flags.stdin {
				return classifyLines(classifier, cmd.InOrStdin(), out, flags.format)
			}

			ua := cfg.DefaultUserAgent
			if len(args) > 0 {
				ua = strings.Join(args, " ")
			}
			return writeInfo(out, classifier.Classify(ua), flags.format)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "output", "o", formatJSON, "output format: json or text")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "classify every line read from stdin")

	cmd.AddCommand(newServeCmd(cfg, log, classifier))
	return cmd
}

func classifyLines(c *deviceinfo.Classifier, in io.Reader, out io.Writer, format string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := writeInfo(out, c.Classify(line), format); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func writeInfo(w io.Writer, info deviceinfo.DeviceInfo, format string) error {
	if format == formatText {
		label := color.New(color.Bold).SprintFunc()
		_, err := fmt.Fprintf(w, "%s %s %s\n%s %s %s\n%s %s\n%s %s\n",
			label("browser:"), info.Browser, info.BrowserVersion,
			label("os:     "), info.OS, info.OSVersion,
			label("device: "), info.Device,
			label("engine: "), info.Engine,
		)
		return err
	}
	return json.NewEncoder(w).Encode(info)
}
