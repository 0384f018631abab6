package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aryanadla/twinTrim/internal/controller"
	"github.com/aryanadla/twinTrim/internal/domain"
	m "github.com/aryanadla/twinTrim/internal/model"
)

var scanAllFlag bool
var scanPreviewFlag bool
var scanExportFlag string
var scanMinSizeFlag string
var scanMaxSizeFlag string
var scanFileTypeFlag string
var scanExcludeFlag []string
var scanParallelFlag int
var scanExportFormatFlag string
var scanLabelColorFlag string
var scanBarColorFlag string

const scanLongDescription = `Find duplicate files in DIRECTORY and manage them.

Duplicates are detected by content hash; only files whose size collides
with another candidate are ever read. Without --all or --preview, each
duplicate set gets an interactive prompt to pick the files to delete.`

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan DIRECTORY",
		Short: "Find and manage duplicate files in a directory",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildFilter()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ui := controller.NewConsoleUI(out, consoleOptions(out)...)

			return newWorkflow(ui).Scan(cmd.Context(), domain.ScanArgs{
				Root:         m.Path(args[0]),
				Filter:       filter,
				Workers:      viper.GetInt(parallelConfigKey),
				DeleteAll:    scanAllFlag,
				Preview:      scanPreviewFlag,
				ExportPath:   m.Path(scanExportFlag),
				ExportFormat: viper.GetString(exportFormatConfigKey),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&scanAllFlag, allFlagName, false,
		"delete duplicates automatically without asking")
	cmd.Flags().BoolVar(&scanPreviewFlag, previewFlagName, false,
		"list duplicates without deleting them")
	cmd.Flags().StringVar(&scanExportFlag, exportFlagName, "",
		"export duplicate details to the given file")

	cmd.Flags().StringVar(&scanMinSizeFlag, minSizeFlagName,
		viper.GetString(minSizeConfigKey), "minimum file size (e.g. 10kb)")
	bindFlagToConfig(cmd.Flags().Lookup(minSizeFlagName), minSizeConfigKey)

	cmd.Flags().StringVar(&scanMaxSizeFlag, maxSizeFlagName,
		viper.GetString(maxSizeConfigKey), "maximum file size (e.g. 1gb)")
	bindFlagToConfig(cmd.Flags().Lookup(maxSizeFlagName), maxSizeConfigKey)

	cmd.Flags().StringVar(&scanFileTypeFlag, fileTypeFlagName,
		viper.GetString(fileTypeConfigKey), "regexp over the file extension (e.g. \\.txt$)")
	bindFlagToConfig(cmd.Flags().Lookup(fileTypeFlagName), fileTypeConfigKey)

	cmd.Flags().StringArrayVarP(&scanExcludeFlag, excludeFlagName, "x",
		viper.GetStringSlice(excludeConfigKey), "file name to exclude (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.Flags().IntVarP(&scanParallelFlag, parallelFlagName, "p",
		viper.GetInt(parallelConfigKey), "number of parallel hashing workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().StringVar(&scanExportFormatFlag, exportFormatFlagName,
		viper.GetString(exportFormatConfigKey), "export format: text or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(exportFormatFlagName), exportFormatConfigKey)

	cmd.Flags().StringVar(&scanLabelColorFlag, labelColorFlagName,
		viper.GetString(labelColorConfigKey), "color of the progress bar label")
	bindFlagToConfig(cmd.Flags().Lookup(labelColorFlagName), labelColorConfigKey)

	cmd.Flags().StringVar(&scanBarColorFlag, barColorFlagName,
		viper.GetString(barColorConfigKey), "color of the progress bar")
	bindFlagToConfig(cmd.Flags().Lookup(barColorFlagName), barColorConfigKey)
}

// buildFilter parses the human-readable size bounds once, at configuration
// time, and compiles the filter. Downstream code only sees typed values.
func buildFilter() (*m.FileFilter, error) {
	minSize, err := m.ParseSize(viper.GetString(minSizeConfigKey))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", minSizeFlagName, err)
	}

	maxSize, err := m.ParseSize(viper.GetString(maxSizeConfigKey))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", maxSizeFlagName, err)
	}

	filter, err := m.NewFileFilter(m.FilterOptions{
		MinSize:     minSize,
		MaxSize:     maxSize,
		TypePattern: viper.GetString(fileTypeConfigKey),
		Exclude:     viper.GetStringSlice(excludeConfigKey),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	return filter, nil
}

func consoleOptions(out io.Writer) []controller.ConsoleOption {
	opts := []controller.ConsoleOption{
		controller.WithLabelColor(viper.GetString(labelColorConfigKey)),
		controller.WithBarColor(viper.GetString(barColorConfigKey)),
		controller.WithInteractive(isTerminal(out) && !scanAllFlag && !scanPreviewFlag),
	}

	if viper.GetBool(noColorConfigKey) {
		opts = append(opts, controller.WithColorsDisabled())
	}

	return opts
}

// isTerminal reports whether the command's output writer is a terminal. The
// prompt only runs against the writer it would render to, so a redirected
// output never blocks on interactive input.
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && controller.IsTTY(f)
}
