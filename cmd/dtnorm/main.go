// Command dtnorm converts timestamps between their native format encodings,
// the canonical date and time string form, and normalized POSIX seconds.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theory/dtnorm/datetime"
	_ "github.com/theory/dtnorm/datetime/formats"
	"github.com/theory/dtnorm/datetime/serializer"
)

var formatTag string

var rootCmd = &cobra.Command{
	Use:   "dtnorm",
	Short: "Date and time normalization tool",
	Long: `dtnorm converts timestamps between format-native encodings, the
canonical "YYYY-MM-DD hh:mm:ss.######" string form, and normalized
POSIX seconds.`,
	SilenceUsage: true,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered date and time formats",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(strings.Join(datetime.Formats(), "\n"))
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <date-time-string>",
	Short: "Parse a date and time string into a native timestamp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok := datetime.New(formatTag)
		if !ok {
			return fmt.Errorf("unknown format %q", formatTag)
		}
		if err := value.CopyFromDateTimeString(args[0]); err != nil {
			return err
		}
		return report(cmd, value)
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <timestamp>",
	Short: "Render a native timestamp as a date and time string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timestamp, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
		}
		value, ok := datetime.New(formatTag)
		if !ok {
			return fmt.Errorf("unknown format %q", formatTag)
		}
		conv, ok := value.(datetime.DictConvertible)
		if !ok {
			return fmt.Errorf("format %q does not take a native timestamp", formatTag)
		}

		// FATDateTime is the one format whose native integer is not named
		// "timestamp" on the wire.
		key := "timestamp"
		if formatTag == "FATDateTime" {
			key = "fat_date_time"
		}
		if err := conv.CopyFromDict(map[string]any{key: timestamp}); err != nil {
			return err
		}
		return report(cmd, value)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <serialized-dict>",
	Short: "Render a serialized date and time value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoder := json.NewDecoder(strings.NewReader(args[0]))
		decoder.UseNumber()

		var dict map[string]any
		if err := decoder.Decode(&dict); err != nil {
			return fmt.Errorf("invalid serialized value: %w", err)
		}
		value, err := serializer.CopyFromDict(dict)
		if err != nil {
			return err
		}
		return report(cmd, value)
	},
}

// report prints the serialized dict, the canonical string, and the
// normalized POSIX timestamp of value.
func report(cmd *cobra.Command, value datetime.DateTimeValues) error {
	dict, err := serializer.CopyToDict(value)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(dict)
	if err != nil {
		return err
	}
	cmd.Println(string(encoded))

	if s, ok := value.CopyToDateTimeString(); ok {
		cmd.Printf("date-time: %s\n", s)
	} else {
		cmd.Println("date-time: no value")
	}
	if n, ok := value.NormalizedTimestamp(); ok {
		cmd.Printf("normalized: %s\n", n.String())
	} else {
		cmd.Println("normalized: undetermined")
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{parseCmd, formatCmd} {
		cmd.Flags().StringVarP(&formatTag, "format", "f", "PosixTime", "date and time format tag")
	}
	rootCmd.AddCommand(formatsCmd, parseCmd, formatCmd, showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
