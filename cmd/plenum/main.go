package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/coolbeans/plenum/pkg/bundestag"
	"github.com/coolbeans/plenum/pkg/evaluate"
	"github.com/coolbeans/plenum/pkg/government"
	"github.com/coolbeans/plenum/pkg/protocol"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "plenum",
		Short: "Bundestag Plenary Protocol Extractor",
		Long: `Plenum extracts individual speeches from Bundestag plenary
protocols and scores the extraction against a reference.

It ingests raw protocol text and produces:
  - Structured speeches with speaker, party, and role attribution
  - Speech-type classification (Rede, Fragestunde, Zwischenfrage, ...)
  - Per-speaker and per-party contribution statistics
  - Precision/recall/F1 evaluation against a reference extraction`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(sessionsCmd())
	rootCmd.AddCommand(aggregateCmd())
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract speeches from a protocol text file",
		Long: `Extract individual speeches from a plenary protocol.

Example:
  plenum parse --source protocol-21-6.txt
  plenum parse --source protocol-21-6.txt --output speeches.json
  plenum parse --source protocol-21-6.txt --roster cabinet.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			rosterPath, _ := cmd.Flags().GetString("roster")
			showStats, _ := cmd.Flags().GetBool("stats")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			text, err := readSource(source)
			if err != nil {
				return err
			}

			parser, err := buildParser(rosterPath)
			if err != nil {
				return err
			}

			fmt.Printf("Parsing protocol from: %s\n", source)
			startTime := time.Now()
			speeches := parser.ParseSpeeches(text)
			fmt.Printf("Extracted %d speeches in %v\n", len(speeches), time.Since(startTime).Round(time.Millisecond))

			if showStats {
				printSpeechStats(speeches)
			}

			return writeJSON(output, speeches)
		},
	}

	cmd.Flags().String("source", "", "Path to the protocol text file (required)")
	cmd.Flags().String("output", "", "Write speeches as JSON to this file (default: stdout)")
	cmd.Flags().String("roster", "", "YAML file overlaying the government roster")
	cmd.Flags().Bool("stats", false, "Print per-type speech counts")

	return cmd
}

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Show Befragung and Fragestunde ranges in a protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			text, err := readSource(source)
			if err != nil {
				return err
			}

			cleaned := protocol.CleanText(text)
			ranges := protocol.FindSessionRanges(cleaned)
			if len(ranges) == 0 {
				fmt.Println("No question sessions found.")
				return nil
			}

			for _, sessionRange := range ranges {
				fmt.Printf("%-12s %8d .. %d\n", sessionRange.Kind, sessionRange.Start, sessionRange.End)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to the protocol text file (required)")

	return cmd
}

func aggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate speech counts by party and speaker",
		Long: `Extract speeches and aggregate them into per-party, per-speaker
contribution statistics, split by contribution kind.

Example:
  plenum aggregate --source protocol-21-6.txt --output stats.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			rosterPath, _ := cmd.Flags().GetString("roster")

			if source == "" {
				return fmt.Errorf("--source flag is required")
			}

			text, err := readSource(source)
			if err != nil {
				return err
			}

			parser, err := buildParser(rosterPath)
			if err != nil {
				return err
			}

			speeches := parser.ParseSpeeches(text)
			aggregation := protocol.Aggregate(speeches)

			fmt.Printf("Aggregated %d speeches\n", len(speeches))
			fmt.Println("\nFormal speeches by party:")
			for party, count := range aggregation.RedeCounts {
				fmt.Printf("  %-20s %d\n", party, count)
			}
			fmt.Println("\nOther contributions by party:")
			for party, count := range aggregation.WortbeitragCounts {
				fmt.Printf("  %-20s %d\n", party, count)
			}

			if output != "" {
				return writeJSON(output, aggregation)
			}
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to the protocol text file (required)")
	cmd.Flags().String("output", "", "Write aggregation as JSON to this file")
	cmd.Flags().String("roster", "", "YAML file overlaying the government roster")

	return cmd
}

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score the extraction against a reference",
		Long: `Evaluate the speech extraction of one or more protocols against
reference extractions stored as JSON files (one <id>.json per protocol).

Example:
  plenum evaluate --source protocol-21-6.txt --id 21-6 --references refs/
  plenum evaluate --source protocol-21-6.txt --id 21-6 --references refs/ --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			protocolID, _ := cmd.Flags().GetString("id")
			docNumber, _ := cmd.Flags().GetString("doc-number")
			referenceDir, _ := cmd.Flags().GetString("references")
			rosterPath, _ := cmd.Flags().GetString("roster")
			asJSON, _ := cmd.Flags().GetBool("json")

			if source == "" || protocolID == "" || referenceDir == "" {
				return fmt.Errorf("--source, --id, and --references flags are required")
			}

			text, err := readSource(source)
			if err != nil {
				return err
			}

			parser, err := buildParser(rosterPath)
			if err != nil {
				return err
			}

			evaluator := evaluate.NewEvaluator(&evaluate.FileProvider{Dir: referenceDir})
			evaluator.Parser = parser

			results, err := evaluator.EvaluateProtocols(cmd.Context(), []evaluate.ProtocolDocument{
				{ID: protocolID, DocumentNumber: docNumber, FullText: text},
			})
			if err != nil {
				return err
			}

			result := results[0]
			if asJSON {
				data, err := result.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to serialize result: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Print(result.String())
			return nil
		},
	}

	cmd.Flags().String("source", "", "Path to the protocol text file (required)")
	cmd.Flags().String("id", "", "Protocol ID used to locate the reference file (required)")
	cmd.Flags().String("doc-number", "", "Official document number, e.g. 21/6")
	cmd.Flags().String("references", "", "Directory of reference JSON files (required)")
	cmd.Flags().String("roster", "", "YAML file overlaying the government roster")
	cmd.Flags().Bool("json", false, "Emit the full result as JSON")

	return cmd
}

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [protocol-id]",
		Short: "Fetch a protocol's full text from the DIP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, _ := cmd.Flags().GetString("api-key")
			output, _ := cmd.Flags().GetString("output")

			if apiKey == "" {
				apiKey = os.Getenv("DIP_API_KEY")
			}
			if apiKey == "" {
				return fmt.Errorf("--api-key flag or DIP_API_KEY environment variable is required")
			}

			config := bundestag.DefaultConfig()
			config.APIKey = apiKey
			client := bundestag.NewClient(config)

			fmt.Printf("Fetching protocol %s...\n", args[0])
			fetched, err := client.FetchProtocolText(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Fetched %s (%s, %d chars)\n", fetched.DocumentNumber, fetched.Date, len(fetched.FullText))

			if output == "" {
				output = "protocol-" + args[0] + ".txt"
			}
			if err := os.WriteFile(output, []byte(fetched.FullText), 0644); err != nil {
				return fmt.Errorf("failed to write protocol text: %w", err)
			}
			fmt.Printf("Wrote: %s\n", output)
			return nil
		},
	}

	cmd.Flags().String("api-key", "", "DIP API key (or set DIP_API_KEY)")
	cmd.Flags().String("output", "", "Output file (default: protocol-<id>.txt)")

	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [election-period]",
		Short: "List plenary protocols for an election period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, _ := cmd.Flags().GetString("api-key")

			if apiKey == "" {
				apiKey = os.Getenv("DIP_API_KEY")
			}
			if apiKey == "" {
				return fmt.Errorf("--api-key flag or DIP_API_KEY environment variable is required")
			}

			electionPeriod, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid election period %q: %w", args[0], err)
			}

			config := bundestag.DefaultConfig()
			config.APIKey = apiKey
			client := bundestag.NewClient(config)

			protocols, err := client.ListProtocols(electionPeriod)
			if err != nil {
				return err
			}

			fmt.Printf("Found %d protocols for period %d:\n", len(protocols), electionPeriod)
			for _, p := range protocols {
				fmt.Printf("  %-10s %-12s %s\n", p.ID, p.Date, p.DocumentNumber)
			}
			return nil
		},
	}

	cmd.Flags().String("api-key", "", "DIP API key (or set DIP_API_KEY)")

	return cmd
}

// readSource loads the protocol text from a file.
func readSource(source string) (string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("source file not found: %s", source)
		}
		return "", fmt.Errorf("failed to read source: %w", err)
	}
	return string(data), nil
}

// buildParser creates a parser, overlaying a roster file when given.
func buildParser(rosterPath string) (*protocol.Parser, error) {
	if rosterPath == "" {
		return protocol.NewParser(), nil
	}
	roster, err := government.LoadRoster(rosterPath)
	if err != nil {
		return nil, err
	}
	return protocol.NewParserWithRoster(roster), nil
}

// printSpeechStats prints per-type counts for a speech list.
func printSpeechStats(speeches []protocol.Speech) {
	counts := make(map[protocol.SpeechType]int)
	for _, speech := range speeches {
		counts[speech.Type]++
	}

	fmt.Println("\nSpeeches by type:")
	for speechType, count := range counts {
		fmt.Printf("  %-22s %d\n", speechType, count)
	}
}

// writeJSON serializes v and writes it to path, or stdout when path is empty.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Wrote: %s\n", path)
	return nil
}
