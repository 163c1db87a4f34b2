package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/linglual-backend/internal/feedback"
)

type correctionOut struct {
	Original    string `json:"original"`
	Suggestion  string `json:"suggestion"`
	Explanation string `json:"explanation"`
}

type feedbackOut struct {
	Strengths    string          `json:"strengths"`
	Improvements string          `json:"improvements"`
	Corrections  []correctionOut `json:"corrections"`
	Placeholder  bool            `json:"placeholder"`
}

func newFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Work with stored feedback blobs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "render <file|->",
		Short: "Parse a feedback blob and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			return renderFeedback(cmd.OutOrStdout(), string(raw))
		},
	})
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feedback: %w", err)
	}
	return b, nil
}

func renderFeedback(w io.Writer, blob string) error {
	fb := feedback.Parse(blob)

	out := feedbackOut{
		Strengths:    fb.Strengths,
		Improvements: fb.Improvements,
		Corrections:  make([]correctionOut, 0, len(fb.Corrections)),
	}
	for _, c := range fb.Corrections {
		out.Corrections = append(out.Corrections, correctionOut{
			Original:    c.Original,
			Suggestion:  c.Suggestion,
			Explanation: c.Explanation,
		})
	}
	out.Placeholder = len(fb.Corrections) == 1 && fb.Corrections[0].IsPlaceholder()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
