package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/symptom-advisor/internal/advisor"
	"github.com/couchcryptid/symptom-advisor/internal/config"
	"github.com/couchcryptid/symptom-advisor/internal/domain"
	"github.com/couchcryptid/symptom-advisor/internal/observability"
)

func newAskCmd() *cobra.Command {
	var speech bool
	cmd := &cobra.Command{
		Use:     "ask <text>",
		Short:   "Answer one chat turn and exit",
		Example: `  advisor ask "I have a headache"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, strings.Join(args, " "), speech)
		},
	}
	cmd.Flags().BoolVar(&speech, "speech", false, "print the narration text instead of the formatted reply")
	return cmd
}

func runAsk(cmd *cobra.Command, input string, speech bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so stdout carries only the reply.
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := advisor.New(logger, observability.NewMetricsWithRegisterer(prometheus.NewRegistry()))

	if err := loadKnowledgeBase(cmd.Context(), cfg, svc, logger); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: answering without a knowledge base:", err)
	}

	reply := svc.Respond(cmd.Context(), input)
	out := cmd.OutOrStdout()
	if speech {
		fmt.Fprintln(out, domain.SpeechText(reply.Text))
	} else {
		fmt.Fprintln(out, reply.Text)
	}
	if reply.Definition != "" {
		fmt.Fprintf(out, "\n%s\n", reply.Definition)
	}
	if reply.Emergency {
		fmt.Fprintln(out, "\nThis may be an emergency. Get help now:")
		for _, c := range domain.EmergencyGuidance().Contacts {
			fmt.Fprintf(out, "  %s: %s\n", c.Name, c.Number)
		}
	}
	return nil
}
