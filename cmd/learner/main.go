package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mind-engage/serendipity-ink/internal/config"
	"github.com/mind-engage/serendipity-ink/internal/grading"
	"github.com/mind-engage/serendipity-ink/internal/learner"
	"github.com/mind-engage/serendipity-ink/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ruleOpts, err := grading.LoadRulesFile(cfg.GradingRulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "grading rules: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess := learner.NewSession(grading.NewDefaultGrader(ruleOpts...))
	app := ui.NewApp(sess, os.Stdin, os.Stdout, ui.FZFPicker{}, nil)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
