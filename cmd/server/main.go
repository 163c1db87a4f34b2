// Command server runs the writing lab HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; DATABASE_DSN and LLM_API_KEY are required.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/heartmarshall/linglual-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		slog.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
