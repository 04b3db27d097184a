package cli

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dushyant778/ecofarm/internal/assistant"
	"github.com/Dushyant778/ecofarm/internal/config"
)

var (
	imagePath        string
	endpointOverride string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI advisor a farming question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&imagePath, "image", "", "path to a crop/farm JPEG to analyze")
	askCmd.Flags().StringVar(&endpointOverride, "endpoint", "", "proxy endpoint URL (overrides config)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if endpointOverride != "" {
		cfg.Client.Endpoint = endpointOverride
	}

	// Diagnostics go to stderr so the answer stays pipeable.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	client, err := assistant.New(log, cfg.Client)
	if err != nil {
		return fmt.Errorf("failed to create assistant client: %w", err)
	}

	question := strings.Join(args, " ")

	var answer string
	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image %s: %w", imagePath, err)
		}
		answer = client.GetAIResponseWithImage(cmd.Context(), question, base64.StdEncoding.EncodeToString(data))
	} else {
		answer = client.GetAIResponse(cmd.Context(), question)
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
