package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL of a running storefront server
	serverURL   string
	adminSecret string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Unlock an admin session and print its bearer token",
	Long: `Unlock an admin console session on a running server and print the
bearer token for scripted admin calls.

Examples:
  TOKEN=$(storefront token --secret "$ADMIN_SECRET")
  curl -H "Authorization: Bearer $TOKEN" http://localhost:8080/api/admin/stats`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "storefront server URL")
	tokenCmd.Flags().StringVar(&adminSecret, "secret", "", "admin console secret")
	_ = tokenCmd.MarkFlagRequired("secret")
}

func runToken(cmd *cobra.Command, _ []string) error {
	body, err := json.Marshal(map[string]string{"secret": adminSecret})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	token, err := requestToken(cmd.Context(), strings.TrimRight(serverURL, "/")+"/api/admin/session", body)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func requestToken(ctx context.Context, url string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return out.Token, nil
}
