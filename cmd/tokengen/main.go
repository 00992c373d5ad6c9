// Package main generates console session tokens for local development.
// Tokens are signed with the dev key unless -key is given and will NOT work in production.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"soloparent/internal/session"
	"soloparent/pkg/domain"
)

const (
	// Matches config.go when SESSION_SIGNING_KEY is not set
	devSigningKey = "dev-console-key-change-in-production"

	defaultTTL = 8 * time.Hour
)

type tokenOutput struct {
	Token     string            `json:"token"`
	ExpiresIn string            `json:"expires_in"`
	Claims    map[string]string `json:"claims"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	adminID := flag.String("admin-id", "1", "Administrator user id")
	region := flag.String("barangay", "", "Barangay the administrator is assigned to (required)")
	backendToken := flag.String("backend-token", "", "Bearer token forwarded to the welfare backend")
	key := flag.String("key", devSigningKey, "Session signing key")
	ttl := flag.Duration("ttl", defaultTTL, "Token time-to-live")
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	flag.Usage = printUsage
	flag.Parse()

	sess, err := parseSession(*adminID, *region, *backendToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid session: %v\n\n", err)
		printUsage()
		os.Exit(1)
	}

	token, err := session.NewTokenService(*key, *ttl).Issue(sess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(tokenOutput{
			Token:     token,
			ExpiresIn: ttl.String(),
			Claims: map[string]string{
				"admin_id": sess.AdminID.String(),
				"barangay": sess.Region.String(),
			},
			Usage: map[string]string{
				"header": "Authorization: Bearer <token>",
			},
		})
		return
	}

	fmt.Println("Console Session Token")
	fmt.Println("=====================")
	fmt.Printf("Admin ID:    %s\n", sess.AdminID)
	fmt.Printf("Barangay:    %s\n", sess.Region)
	fmt.Printf("Expires In:  %s\n", *ttl)
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/console/...")
}

func parseSession(adminID, region, backendToken string) (domain.Session, error) {
	id, err := domain.ParseAdminID(adminID)
	if err != nil {
		return domain.Session{}, err
	}
	r, err := domain.ParseRegion(region)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{AdminID: id, Region: r, BackendToken: backendToken}, nil
}

func printUsage() {
	fmt.Println(`tokengen - Generate console session tokens

WARNING: Tokens use the dev signing key unless -key is given.
         Only use for local development and testing.

Usage:
  tokengen -barangay "San Isidro" [flags]

Examples:
  tokengen -barangay "San Isidro" -admin-id 7
  tokengen -barangay "San Isidro" -backend-token "$BACKEND_TOKEN" -ttl 1h -json

Flags:`)
	flag.PrintDefaults()
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
