package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// OAuth2Credentials holds the OAuth2 client identity
type OAuth2Credentials struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	RedirectURIs []string `json:"redirect_uris"`
	AuthURI      string   `json:"auth_uri"`
	TokenURI     string   `json:"token_uri"`
}

// GoogleCredentialsFile matches credentials.json from Google Cloud Console
type GoogleCredentialsFile struct {
	Installed *OAuth2Credentials `json:"installed,omitempty"`
	Web       *OAuth2Credentials `json:"web,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: calendar-auth-helper <credentials.json>")
	}

	credentialsData, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read credentials file: %v", err)
	}

	credentials, err := parseGoogleCredentials(credentialsData)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v", err)
	}

	config := &oauth2.Config{
		ClientID:     credentials.ClientID,
		ClientSecret: credentials.ClientSecret,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Printf("Google Calendar OAuth2 Authorization Helper\n")
	fmt.Printf("===========================================\n")
	fmt.Printf("1. Open this URL in your browser:\n")
	fmt.Printf("   %s\n\n", authURL)
	fmt.Printf("2. Authorize the application\n")
	fmt.Printf("3. Copy the authorization code and enter it below\n\n")
	fmt.Printf("Enter the authorization code: ")

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	token, err := config.Exchange(context.Background(), authCode)
	if err != nil {
		log.Fatalf("Failed to exchange code for token: %v", err)
	}

	fmt.Printf("\nSuccessfully obtained tokens!\n")
	fmt.Printf("===========================================\n")
	fmt.Printf("Add these to your .env file:\n\n")
	fmt.Printf("GOOGLE_CLIENT_ID='%s'\n", credentials.ClientID)
	fmt.Printf("GOOGLE_CLIENT_SECRET='%s'\n", credentials.ClientSecret)
	if token.RefreshToken != "" {
		fmt.Printf("GOOGLE_REFRESH_TOKEN='%s'\n", token.RefreshToken)
	}
	fmt.Printf("\nToken details:\n")
	fmt.Printf("Access Token: %s\n", token.AccessToken[:20]+"...")
	fmt.Printf("Expires: %v\n", token.Expiry)
}

// parseGoogleCredentials accepts both the bare OAuth2 structure and the
// Google Cloud Console credentials.json wrapper.
func parseGoogleCredentials(credentialsData []byte) (*OAuth2Credentials, error) {
	var directCredentials OAuth2Credentials
	if err := json.Unmarshal(credentialsData, &directCredentials); err == nil {
		if directCredentials.ClientID != "" && directCredentials.ClientSecret != "" {
			return &directCredentials, nil
		}
	}

	var googleFile GoogleCredentialsFile
	if err := json.Unmarshal(credentialsData, &googleFile); err != nil {
		return nil, fmt.Errorf("failed to parse credentials as Google format: %w", err)
	}
	if googleFile.Installed != nil {
		return googleFile.Installed, nil
	}
	if googleFile.Web != nil {
		return googleFile.Web, nil
	}
	return nil, fmt.Errorf("no valid credentials found in JSON - expected 'installed' or 'web' section")
}
