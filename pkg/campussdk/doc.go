/*
Package campussdk provides a client SDK for the campus core service.

# Overview

The package is organized around two main types:

  - SDKClient: unauthenticated operations and session creation
  - Session: authenticated operations on behalf of one identity

Create an SDKClient to interact with public endpoints and to log in:

	client := campussdk.NewSDKClient("https://campus.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Browse a department's notice feed without logging in
	feed, err := client.ListNotices(ctx, "comp")

	// Register a student (activates immediately with a valid identifier)
	resp, err := client.Register(ctx, campussdk.RegisterRequest{
		Username:   "asha",
		Password:   "secret",
		FirstName:  "Asha",
		LastName:   "Rao",
		Department: "comp",
		Role:       "student",
		UID:        "21COMP042",
		Year:       "SE",
	})

	// Log in to create a session
	session, err := client.Login(ctx, "asha", "secret")

Use a Session for everything that needs a token:

	inbox, err := session.ListNotifications(ctx)
	err = session.MarkAllNotificationsRead(ctx)

	// Faculty and admins can publish notices
	notice, err := session.CreateNotice(ctx, campussdk.CreateNoticeRequest{
		Title:      "Midterm schedule",
		Content:    "Posted outside the department office.",
		Department: "comp",
	})

# Tokens

Sessions hold a single bearer token. Tokens are long-lived; when one expires
the session can exchange it without re-entering credentials:

	err := session.Refresh(ctx)

Refresh accepts an expired token as long as its signature still verifies and
the account is still in good standing. A session can also be rebuilt from a
persisted token:

	session := client.NewSessionFromToken(savedToken)

# Error Handling

Failed calls return *APIError carrying the HTTP status, the machine-readable
code and a description:

	_, err := client.Login(ctx, "asha", "wrong")
	var apiErr *campussdk.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.Code) // "invalid_credentials"
	}

# Bootstrap

Bootstrap is a one-time setup that creates the initial admin on an empty
system:

	resp, err := client.Bootstrap(ctx, campussdk.BootstrapRequest{
		Token:     bootstrapToken,
		Username:  "registrar",
		Password:  "secure-password",
		FirstName: "Campus",
		LastName:  "Registrar",
	})

# Thread Safety

Sessions are safe for concurrent use. Refresh swaps the token under a write
lock, so in-flight requests either use the old token or the new one.
*/
package campussdk
