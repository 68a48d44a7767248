package utils

import (
	"context"

	"vaxportal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client. Push
// delivery is optional: without credentials the client stays nil and
// callers skip the push.
func FirebaseInit() {
	logger := GetLogger()

	keyPath := config.AppConfig.FirebaseCredentialsFile
	if keyPath == "" {
		logger.Sugar().Info("firebase: no credentials configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(keyPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		logger.Sugar().Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Sugar().Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FCMClient = client
}
