package services

import (
	"context"
	"fmt"
	"stylistapi/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type Notifier interface {
	Notify(ctx context.Context, tokens []models.UserPushToken, title, body string, data map[string]string) (int, error)
}

type FirebaseNotifier struct {
	App *firebase.App
}

// NewFirebaseNotifier uses application default credentials unless a service account file is given.
func NewFirebaseNotifier(ctx context.Context, credentialsFile string) (*FirebaseNotifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return &FirebaseNotifier{App: app}, nil
}

func stringMapToInterfaceMap(stringMap map[string]string) map[string]interface{} {
	interfaceMap := make(map[string]interface{}, len(stringMap))
	for key, value := range stringMap {
		interfaceMap[key] = value
	}
	return interfaceMap
}

// PushMessages builds one message per device token.
func PushMessages(tokens []models.UserPushToken, title, body string, data map[string]string) []*messaging.Message {
	var apnsData map[string]interface{}
	if data != nil {
		apnsData = stringMapToInterfaceMap(data)
	}
	messages := make([]*messaging.Message, 0, len(tokens))
	for _, token := range tokens {
		message := &messaging.Message{
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data:  data,
			Token: token.Token,
		}
		if token.Platform == models.PlatformIOS {
			message.APNS = &messaging.APNSConfig{
				FCMOptions: &messaging.APNSFCMOptions{AnalyticsLabel: "daily-outfit"},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						ContentAvailable: true,
						Alert:            &messaging.ApsAlert{Title: title, Body: body},
						Sound:            "default",
					},
					CustomData: apnsData,
				},
			}
		} else {
			message.Android = &messaging.AndroidConfig{
				Notification: &messaging.AndroidNotification{
					Priority:  messaging.PriorityHigh,
					ChannelID: "stylist-daily-outfit",
				},
			}
		}
		messages = append(messages, message)
	}
	return messages
}

func (n *FirebaseNotifier) Notify(ctx context.Context, tokens []models.UserPushToken, title, body string, data map[string]string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	client, err := n.App.Messaging(ctx)
	if err != nil {
		return 0, fmt.Errorf("error initing FB client: %w", err)
	}
	br, err := client.SendEach(ctx, PushMessages(tokens, title, body, data))
	if err != nil {
		return 0, err
	}
	for i, res := range br.Responses {
		if res != nil && !res.Success {
			log.Warn().Err(res.Error).Uint("token_id", tokens[i].ID).Msg("push failed")
		}
	}
	return br.SuccessCount, nil
}
