package services

import (
	"stylistapi/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMessages(t *testing.T) {
	tokens := []models.UserPushToken{
		{Token: "ios-token", Platform: models.PlatformIOS},
		{Token: "android-token", Platform: models.PlatformAndroid},
	}
	messages := PushMessages(tokens, "Your outfit for today", "Clean Everyday Look", map[string]string{"outfit_id": "o-1"})
	require.Len(t, messages, 2)

	ios := messages[0]
	assert.Equal(t, "ios-token", ios.Token)
	require.NotNil(t, ios.APNS)
	assert.Equal(t, "Clean Everyday Look", ios.APNS.Payload.Aps.Alert.Body)
	assert.Equal(t, "o-1", ios.APNS.Payload.CustomData["outfit_id"])
	assert.Nil(t, ios.Android)

	android := messages[1]
	assert.Nil(t, android.APNS)
	require.NotNil(t, android.Android)
	assert.Equal(t, "o-1", android.Data["outfit_id"])
	assert.Equal(t, "Your outfit for today", android.Notification.Title)
}
