package controllers

import (
	"net/http"
	"stylistapi/test"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileOk(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	rec := s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/me", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)

	payload := map[string]interface{}{}
	decode(t, rec, &payload)
	assert.Equal(t, user.Name, payload["name"])
	assert.Equal(t, user.Email, payload["email"])
	assert.Equal(t, "athletic", payload["body_type"])
	assert.NotContains(t, payload, "banned")
}

func TestUpdateProfile(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	rec := s.do(test.NewJSONAuthRequest(http.MethodPut, "/profile/me", UIntToStr(user.ID), UpdateProfileIn{
		BodyType:        StrPointer("hourglass"),
		Height:          Float64Pointer(165),
		PreferredColors: []string{" Blue", "blue", "", "Emerald Green"},
		EyeColor:        StrPointer("green"),
		DefaultOccasion: StrPointer("Work"),
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored := s.store.Users[user.ID]
	assert.Equal(t, "hourglass", stored.BodyType)
	assert.Equal(t, 165.0, stored.Height)
	assert.Equal(t, []string{"blue", "emerald green"}, []string(stored.PreferredColors))
	// untouched fields keep their values
	assert.Equal(t, []string{"classic"}, []string(stored.PreferredStyles))
	require.NotNil(t, stored.EyeColor)
	assert.Equal(t, "green", *stored.EyeColor)
	assert.Equal(t, "work", stored.DefaultOccasion)

	rec = s.do(test.NewJSONAuthRequest(http.MethodPut, "/profile/me", UIntToStr(user.ID), UpdateProfileIn{
		EyeColor: StrPointer(""),
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, s.store.Users[user.ID].EyeColor)
}

func TestUpdateProfileInvalid(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	for _, body := range []UpdateProfileIn{
		{BodyType: StrPointer("triangle")},
		{SkinTone: StrPointer("green")},
		{HairColor: StrPointer("purple")},
		{Height: Float64Pointer(-4)},
	} {
		rec := s.do(test.NewJSONAuthRequest(http.MethodPut, "/profile/me", UIntToStr(user.ID), body))
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	}
	assert.Equal(t, "athletic", s.store.Users[user.ID].BodyType)
}

func TestSavePushToken(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	rec := s.do(test.NewJSONAuthRequest(http.MethodPost, "/profile/push-token", UIntToStr(user.ID), PushTokenIn{
		Token:    "new-device-token",
		Platform: "ios",
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, s.store.Tokens, 2)

	rec = s.do(test.NewJSONAuthRequest(http.MethodPost, "/profile/push-token", UIntToStr(user.ID), PushTokenIn{
		Token:    "new-device-token",
		Platform: "iosx",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStyleSuggestions(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	rec := s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/style-suggestions?category=top", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	var response StyleSuggestionsResponse
	decode(t, rec, &response)
	assert.Equal(t, "athletic", response.BodyType)
	require.NotEmpty(t, response.Suggestions)
	assert.Equal(t, "V-Neck Tees", response.Suggestions[0].Name)

	rec = s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/style-suggestions", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &response)
	assert.Equal(t, "Fitted Basics", response.Suggestions[0].Name)

	rec = s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/style-suggestions?category=hats", UIntToStr(user.ID), ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendedItems(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	rec := s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/recommended-items?category=shoes", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	var response RecommendedItemsResponse
	decode(t, rec, &response)
	require.Len(t, response.Items, 2)
	assert.Equal(t, "Chelsea Boots", response.Items[0].Name)

	rec = s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/recommended-items?category=accessory", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)

	rec = s.do(test.NewJSONAuthRequest(http.MethodGet, "/profile/recommended-items", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &response)
	assert.Len(t, response.Items, 4)
}
