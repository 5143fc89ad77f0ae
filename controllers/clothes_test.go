package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"stylistapi/models"
	"stylistapi/tasks"
	"stylistapi/test"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClothingOk(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	reqBody := CreateClothingIn{
		Name:        "Oxford Shirt",
		Description: StrPointer("Light blue, slim"),
		Category:    "top",
		Color:       " Light Blue ",
		Formality:   "smart casual",
		Season:      "all",
		FileName:    StrPointer("IMG_0001.JPG"),
		Analyze:     BoolPointer(false),
	}
	rec := s.do(test.NewJSONAuthRequest(http.MethodPost, "/wardrobe/create", UIntToStr(user.ID), reqBody))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var response ClothingCreatedResponse
	decode(t, rec, &response)
	assert.Equal(t, "Oxford Shirt", response.Clothing.Name)
	assert.Equal(t, "light blue", response.Clothing.Color)
	assert.Equal(t, models.ProcessingIdle, response.Clothing.ProcessingStatus)
	assert.True(t, strings.HasPrefix(response.FileUploadUrl, "https://fakebucketurl.com/wardrobe/"))

	stored := s.store.Clothes[response.Clothing.ID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.ImageURL)
	assert.True(t, strings.HasPrefix(*stored.ImageURL, fmt.Sprintf("wardrobe/%d/", user.ID)))
	assert.True(t, strings.HasSuffix(*stored.ImageURL, ".jpg"))
	assert.Empty(t, s.tasks.Tasks)
}

func TestCreateClothingEnqueuesAnalysis(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	reqBody := CreateClothingIn{FileName: StrPointer("photo.png"), Analyze: BoolPointer(true)}
	rec := s.do(test.NewJSONAuthRequest(http.MethodPost, "/wardrobe/create", UIntToStr(user.ID), reqBody))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var response ClothingCreatedResponse
	decode(t, rec, &response)
	assert.Equal(t, models.ProcessingPending, response.Clothing.ProcessingStatus)

	require.Len(t, s.tasks.Tasks, 1)
	task := s.tasks.Tasks[0]
	assert.Equal(t, tasks.TypeAnalyzeClothing, task.Type())
	var payload tasks.AnalyzeClothingPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, response.Clothing.ID, payload.ClothingID)
}

func TestCreateClothingInvalidInput(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)

	rec := s.do(test.NewJSONAuthRequest(http.MethodPost, "/wardrobe/create", UIntToStr(user.ID), CreateClothingIn{
		Name:     "No flag",
		FileName: StrPointer("a.jpg"),
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var response map[string]string
	decode(t, rec, &response)
	assert.Contains(t, response["error"], "Analyze")

	rec = s.do(test.NewJSONAuthRequest(http.MethodPost, "/wardrobe/create", UIntToStr(user.ID), CreateClothingIn{
		Category: "hat",
		FileName: StrPointer("a.jpg"),
		Analyze:  BoolPointer(false),
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec, &response)
	assert.Contains(t, response["error"], "Category")
	assert.Empty(t, s.store.Clothes)
}

func TestListClothesGroupsByCategory(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)
	other := test.FakeUser(s.store)

	test.FakeClothing(s.store, user.ID, "White Tee", models.CategoryTop, "white", "casual", models.FormalityCasual, models.SeasonAll)
	test.FakeClothing(s.store, user.ID, "Chinos", models.CategoryBottom, "beige", "classic", models.FormalitySmartCasual, models.SeasonAll)
	test.FakeClothing(s.store, user.ID, "Parka", models.CategoryOuterwear, "olive", "casual", models.FormalityCasual, models.SeasonWinter)
	test.FakeClothing(s.store, user.ID, "Mystery", "", "", "", "", "")
	test.FakeClothing(s.store, other.ID, "Not Mine", models.CategoryTop, "red", "casual", models.FormalityCasual, models.SeasonAll)

	rec := s.do(test.NewJSONAuthRequest(http.MethodGet, "/wardrobe/list", UIntToStr(user.ID), ""))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response ClothesListResponse
	decode(t, rec, &response)
	require.Len(t, response.Tops, 1)
	require.Len(t, response.Bottoms, 1)
	require.Len(t, response.Outerwear, 1)
	require.Len(t, response.Unsorted, 1)
	assert.Empty(t, response.Shoes)
	assert.NotNil(t, response.Accessories)
	assert.Equal(t, "White Tee", response.Tops[0].Name)
	require.NotNil(t, response.Tops[0].ImageURL)
	assert.Equal(t, fmt.Sprintf("https://fakebucketurl.com/wardrobe/%d/white-tee.jpg", user.ID), *response.Tops[0].ImageURL)
}

func TestUpdateClothing(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)
	other := test.FakeUser(s.store)
	item := test.FakeClothing(s.store, user.ID, "Tee", models.CategoryTop, "white", "casual", models.FormalityCasual, models.SeasonAll)

	rec := s.do(test.NewJSONAuthRequest(http.MethodPatch, fmt.Sprintf("/wardrobe/%d", item.ID), UIntToStr(user.ID), UpdateClothingIn{
		Color:  StrPointer(" Navy "),
		Season: StrPointer("summer"),
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var response ClothingResponse
	decode(t, rec, &response)
	assert.Equal(t, "navy", response.Color)
	assert.Equal(t, "summer", response.Season)
	assert.Equal(t, "Tee", response.Name)
	assert.Equal(t, models.Season("summer"), s.store.Clothes[item.ID].Season)

	rec = s.do(test.NewJSONAuthRequest(http.MethodPatch, fmt.Sprintf("/wardrobe/%d", item.ID), UIntToStr(other.ID), UpdateClothingIn{
		Color: StrPointer("red"),
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(test.NewJSONAuthRequest(http.MethodPatch, fmt.Sprintf("/wardrobe/%d", item.ID), UIntToStr(user.ID), UpdateClothingIn{
		Formality: StrPointer("black tie"),
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteClothing(t *testing.T) {
	s := setupTestServer(t)
	user := test.FakeUser(s.store)
	item := test.FakeClothing(s.store, user.ID, "Tee", models.CategoryTop, "white", "casual", models.FormalityCasual, models.SeasonAll)

	rec := s.do(test.NewJSONAuthRequest(http.MethodDelete, fmt.Sprintf("/wardrobe/%d", item.ID), UIntToStr(user.ID), ""))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, s.store.Clothes)

	rec = s.do(test.NewJSONAuthRequest(http.MethodDelete, fmt.Sprintf("/wardrobe/%d", item.ID), UIntToStr(user.ID), ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(test.NewJSONAuthRequest(http.MethodDelete, "/wardrobe/abc", UIntToStr(user.ID), ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
