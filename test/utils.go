package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"stylistapi/models"
	"stylistapi/services"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const JWTSecret = "test-secret"

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(JWTSecret))
	if err != nil {
		log.Fatal().Err(err).Str("user", userPk).Msg("error when signing user token")
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	req := NewJSONRequest(method, target, param)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", GenerateUserToken(userPk)))
	return req
}

func StrPointer(s string) *string {
	return &s
}

// MemoryStore is an in-memory implementation of every store used by handlers and tasks.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  uint
	Users   map[uint]*models.UserAccount
	Tokens  []models.UserPushToken
	Clothes map[uint]*models.Clothing
	Outfits map[uint]*models.SavedOutfit
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Users:   map[uint]*models.UserAccount{},
		Clothes: map[uint]*models.Clothing{},
		Outfits: map[uint]*models.SavedOutfit{},
	}
}

func (s *MemoryStore) stamp(m *models.JsonModel) {
	now := time.Now()
	if m.ID == 0 {
		s.nextID++
		m.ID = s.nextID
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

func (s *MemoryStore) ListItems(ctx context.Context, ownerID uint) ([]models.Clothing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clothes := []models.Clothing{}
	for _, c := range s.Clothes {
		if c.OwnerID == ownerID {
			clothes = append(clothes, *c)
		}
	}
	sort.Slice(clothes, func(i, j int) bool { return clothes[i].ID < clothes[j].ID })
	return clothes, nil
}

func (s *MemoryStore) GetItem(ctx context.Context, ownerID, id uint) (*models.Clothing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Clothes[id]
	if !ok || c.OwnerID != ownerID {
		return nil, services.ErrNotFound
	}
	item := *c
	return &item, nil
}

func (s *MemoryStore) GetItemByID(ctx context.Context, id uint) (*models.Clothing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Clothes[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	item := *c
	return &item, nil
}

func (s *MemoryStore) CreateItem(ctx context.Context, item *models.Clothing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = 0
	s.stamp(&item.JsonModel)
	stored := *item
	s.Clothes[item.ID] = &stored
	return nil
}

func (s *MemoryStore) SaveItem(ctx context.Context, item *models.Clothing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&item.JsonModel)
	stored := *item
	s.Clothes[item.ID] = &stored
	return nil
}

func (s *MemoryStore) DeleteItem(ctx context.Context, ownerID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.Clothes[id]
	if !ok || c.OwnerID != ownerID {
		return services.ErrNotFound
	}
	delete(s.Clothes, id)
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id uint) (*models.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.Users[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	user := *u
	return &user, nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, user *models.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&user.JsonModel)
	stored := *user
	s.Users[user.ID] = &stored
	return nil
}

func (s *MemoryStore) ListNotifiableUsers(ctx context.Context) ([]models.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.UserAccount{}
	for _, u := range s.Users {
		if u.ReceiveNotifications && !u.Banned {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryStore) SavePushToken(ctx context.Context, token *models.UserPushToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token.Active = true
	for i := range s.Tokens {
		if s.Tokens[i].Token == token.Token {
			token.ID = s.Tokens[i].ID
			s.Tokens[i] = *token
			return nil
		}
	}
	s.stamp(&token.JsonModel)
	s.Tokens = append(s.Tokens, *token)
	return nil
}

func (s *MemoryStore) ActivePushTokens(ctx context.Context, userID uint) ([]models.UserPushToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tokens []models.UserPushToken
	for _, t := range s.Tokens {
		if t.UserAccountID == userID && t.Active {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

func (s *MemoryStore) SaveOutfit(ctx context.Context, outfit *models.SavedOutfit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	outfit.ID = 0
	s.stamp(&outfit.JsonModel)
	stored := *outfit
	s.Outfits[outfit.ID] = &stored
	return nil
}

func (s *MemoryStore) ListOutfits(ctx context.Context, ownerID uint, reaction string) ([]models.SavedOutfit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outfits := []models.SavedOutfit{}
	for _, o := range s.Outfits {
		if o.OwnerID == ownerID && (reaction == "" || string(o.Reaction) == reaction) {
			outfits = append(outfits, *o)
		}
	}
	sort.Slice(outfits, func(i, j int) bool { return outfits[i].ID > outfits[j].ID })
	return outfits, nil
}

func (s *MemoryStore) DeleteOutfit(ctx context.Context, ownerID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Outfits[id]
	if !ok || o.OwnerID != ownerID {
		return services.ErrNotFound
	}
	delete(s.Outfits, id)
	return nil
}

func FakeUser(store *MemoryStore) *models.UserAccount {
	user := &models.UserAccount{
		Name:                 "OurName",
		Email:                "email@example.com",
		Platform:             models.PlatformIOS,
		ReceiveNotifications: true,
		AvatarURL:            "pictureurl",
		Height:               178,
		BodyType:             "athletic",
		SkinTone:             "medium",
		HairColor:            "brown",
		PreferredColors:      []string{"navy", "white"},
		PreferredStyles:      []string{"classic"},
		PreferredPatterns:    []string{"solid"},
	}
	store.UpdateProfile(context.Background(), user)
	store.SavePushToken(context.Background(), &models.UserPushToken{
		UserAccountID: user.ID,
		Platform:      models.PlatformAndroid,
		Token:         fmt.Sprintf("fcm-token-%d", user.ID),
	})
	return user
}

func FakeClothing(store *MemoryStore, owner uint, name string, category models.Category, color, style string, formality models.Formality, season models.Season) *models.Clothing {
	item := &models.Clothing{
		Name:             name,
		Category:         category,
		Color:            color,
		Pattern:          "solid",
		Style:            style,
		Formality:        formality,
		Season:           season,
		OwnerID:          owner,
		ImageURL:         StrPointer(fmt.Sprintf("wardrobe/%d/%s.jpg", owner, strings.ReplaceAll(strings.ToLower(name), " ", "-"))),
		ProcessingStatus: models.ProcessingCompleted,
	}
	store.CreateItem(context.Background(), item)
	return item
}

type AWSProviderMock struct {
	MockUrl string
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, objectKey string) (string, error) {
	return fmt.Sprintf("https://fakebucketurl.com/%s?upload=1", objectKey), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, objectKey string) (string, error) {
	if awsService.MockUrl != "" {
		return awsService.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", objectKey), nil
}

// URLCacheMock resolves object keys without caching. MockUrl overrides every key.
type URLCacheMock struct {
	MockUrl string
}

func (m *URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	if m.MockUrl != "" {
		return m.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", objectKey), nil
}

type AnalyzerMock struct {
	Attributes *services.ClothingAttributes
	Err        error
	Calls      int
}

func (m *AnalyzerMock) AnalyzeClothing(ctx context.Context, image []byte, mimeType string) (*services.ClothingAttributes, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	attrs := *m.Attributes
	return &attrs, nil
}

type Notification struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

type NotifierMock struct {
	mu   sync.Mutex
	Sent []Notification
}

func (m *NotifierMock) Notify(ctx context.Context, tokens []models.UserPushToken, title, body string, data map[string]string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := Notification{Title: title, Body: body, Data: data}
	for _, t := range tokens {
		n.Tokens = append(n.Tokens, t.Token)
	}
	m.Sent = append(m.Sent, n)
	return len(tokens), nil
}

// EnqueuerMock records tasks instead of sending them to redis.
type EnqueuerMock struct {
	mu    sync.Mutex
	Tasks []*asynq.Task
}

func (m *EnqueuerMock) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tasks = append(m.Tasks, task)
	return &asynq.TaskInfo{ID: fmt.Sprintf("task-%d", len(m.Tasks)), Type: task.Type(), Payload: task.Payload()}, nil
}
