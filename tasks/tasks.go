package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"stylistapi/models"
	"stylistapi/recommend"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TypeAnalyzeClothing = "wardrobe:analyze_item"
	TypeDailyOutfit     = "outfits:daily"

	QueueAnalyze = "analyze"

	defaultDailyOccasion = "casual"
	defaultDailyWeather  = "warm"
	dailyOutfitTitle     = "Your outfit for today"
)

type AnalyzeClothingPayload struct {
	ClothingID uint `json:"clothing_id"`
}

// Deps are the collaborators the task handlers need.
type Deps struct {
	Wardrobe services.WardrobeStore
	Profiles services.ProfileStore
	URLCache services.URLCacheServiceProvider
	Analyzer services.ClothingAnalyzer
	Notifier services.Notifier
	// Generate defaults to recommend.GenerateRecommendations.
	Generate func(user recommend.UserProfile, wardrobe []recommend.ClothingItem, req recommend.Request) []recommend.Outfit
}

func NewAnalyzeClothingTask(clothingID uint) (*asynq.Task, error) {
	payload, err := json.Marshal(AnalyzeClothingPayload{ClothingID: clothingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAnalyzeClothing, payload), nil
}

func NewDailyOutfitTask() *asynq.Task {
	return asynq.NewTask(TypeDailyOutfit, nil)
}

// retryInfo reports how often asynq already retried the running task and its retry budget.
// ok is false outside an asynq handler.
var retryInfo = func(ctx context.Context) (retried, maxRetry int, ok bool) {
	retried, okCount := asynq.GetRetryCount(ctx)
	maxRetry, okMax := asynq.GetMaxRetry(ctx)
	return retried, maxRetry, okCount && okMax
}

// finalAttempt is true when asynq will not run the task again after an error.
func finalAttempt(ctx context.Context) bool {
	retried, maxRetry, ok := retryInfo(ctx)
	return !ok || retried >= maxRetry
}

// recordFailure stores the attempt. The item stays pending while asynq still has retries left.
func recordFailure(ctx context.Context, deps Deps, item *models.Clothing, cause error, final bool) {
	message := cause.Error()
	item.ProcessingStatus = models.ProcessingPending
	if final {
		item.ProcessingStatus = models.ProcessingFailed
	}
	item.ProcessRetryTimes++
	item.ProcessErrorMessage = &message
	if err := deps.Wardrobe.SaveItem(ctx, item); err != nil {
		sentry.CaptureException(fmt.Errorf("[Clothing: %v] saving failed status: %w", item.ID, err))
	}
}

func HandleAnalyzeClothingTask(ctx context.Context, t *asynq.Task, deps Deps) error {
	var p AnalyzeClothingPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	logger := log.With().Uint("clothing_id", p.ClothingID).Logger()

	item, err := deps.Wardrobe.GetItemByID(ctx, p.ClothingID)
	if errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("clothing %d: %w", p.ClothingID, asynq.SkipRetry)
	}
	if err != nil {
		return err
	}
	if item.ImageURL == nil || *item.ImageURL == "" {
		cause := errors.New("clothing has no photo")
		recordFailure(ctx, deps, item, cause, true)
		services.ClothingAnalysis.WithLabelValues("failed").Inc()
		return fmt.Errorf("%v: %w", cause, asynq.SkipRetry)
	}

	attrs, err := analyzePhoto(ctx, deps, *item.ImageURL)
	if err != nil {
		logger.Warn().Err(err).Int("retry", item.ProcessRetryTimes).Msg("clothing analysis failed")
		if errors.Is(err, services.ErrNoGarment) {
			recordFailure(ctx, deps, item, err, true)
			services.ClothingAnalysis.WithLabelValues("failed").Inc()
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		final := finalAttempt(ctx)
		recordFailure(ctx, deps, item, err, final)
		if final {
			services.ClothingAnalysis.WithLabelValues("failed").Inc()
		} else {
			services.ClothingAnalysis.WithLabelValues("retry").Inc()
		}
		return err
	}

	services.ApplyAttributes(item, attrs)
	item.ProcessingStatus = models.ProcessingCompleted
	item.ProcessErrorMessage = nil
	if err := deps.Wardrobe.SaveItem(ctx, item); err != nil {
		sentry.CaptureException(err)
		return err
	}
	services.ClothingAnalysis.WithLabelValues("completed").Inc()
	logger.Info().Str("category", string(item.Category)).Msg("clothing analyzed")
	return nil
}

func analyzePhoto(ctx context.Context, deps Deps, objectKey string) (*services.ClothingAttributes, error) {
	url, err := deps.URLCache.GetReadURL(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("presign photo: %w", err)
	}
	raw, err := services.DownloadFile(ctx, url)
	if err != nil {
		return nil, err
	}
	prepared, err := services.PrepareClothingImage(raw)
	if err != nil {
		return nil, err
	}
	return deps.Analyzer.AnalyzeClothing(ctx, prepared, "image/jpeg")
}

// DailyRequest is the occasion and weather used for the user's daily push.
func DailyRequest(user models.UserAccount) recommend.Request {
	req := recommend.Request{Occasion: user.DefaultOccasion, Weather: user.DefaultWeather}
	if req.Occasion == "" {
		req.Occasion = defaultDailyOccasion
	}
	if req.Weather == "" {
		req.Weather = defaultDailyWeather
	}
	return req
}

func HandleDailyOutfitTask(ctx context.Context, t *asynq.Task, deps Deps) error {
	generate := deps.Generate
	if generate == nil {
		generate = recommend.GenerateRecommendations
	}
	users, err := deps.Profiles.ListNotifiableUsers(ctx)
	if err != nil {
		return fmt.Errorf("list notifiable users: %w", err)
	}
	sent := 0
	for _, user := range users {
		ok, err := pushDailyOutfit(ctx, deps, generate, user)
		if err != nil {
			services.PushNotifications.WithLabelValues("error").Inc()
			sentry.CaptureException(fmt.Errorf("[User: %v] daily outfit: %w", user.ID, err))
			continue
		}
		if ok {
			sent++
		}
	}
	log.Info().Int("users", len(users)).Int("sent", sent).Msg("daily outfits pushed")
	return nil
}

func pushDailyOutfit(ctx context.Context, deps Deps, generate func(recommend.UserProfile, []recommend.ClothingItem, recommend.Request) []recommend.Outfit, user models.UserAccount) (bool, error) {
	clothes, err := deps.Wardrobe.ListItems(ctx, user.ID)
	if err != nil {
		return false, err
	}
	outfits := generate(user.StyleProfile(), models.RecommendWardrobe(clothes, nil), DailyRequest(user))
	if len(outfits) == 0 {
		services.PushNotifications.WithLabelValues("skipped").Inc()
		return false, nil
	}
	tokens, err := deps.Profiles.ActivePushTokens(ctx, user.ID)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		services.PushNotifications.WithLabelValues("skipped").Inc()
		return false, nil
	}
	top := outfits[0]
	n, err := deps.Notifier.Notify(ctx, tokens, dailyOutfitTitle, top.Name, map[string]string{
		"outfit_id": top.ID,
		"occasion":  top.Occasion,
		"weather":   top.Weather,
	})
	if err != nil {
		return false, err
	}
	services.PushNotifications.WithLabelValues("sent").Add(float64(n))
	return n > 0, nil
}
