package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketing-rewards/config"
	httpHandler "ticketing-rewards/internal/adapter/http/handler"
	redisStorage "ticketing-rewards/internal/adapter/storage/redis"
	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/internal/service"
	"ticketing-rewards/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on in-memory storage: miniredis
// behind the real Redis stores, and in-memory repos behind the real services.
// This exercises the HTTP layer, middleware, handlers and services end-to-end.

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	userRepo    *inMemoryUserRepo
	bookingRepo *inMemoryBookingRepo
	walletRepo  *inMemoryWalletRepo
	rewardRepo  *inMemoryRewardRepo
	tokenSvc    ports.TokenService
	treasuryID  uuid.UUID
	rewardCfg   config.RewardConfig
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// Redis stores
	countCache := redisStorage.NewRewardCountCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// In-memory repos
	userRepo := newInMemoryUserRepo()
	bookingRepo := newInMemoryBookingRepo()
	walletRepo := newInMemoryWalletRepo()
	rewardRepo := newInMemoryRewardRepo()
	transactor := newSerializingTransactor()

	// Treasury wallet
	treasuryID := uuid.New()
	require.NoError(t, walletRepo.Create(context.Background(), &domain.Wallet{
		ID:      treasuryID,
		OwnerID: uuid.New(),
		Balance: 1_000_000,
	}))

	// WinProbability 1.0 makes every draw a win, so redemption paths always
	// have a positive amount to settle.
	rewardCfg := config.RewardConfig{
		EligibilityWindowDays: 15,
		MinBookings:           15,
		ExpiryDays:            7,
		WinProbability:        1.0,
		MaxWinAmount:          20,
	}

	log := logger.New("debug", false)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	notifier := service.NewPushNotifier("", nil, log) // no hub configured

	evaluator := service.NewEligibilityEvaluator(
		userRepo, bookingRepo,
		rewardCfg.EligibilityWindow(), int64(rewardCfg.MinBookings),
	)
	issuanceSvc := service.NewRewardIssuer(
		evaluator, rewardRepo, userRepo, countCache, transactor, service.NewRandSource(), rewardCfg, log,
	)
	redemptionSvc := service.NewRedemptionService(
		rewardRepo, walletRepo, userRepo, countCache, transactor, notifier, treasuryID, log,
	)
	rewardQuerySvc := service.NewRewardQuery(rewardRepo, countCache, log)
	walletQuerySvc := service.NewWalletQuery(walletRepo)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		IssuanceSvc:    issuanceSvc,
		RedemptionSvc:  redemptionSvc,
		RewardQuerySvc: rewardQuerySvc,
		WalletQuerySvc: walletQuerySvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		DebugAuth:      true,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:      server,
		redis:       mr,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		walletRepo:  walletRepo,
		rewardRepo:  rewardRepo,
		tokenSvc:    tokenSvc,
		treasuryID:  treasuryID,
		rewardCfg:   rewardCfg,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// seedUser creates a user, their wallet and the given number of bookings
// inside the eligibility window.
func (a *testApp) seedUser(t *testing.T, name string, bookings int) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	a.userRepo.add(&domain.User{
		ID:        userID,
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: time.Now().UTC().Add(-30 * 24 * time.Hour),
	})
	require.NoError(t, a.walletRepo.Create(context.Background(), &domain.Wallet{
		ID:      uuid.New(),
		OwnerID: userID,
	}))
	for i := 0; i < bookings; i++ {
		a.bookingRepo.add(userID, time.Now().UTC().Add(-time.Duration(i+1)*time.Hour))
	}
	return userID
}

// seedReward inserts a pending reward directly into the store.
func (a *testApp) seedReward(t *testing.T, userID uuid.UUID, amount int64, expiresAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, a.rewardRepo.Create(context.Background(), nil, &domain.Reward{
		ID:        id,
		UserID:    userID,
		Outcome:   domain.RewardOutcomeWin,
		Amount:    amount,
		Status:    domain.RewardStatusPending,
		IssuedAt:  time.Now().UTC().Add(-time.Hour),
		ExpiresAt: expiresAt,
	}))
	return id
}

func (a *testApp) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, _, err := a.tokenSvc.Generate(userID)
	require.NoError(t, err)
	return token
}

// do performs an authenticated request and decodes the response envelope.
func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func data(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "envelope has no data object: %v", envelope)
	return d
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, envelope := app.do(t, http.MethodGet, "/api/v1/rewards", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", envelope["error_code"])
}

func TestIntegration_DevTokenEndpoint(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Asha", 0)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/auth/token", "",
		map[string]string{"user_id": userID.String()})
	require.Equal(t, http.StatusOK, status)

	token := data(t, envelope)["token"].(string)
	require.NotEmpty(t, token)

	// The minted token authenticates real requests.
	status, _ = app.do(t, http.MethodGet, "/api/v1/rewards", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestIntegration_GenerateRewardFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Bilal", 15)
	token := app.token(t, userID)

	// First generate succeeds (WinProbability 1.0 -> always a win).
	status, envelope := app.do(t, http.MethodPost, "/api/v1/rewards/generate", token, nil)
	require.Equal(t, http.StatusCreated, status, "generate response: %v", envelope)

	reward := data(t, envelope)
	assert.Equal(t, "WIN", reward["outcome"])
	assert.GreaterOrEqual(t, reward["amount"].(float64), float64(1))
	assert.LessOrEqual(t, reward["amount"].(float64), float64(20))
	assert.Equal(t, "PENDING", reward["status"])
	assert.Equal(t, true, reward["scratching"])

	// Second generate in the same window is rejected.
	status, envelope = app.do(t, http.MethodPost, "/api/v1/rewards/generate", token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ELG_002", envelope["error_code"])

	// The reward shows up in list and count.
	status, envelope = app.do(t, http.MethodGet, "/api/v1/rewards", token, nil)
	require.Equal(t, http.StatusOK, status)
	rewards := data(t, envelope)["rewards"].([]interface{})
	assert.Len(t, rewards, 1)

	status, envelope = app.do(t, http.MethodGet, "/api/v1/rewards/count", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), data(t, envelope)["count"])
}

func TestIntegration_GenerateInsufficientActivity(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Chandra", 5)
	token := app.token(t, userID)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/rewards/generate", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "ELG_003", envelope["error_code"])
}

func TestIntegration_RedeemOneFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Devika", 0)
	token := app.token(t, userID)
	rewardID := app.seedReward(t, userID, 15, time.Now().UTC().Add(24*time.Hour))

	treasuryBefore, err := app.walletRepo.GetByID(context.Background(), app.treasuryID)
	require.NoError(t, err)

	status, envelope := app.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/rewards/%s/redeem", rewardID), token, nil)
	require.Equal(t, http.StatusOK, status, "redeem response: %v", envelope)

	result := data(t, envelope)
	assert.Equal(t, float64(15), result["amount"])
	redeemed := result["reward"].(map[string]interface{})
	assert.Equal(t, "REDEEMED", redeemed["status"])
	assert.Equal(t, false, redeemed["scratching"])
	assert.NotEmpty(t, redeemed["redeemed_at"])

	// User wallet credited, treasury debited.
	status, envelope = app.do(t, http.MethodGet, "/api/v1/wallet", token, nil)
	require.Equal(t, http.StatusOK, status)
	statement := data(t, envelope)
	assert.Equal(t, float64(15), statement["balance"])
	entries := statement["entries"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "CREDIT", entry["direction"])
	assert.Equal(t, "Reward Redeemed - Rs.15", entry["description"])

	treasuryAfter, err := app.walletRepo.GetByID(context.Background(), app.treasuryID)
	require.NoError(t, err)
	assert.Equal(t, treasuryBefore.Balance-15, treasuryAfter.Balance)

	// A second redeem of the same reward is rejected.
	status, envelope = app.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/rewards/%s/redeem", rewardID), token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "RWD_003", envelope["error_code"])
}

func TestIntegration_RedeemExpired(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Esha", 0)
	token := app.token(t, userID)
	rewardID := app.seedReward(t, userID, 10, time.Now().UTC().Add(-time.Hour))

	status, envelope := app.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/rewards/%s/redeem", rewardID), token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "RWD_002", envelope["error_code"])
}

func TestIntegration_RedeemAllSkipsExpired(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Farhan", 0)
	token := app.token(t, userID)

	future := time.Now().UTC().Add(24 * time.Hour)
	app.seedReward(t, userID, 10, future)
	app.seedReward(t, userID, 5, future)
	expiredID := app.seedReward(t, userID, 20, time.Now().UTC().Add(-time.Hour))

	status, envelope := app.do(t, http.MethodPost, "/api/v1/rewards/redeem-all", token, nil)
	require.Equal(t, http.StatusOK, status, "redeem-all response: %v", envelope)

	result := data(t, envelope)
	assert.Equal(t, float64(15), result["total_amount"])
	assert.Len(t, result["redeemed"].([]interface{}), 2)

	skipped := result["skipped_expired"].([]interface{})
	require.Len(t, skipped, 1)
	assert.Equal(t, expiredID.String(), skipped[0].(map[string]interface{})["id"])

	// Single aggregated credit on the user wallet.
	status, envelope = app.do(t, http.MethodGet, "/api/v1/wallet", token, nil)
	require.Equal(t, http.StatusOK, status)
	statement := data(t, envelope)
	assert.Equal(t, float64(15), statement["balance"])
	entries := statement["entries"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, "All Rewards Redeemed - Rs.15", entries[0].(map[string]interface{})["description"])
}

func TestIntegration_RedeemAllNothingPending(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Gita", 0)
	token := app.token(t, userID)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/rewards/redeem-all", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "RWD_004", envelope["error_code"])
}

func TestIntegration_FullLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := app.seedUser(t, "Hamid", 20)
	token := app.token(t, userID)

	// Generate, read back, redeem, verify the wallet.
	status, envelope := app.do(t, http.MethodPost, "/api/v1/rewards/generate", token, nil)
	require.Equal(t, http.StatusCreated, status)
	rewardID := data(t, envelope)["id"].(string)
	amount := data(t, envelope)["amount"].(float64)

	status, envelope = app.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/rewards/%s/redeem", rewardID), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, amount, data(t, envelope)["amount"])

	status, envelope = app.do(t, http.MethodGet, "/api/v1/wallet", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, amount, data(t, envelope)["balance"])

	status, envelope = app.do(t, http.MethodGet, "/api/v1/rewards/count", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), data(t, envelope)["count"])
}
