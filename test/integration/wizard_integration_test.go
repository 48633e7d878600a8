package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admission-client/internal/api"
	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/common/logger"
	"admission-client/internal/common/observability"
	"admission-client/internal/models"
	"admission-client/internal/store"
	"admission-client/internal/wizard"
)

// fakeBackendServer emulates the admission REST backend well enough to walk
// a full application through the wizard.
type fakeBackendServer struct {
	mu          sync.Mutex
	app         models.Application
	prefsSaved  bool
	paid        bool
	submitCalls int
}

func (f *fakeBackendServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/send-otp", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	mux.HandleFunc("/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["otp"] != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Invalid OTP"}`))
			return
		}
		json.NewEncoder(w).Encode(api.VerifyOTPResult{
			Token: "session-token",
			User:  models.User{ID: "u1", Phone: body["phone"]},
		})
	})

	requireAuth := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return false
		}
		return true
	}

	mux.HandleFunc("/application", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(f.app)
	})

	mux.HandleFunc("/application/step", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		var body struct {
			Step int                    `json:"step"`
			Data map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.app.StepData == nil {
			f.app.StepData = map[string]interface{}{}
		}
		for k, v := range body.Data {
			f.app.StepData[k] = v
		}
		if body.Step >= f.app.CurrentStep {
			f.app.CurrentStep = body.Step + 1
		}
		json.NewEncoder(w).Encode(models.SaveStepResult{CurrentStep: f.app.CurrentStep})
	})

	mux.HandleFunc("/application/preferences", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		var body struct {
			Preferences []models.Preference `json:"preferences"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		defer f.mu.Unlock()
		f.app.Preferences = body.Preferences
		f.prefsSaved = true
		w.Write([]byte(`{}`))
	})

	mux.HandleFunc("/application/submit", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.submitCalls++
		if !f.paid {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"Fee not paid"}`))
			return
		}
		f.app.Status = models.StatusPending
		json.NewEncoder(w).Encode(f.app)
	})

	mux.HandleFunc("/payment/status", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(models.PaymentStatus{Paid: f.paid})
	})

	mux.HandleFunc("/payment/verify", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.paid = true
		json.NewEncoder(w).Encode(models.PaymentVerification{Success: true})
	})

	mux.HandleFunc("/documents", func(w http.ResponseWriter, r *http.Request) {
		if !requireAuth(w, r) {
			return
		}
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		doc := models.Document{
			ID:         "doc-" + r.FormValue("type"),
			Type:       r.FormValue("type"),
			FileName:   header.Filename,
			UploadedAt: time.Now().UTC(),
		}
		f.mu.Lock()
		f.app.Documents = append(f.app.Documents, doc)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(doc)
	})

	return mux
}

// stepFixtures is a minimal valid form payload for each route step. Route
// step 11 is the documents screen, route step 12 the preferences screen.
var stepFixtures = map[int]map[string]interface{}{
	1:  {"examCode": "EX-2026-0042", "schoolName": "Govt HSS Attingal"},
	2:  {"applicantName": "Anu Krishnan", "gender": "Female", "category": "OBC"},
	3:  {"differentlyAbled": false, "differentlyAbledTypes": []interface{}{}},
	4:  {"permanentPinCode": "695001", "communicationPinCode": "695001", "phone": "9876543210"},
	5:  {"ncc": true, "littleKitesGrade": "A"},
	6:  {"sportsStateCount": float64(0)},
	7:  {"kalolsavamStateCount": float64(0)},
	8:  {"ntse": false, "nmms": false},
	9:  {"scienceFairGrade": "A", "clubs": []interface{}{"Science Club"}},
	10: {"sslcAttempts": float64(1), "previousAttempts": []interface{}{map[string]interface{}{"year": "2025"}}},
	11: {"documents": []interface{}{"doc-AADHAAR", "doc-SSLC_MARKSHEET"}},
	12: {"disclaimerAccepted": true},
}

func TestFullApplicationFlow(t *testing.T) {
	backend := &fakeBackendServer{app: models.Application{
		ID:          "app-1",
		Status:      models.StatusDraft,
		CurrentStep: 1,
	}}
	server := httptest.NewServer(backend.handler(t))
	defer server.Close()

	log := logger.NewNoOpLogger()
	obs := observability.NewNoop()

	cell := store.NewApplicationCell()
	auth := store.NewAuth(store.NewMemorySessionStore(), cell)

	client := api.NewClient(server.URL, 5*time.Second, auth, log)
	authAPI := api.NewAuthAPI(client)
	applications := api.NewApplicationAPI(client)
	documents := api.NewDocumentsAPI(client)
	payments := api.NewPaymentAPI(client)

	ctx := context.Background()

	// Sign in over OTP.
	require.NoError(t, authAPI.SendOTP(ctx, "9876543210"))
	verified, err := authAPI.VerifyOTP(ctx, "9876543210", "123456")
	require.NoError(t, err)
	require.NoError(t, auth.SignIn(ctx, verified.User, verified.Token))

	// Fetch and resume.
	app, err := applications.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, app)

	o := wizard.NewOrchestrator(cell, applications, payments, log, obs)
	o.ResumeFromPersisted(app)
	require.Equal(t, 1, o.CurrentRouteStep())

	// Walk the form steps 1..10.
	for step := 1; step <= 10; step++ {
		require.NoError(t, o.GoNext(ctx, stepFixtures[step]), "route step %d", step)
	}
	require.Equal(t, 11, o.CurrentRouteStep())

	// Upload the mandatory documents, then save the documents screen.
	for _, docType := range []string{"AADHAAR", "SSLC_MARKSHEET"} {
		doc, err := documents.Upload(ctx, docType, strings.ToLower(docType)+".pdf", strings.NewReader("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, docType, doc.Type)
	}
	require.NoError(t, o.GoNext(ctx, stepFixtures[11]))
	require.Equal(t, 12, o.CurrentRouteStep())

	// Build the preference list and save the final screen.
	prefs := wizard.NewPreferenceList(cell)
	require.NoError(t, prefs.Add("S001", "C01"))
	require.NoError(t, prefs.Add("S002", "C03"))
	require.NoError(t, o.GoNext(ctx, stepFixtures[12]))
	assert.True(t, backend.prefsSaved)

	// Submit is blocked until the fee is paid, without touching the server.
	_, err = o.Submit(ctx, stepFixtures[12])
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodePaymentRequired, apperrors.AsAppError(err).Code)
	assert.Zero(t, backend.submitCalls)

	// Pay, verify, and submit.
	verification, err := payments.Verify(ctx, "order-1", "pay-1", "sig-1")
	require.NoError(t, err)
	require.True(t, verification.Success)
	o.MarkPaymentComplete()

	submitted, err := o.Submit(ctx, stepFixtures[12])
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, submitted.Status)
	assert.Equal(t, wizard.StateSubmitted, o.LifecycleState())

	// Step data accumulated across all steps in the cache.
	stepData := cell.StepData()
	assert.Equal(t, "EX-2026-0042", stepData["examCode"])
	assert.Equal(t, "695001", stepData["permanentPinCode"])
}

func TestResumeMidFlowAfterRestart(t *testing.T) {
	backend := &fakeBackendServer{app: models.Application{
		ID:          "app-1",
		Status:      models.StatusDraft,
		CurrentStep: 12, // backend 12 is the documents screen, route step 11
		StepData:    map[string]interface{}{"examCode": "EX-2026-0042"},
	}}
	server := httptest.NewServer(backend.handler(t))
	defer server.Close()

	sessions := store.NewMemorySessionStore()
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, &models.Session{
		Token: "session-token",
		User:  models.User{ID: "u1"},
	}))

	cell := store.NewApplicationCell()
	auth := store.NewAuth(sessions, cell)
	session, err := auth.Restore(ctx)
	require.NoError(t, err)
	require.True(t, session.Authenticated())

	log := logger.NewNoOpLogger()
	client := api.NewClient(server.URL, 5*time.Second, auth, log)
	applications := api.NewApplicationAPI(client)
	payments := api.NewPaymentAPI(client)

	app, err := applications.Get(ctx)
	require.NoError(t, err)

	o := wizard.NewOrchestrator(cell, applications, payments, log, observability.NewNoop())
	o.ResumeFromPersisted(app)

	assert.Equal(t, 11, o.CurrentRouteStep())
	assert.Equal(t, "EX-2026-0042", cell.StepData()["examCode"])

	require.NoError(t, o.RefreshPaymentStatus(ctx))
	assert.False(t, o.PaymentComplete())
}

func TestExpiredSessionForcesUnauthorized(t *testing.T) {
	backend := &fakeBackendServer{}
	server := httptest.NewServer(backend.handler(t))
	defer server.Close()

	cell := store.NewApplicationCell()
	auth := store.NewAuth(store.NewMemorySessionStore(), cell)
	ctx := context.Background()
	require.NoError(t, auth.SignIn(ctx, models.User{ID: "u1"}, "stale-token"))

	client := api.NewClient(server.URL, 5*time.Second, auth, logger.NewNoOpLogger())
	_, err := api.NewApplicationAPI(client).Get(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	// The screen boundary reacts by signing out, which clears everything.
	require.NoError(t, auth.SignOut(ctx))
	assert.Nil(t, cell.Get())
	assert.Empty(t, auth.Token())
}
