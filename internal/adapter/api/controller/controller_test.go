package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/controller"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/dto"
	"github.com/hugohenrick/voice-productivity/internal/adapter/api/route"
	"github.com/hugohenrick/voice-productivity/internal/adapter/repository/memory"
	"github.com/hugohenrick/voice-productivity/internal/service/assistant"
	"github.com/hugohenrick/voice-productivity/internal/service/planner"
	"github.com/hugohenrick/voice-productivity/pkg/auth"
	"github.com/hugohenrick/voice-productivity/pkg/logger/loggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	goals  *memory.GoalRepository
	tasks  *memory.TaskRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := loggertest.New(t)
	users := memory.NewUserRepository()
	goals := memory.NewGoalRepository()
	tasks := memory.NewTaskRepository()
	history := memory.NewChatRepository()

	jwtService, err := auth.NewJWTService("test-secret", time.Hour, "voice-productivity-test")
	require.NoError(t, err)

	plan := planner.NewService(goals, tasks, log)
	voiceAssistant := assistant.New(users, goals, tasks, history, plan, log)

	router := gin.New()
	api := router.Group("/api")
	authMiddleware := auth.JWTAuthMiddleware(jwtService)

	route.SetupAuthRoutes(api, controller.NewAuthController(users, jwtService, log), authMiddleware)
	route.SetupGoalRoutes(api, controller.NewGoalController(goals, log), authMiddleware)
	route.SetupTaskRoutes(api, controller.NewTaskController(tasks, log), authMiddleware)
	route.SetupVoiceRoutes(api, controller.NewVoiceController(voiceAssistant, log), authMiddleware)
	route.SetupAIRoutes(api, controller.NewAIController(plan, log), authMiddleware)

	return &testServer{router: router, goals: goals, tasks: tasks}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
		"password":  "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.AuthResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestAuth_RegisterLoginAndMe(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "Ada@Example.com")

	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"firstName": "Ada",
		"lastName":  "Byron",
		"email":     "ada@example.com",
		"password":  "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "wrong-one"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.UserResponse
	decode(t, w, &me)
	assert.Equal(t, "ada@example.com", me.Email)
	assert.True(t, me.Preferences.VoiceCommands)

	w = s.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RefreshToken(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")

	w := s.do(t, http.MethodPost, "/api/auth/refresh-token", "", gin.H{"token": token})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AuthResponse
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)

	w = s.do(t, http.MethodPost, "/api/auth/refresh-token", "", gin.H{"token": "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ProfileAndPassword(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")

	w := s.do(t, http.MethodPut, "/api/auth/profile", token, gin.H{"firstName": "Augusta", "timezone": "Europe/London"})
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.UserResponse
	decode(t, w, &me)
	assert.Equal(t, "Augusta", me.FirstName)
	assert.Equal(t, "Lovelace", me.LastName)
	assert.Equal(t, "Europe/London", me.Timezone)

	w = s.do(t, http.MethodPost, "/api/auth/change-password", token, gin.H{"currentPassword": "nope-nope", "newPassword": "another1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/change-password", token, gin.H{"currentPassword": "secret1", "newPassword": "another1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "another1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGoals_LongTermLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")
	target := time.Now().Add(90 * 24 * time.Hour).UTC()

	w := s.do(t, http.MethodPost, "/api/goals/long-term", token, gin.H{
		"title":       "Run a marathon",
		"description": "42km",
		"targetDate":  target,
		"milestones":  []gin.H{{"title": "Run 10km", "targetDate": target.Add(-60 * 24 * time.Hour)}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID         string `json:"id"`
		Milestones []struct {
			ID string `json:"id"`
		} `json:"milestones"`
	}
	decode(t, w, &created)
	require.Len(t, created.Milestones, 1)

	w = s.do(t, http.MethodPut, "/api/goals/long-term/"+created.ID, token, gin.H{"progress": 150})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/goals/long-term/"+created.ID, token, gin.H{"progress": 40})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/api/goals/long-term/"+created.ID+"/milestones/"+created.Milestones[0].ID, token, gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, "/api/goals/long-term/"+created.ID+"/milestones/unknown", token, gin.H{"completed": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/goals/short-term", token, gin.H{
		"parentGoalId": "unknown",
		"title":        "Weekly runs",
		"timeframe":    "weekly",
		"endDate":      target,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/goals/short-term", token, gin.H{
		"parentGoalId": created.ID,
		"title":        "Weekly runs",
		"timeframe":    "yearly",
		"endDate":      target,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/goals/short-term", token, gin.H{
		"parentGoalId": created.ID,
		"title":        "Weekly runs",
		"timeframe":    "weekly",
		"endDate":      target,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		LongTermGoals []struct {
			Progress   int `json:"progress"`
			Milestones []struct {
				Completed bool `json:"completed"`
			} `json:"milestones"`
		} `json:"longTermGoals"`
		ShortTermGoals []struct {
			ParentGoalID string `json:"parentGoalId"`
		} `json:"shortTermGoals"`
	}
	decode(t, w, &list)
	require.Len(t, list.LongTermGoals, 1)
	assert.Equal(t, 40, list.LongTermGoals[0].Progress)
	require.Len(t, list.LongTermGoals[0].Milestones, 1)
	assert.True(t, list.LongTermGoals[0].Milestones[0].Completed)
	require.Len(t, list.ShortTermGoals, 1)
	assert.Equal(t, created.ID, list.ShortTermGoals[0].ParentGoalID)

	w = s.do(t, http.MethodDelete, "/api/goals/long-term/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/goals", token, nil)
	decode(t, w, &list)
	assert.Empty(t, list.LongTermGoals)
	assert.Empty(t, list.ShortTermGoals)
}

func TestGoals_AreScopedToOwner(t *testing.T) {
	s := newTestServer(t)
	owner := s.register(t, "ada@example.com")
	other := s.register(t, "grace@example.com")

	w := s.do(t, http.MethodPost, "/api/goals/long-term", owner, gin.H{
		"title":      "Private goal",
		"targetDate": time.Now().Add(24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = s.do(t, http.MethodPut, "/api/goals/long-term/"+created.ID, other, gin.H{"progress": 10})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/goals/long-term/"+created.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTasks_CRUDAndBatch(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")

	w := s.do(t, http.MethodPost, "/api/tasks", token, gin.H{"title": "Bad", "priority": "urgent"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/tasks", token, gin.H{"title": "Write report", "estimatedTime": 30})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var first struct {
		ID       string `json:"id"`
		Priority string `json:"priority"`
	}
	decode(t, w, &first)
	assert.Equal(t, "medium", first.Priority)

	w = s.do(t, http.MethodPost, "/api/tasks", token, gin.H{"title": "Stretch", "daily": true, "priority": "low"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPut, "/api/tasks/"+first.ID, token, gin.H{"priority": "high"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &first)
	assert.Equal(t, "high", first.Priority)

	w = s.do(t, http.MethodPut, "/api/tasks/batch", token, gin.H{
		"tasks": []gin.H{
			{"id": first.ID, "completed": true},
			{"id": "does-not-exist", "completed": true},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var batch struct {
		Tasks []struct {
			ID        string `json:"id"`
			Completed bool   `json:"completed"`
		} `json:"tasks"`
	}
	decode(t, w, &batch)
	require.Len(t, batch.Tasks, 1)
	assert.Equal(t, first.ID, batch.Tasks[0].ID)
	assert.True(t, batch.Tasks[0].Completed)

	w = s.do(t, http.MethodGet, "/api/tasks?today=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var today struct {
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
	}
	decode(t, w, &today)
	require.Len(t, today.Tasks, 1)
	assert.Equal(t, "Stretch", today.Tasks[0].Title)

	w = s.do(t, http.MethodDelete, "/api/tasks/"+first.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodDelete, "/api/tasks/"+first.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVoice_ProcessAndHistory(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")

	w := s.do(t, http.MethodPost, "/api/voice/process", token, gin.H{"text": `create new task called "Buy milk"`})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reply struct {
		Result struct {
			Intent string `json:"intent"`
		} `json:"result"`
		Response string `json:"response"`
		Action   struct {
			Success bool `json:"success"`
		} `json:"action"`
	}
	decode(t, w, &reply)
	assert.Equal(t, "CREATE_TASK", reply.Result.Intent)
	assert.True(t, reply.Action.Success)
	assert.NotEmpty(t, reply.Response)

	w = s.do(t, http.MethodPost, "/api/voice/process", token, gin.H{"text": `create new task called "Dry run"`, "dryRun": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/tasks", token, nil)
	var tasks dto.TasksResponse
	decode(t, w, &tasks)
	require.Len(t, tasks.Tasks, 1)
	assert.Equal(t, "Buy milk", tasks.Tasks[0].Title)

	w = s.do(t, http.MethodGet, "/api/voice/history?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history dto.HistoryResponse
	decode(t, w, &history)
	assert.Equal(t, 2, history.Total)
	assert.Equal(t, 1, history.Limit)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "assistant", string(history.Messages[0].Role))

	w = s.do(t, http.MethodDelete, "/api/voice/history", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/voice/history", token, nil)
	decode(t, w, &history)
	assert.Equal(t, 0, history.Total)
	assert.Equal(t, dto.DefaultLimit, history.Limit)
}

func TestVoice_DisabledByPreferences(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")

	w := s.do(t, http.MethodPut, "/api/auth/preferences", token, gin.H{"voiceCommands": false})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/voice/process", token, gin.H{"text": "show my goals"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAI_GenerateAndSuggest(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada@example.com")

	w := s.do(t, http.MethodPost, "/api/ai/suggestions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var suggestions dto.SuggestionsResponse
	decode(t, w, &suggestions)
	require.NotEmpty(t, suggestions.Suggestions)
	assert.Equal(t, "Set Your First Goal", suggestions.Suggestions[0].Title)

	w = s.do(t, http.MethodPost, "/api/goals/long-term", token, gin.H{
		"title":      "Learn Spanish",
		"targetDate": time.Now().Add(180 * 24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = s.do(t, http.MethodPost, "/api/ai/generate/short-term-goals", token, gin.H{"longTermGoalId": created.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var goals struct {
		Goals []struct {
			Timeframe string `json:"timeframe"`
		} `json:"goals"`
	}
	decode(t, w, &goals)
	assert.Len(t, goals.Goals, 3)

	w = s.do(t, http.MethodPost, "/api/ai/generate/tasks", token, gin.H{"goalId": created.ID, "goalType": "long-term"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tasks struct {
		Tasks []struct {
			RelatedGoalID string `json:"relatedGoalId"`
		} `json:"tasks"`
	}
	decode(t, w, &tasks)
	require.Len(t, tasks.Tasks, 3)
	assert.Equal(t, created.ID, tasks.Tasks[0].RelatedGoalID)

	w = s.do(t, http.MethodPost, "/api/ai/generate/tasks", token, gin.H{"goalId": created.ID, "goalType": "someday"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/ai/generate/short-term-goals", token, gin.H{"longTermGoalId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
