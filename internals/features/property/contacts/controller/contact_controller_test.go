package controller_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/databases/dbtest"
	contactRoute "rentbook_backend/internals/features/property/contacts/route"
	"rentbook_backend/internals/helpers/dbtime"
	"rentbook_backend/internals/middlewares"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ErrorCode  string          `json:"error_code"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Total   int64 `json:"total"`
		PerPage int   `json:"per_page"`
	} `json:"pagination"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := dbtest.New(t, dbtime.FixedClock{At: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)})

	app := fiber.New()
	for _, f := range constants.AllFloors {
		g := app.Group("/api/"+f.String(), middlewares.WithFloor(f))
		contactRoute.ContactRoutes(g, db, 10, 12)
	}
	app.All("/api/:floor/*", middlewares.UnknownFloor("floor"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) envelope {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	return out
}

func TestContactHandlers(t *testing.T) {
	app := newApp(t)

	res := do(t, app, http.MethodPost, "/api/old/contacts", `{"name":"张三","phone":"13800000001","room_id":"501"}`)
	require.True(t, res.Success, res.Message)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &created))

	res = do(t, app, http.MethodPost, "/api/old/contacts", `{"name":"李四","phone":"13800000001"}`)
	assert.False(t, res.Success)
	assert.Equal(t, "电话号码已存在", res.Message)
	assert.Equal(t, "DUPLICATE_PHONE", res.ErrorCode)

	for i := 0; i < 12; i++ {
		res = do(t, app, http.MethodPost, "/api/old/contacts", fmt.Sprintf(`{"name":"租客%d","phone":"1390000%04d"}`, i, i))
		require.True(t, res.Success, res.Message)
	}

	res = do(t, app, http.MethodGet, "/api/old/contacts", "")
	require.True(t, res.Success)
	assert.EqualValues(t, 13, res.Pagination.Total)
	assert.Equal(t, 10, res.Pagination.PerPage)

	res = do(t, app, http.MethodGet, "/api/old/contacts?view=card", "")
	assert.Equal(t, 12, res.Pagination.PerPage)

	res = do(t, app, http.MethodGet, fmt.Sprintf("/api/new/contacts/%d", created.ID), "")
	assert.False(t, res.Success)
	assert.Equal(t, "NOT_FOUND", res.ErrorCode)

	res = do(t, app, http.MethodDelete, fmt.Sprintf("/api/old/contacts/%d", created.ID), "")
	assert.True(t, res.Success, res.Message)
}

func TestUnknownFloor(t *testing.T) {
	app := newApp(t)

	res := do(t, app, http.MethodGet, "/api/basement/contacts", "")
	assert.False(t, res.Success)
	assert.Equal(t, "楼层参数无效", res.Message)

	req := httptest.NewRequest(http.MethodGet, "/api/old/nowhere", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
