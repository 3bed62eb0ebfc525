package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestAppErrorMatchesByCode(t *testing.T) {
	dup := Conflict(CodeDuplicateRoom, "房号已存在")
	wrapped := fmt.Errorf("create: %w", dup.WithMessage("另一个说法").Wrap(errors.New("boom")))

	assert.ErrorIs(t, wrapped, dup)
	assert.NotErrorIs(t, wrapped, NotFound("x"))
	assert.True(t, IsKind(wrapped, KindConflict))
	assert.Equal(t, "房号已存在", dup.Message)
	assert.Nil(t, dup.Err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" ", "入住日期")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2024-02-29", "入住日期")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2024/02/29", "入住日期")
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, CodeInvalidDateFormat, appErr.Code)
	assert.Equal(t, "入住日期格式不正确", appErr.Message)

	assert.Equal(t, "", FormatDate(nil))
}

func TestDaysBetweenAndMonthRange(t *testing.T) {
	from := DateOf(time.Date(2024, 12, 30, 23, 0, 0, 0, time.UTC))
	to := datatypes.Date(time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 30, DaysBetween(from, to))
	assert.Equal(t, -30, DaysBetween(to, from))

	start, end := MonthRange(2024, time.December, nil)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "10.13", Money(decimal.RequireFromString("10.125")).String())
	assert.NoError(t, RequireNonNegative(map[string]decimal.Decimal{"rent": decimal.Zero}))

	err := RequireNonNegative(map[string]decimal.Decimal{"rent": decimal.NewFromInt(-1), "deposit": decimal.Zero})
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, map[string]string{"rent": "min=0"}, appErr.Fields)
}

func TestMoneyEncodesAsJSONNumber(t *testing.T) {
	b, err := json.Marshal(struct {
		Total decimal.Decimal `json:"total"`
	}{decimal.RequireFromString("1047.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":1047.5}`, string(b))

	var back struct {
		Total decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"total":"12.5"}`), &back))
	assert.Equal(t, "12.5", back.Total.String())
}

func TestUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: rooms.room_number")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(nil))

	dup := Conflict(CodeDuplicatePhone, "电话号码已存在")
	assert.ErrorIs(t, MapWriteError(&pgconn.PgError{Code: "23505"}, dup, "添加失败"), dup)
	assert.True(t, IsKind(MapWriteError(errors.New("disk full"), dup, "添加失败"), KindStorage))
	assert.NoError(t, MapWriteError(nil, dup, "x"))
}

type sample struct {
	Name string `json:"name" validate:"required"`
	Age  int    `json:"age" validate:"min=0"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Name: "a"}, "参数错误"))

	err := ValidateStruct(sample{Age: -1}, "参数错误")
	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "参数错误", appErr.Message)
	assert.Equal(t, map[string]string{"name": "required", "age": "min"}, appErr.Fields)
}

func TestPagination(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(ResolvePaging(c, 10, 100))
	})

	cases := map[string]Paging{
		"/":                       {Page: 1, PerPage: 10, Offset: 0, Limit: 10},
		"/?page=3&per_page=5":     {Page: 3, PerPage: 5, Offset: 10, Limit: 5},
		"/?page=-1&limit=500":     {Page: 1, PerPage: 100, Offset: 0, Limit: 100},
		"/?page=abc&per_page=abc": {Page: 1, PerPage: 10, Offset: 0, Limit: 10},
	}
	for url, want := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
		require.NoError(t, err)
		var got Paging
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		resp.Body.Close()
		assert.Equal(t, want, got, url)
	}

	p := BuildPaginationFromPage(21, 2, 10, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 1, BuildPaginationFromPage(0, 1, 10, 0).TotalPages)
}

func TestJsonFailKeepsStatus200(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonFail(c, "查询失败", errors.New("db gone"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Success)
	assert.Equal(t, "查询失败", out.Message)
	assert.Equal(t, CodeStorage, out.ErrorCode)
}
