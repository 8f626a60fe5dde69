package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/mybooks/pkg/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/authors", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestError(t *testing.T) {
	t.Run("冲突错误透出底层原因", func(t *testing.T) {
		c, w := newTestContext(t)

		cause := errors.New("Duplicate entry 'Asimov' for key 'authors.idx_name'")
		Error(c, apperrors.NewConflict("作者已存在", cause))

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, apperrors.ErrCodeConflict, body.Code)
		assert.Equal(t, "作者已存在: Duplicate entry 'Asimov' for key 'authors.idx_name'", body.Message)
	})

	t.Run("内部错误不透出底层细节", func(t *testing.T) {
		c, w := newTestContext(t)

		Error(c, apperrors.Wrap(errors.New("dial tcp 10.0.0.5:3306: connect refused"), "数据库错误"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "数据库错误", body.Message)
		assert.NotContains(t, body.Message, "10.0.0.5")
	})

	t.Run("非AppError包装为内部错误", func(t *testing.T) {
		c, w := newTestContext(t)

		Error(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, apperrors.ErrCodeInternal, body.Code)
		assert.NotContains(t, body.Message, "boom")
	})

	t.Run("预定义错误按错误码映射HTTP状态", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"未认证", apperrors.ErrInvalidToken, http.StatusUnauthorized},
			{"无权限", apperrors.ErrForbidden, http.StatusForbidden},
			{"不存在", apperrors.ErrBookNotFound, http.StatusNotFound},
			{"参数错误", apperrors.ErrInvalidParams, http.StatusBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, w := newTestContext(t)
				Error(c, tc.err)
				assert.Equal(t, tc.status, w.Code)
			})
		}
	})
}
