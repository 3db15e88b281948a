package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := Parse(ctxWithQuery(t, ""))
		if p.Page != DefaultPage || p.Limit != DefaultLimit || p.Offset != 0 {
			t.Errorf("got %+v", p)
		}
	})

	t.Run("computes offset", func(t *testing.T) {
		p := Parse(ctxWithQuery(t, "page=3&limit=25"))
		if p.Page != 3 || p.Limit != 25 || p.Offset != 50 {
			t.Errorf("got %+v", p)
		}
	})

	t.Run("clamps out of range values", func(t *testing.T) {
		p := Parse(ctxWithQuery(t, "page=-2&limit=0"))
		if p.Page != DefaultPage || p.Limit != DefaultLimit {
			t.Errorf("got %+v", p)
		}

		p = Parse(ctxWithQuery(t, "page=1&limit=9999"))
		if p.Limit != MaxLimit {
			t.Errorf("Limit = %d, want %d", p.Limit, MaxLimit)
		}
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		p := Parse(ctxWithQuery(t, "page=abc&limit=xyz"))
		if p.Page != DefaultPage || p.Limit != DefaultLimit {
			t.Errorf("got %+v", p)
		}
	})
}
