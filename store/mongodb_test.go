package store_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/zyreny/zye/store"
)

func TestStatusCheck(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		e := echo.New()
		req := httptest.NewRequest(echo.GET, "/v1/status", nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/status")

		handler := store.StatusHandler{
			DB: mt.Client.Database("zye"),
		}

		err := handler.StatusCheckHandler(c)
		assert.NoError(t, err)

		body := make(map[string]interface{})
		err = json.NewDecoder(rec.Body).Decode(&body)
		require.NoError(t, err)
	})
	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    1,
			Message: "test",
			Name:    "123",
			Labels:  []string{},
		}))
		e := echo.New()
		req := httptest.NewRequest(echo.GET, "/v1/status", nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/status")

		handler := store.StatusHandler{
			DB: mt.Client.Database("zye"),
		}

		err := handler.StatusCheckHandler(c)
		assert.NoError(t, err)

		body := make(map[string]interface{})
		err = json.NewDecoder(rec.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(mt, "(123) test", body["error"])
	})
}

func TestEnsureLinkIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.EnsureLinkIndexes(context.Background(), mt.Client.Database("zye"))
		assert.NoError(mt, err)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    1,
			Message: "test",
			Name:    "123",
			Labels:  []string{},
		}))

		err := store.EnsureLinkIndexes(context.Background(), mt.Client.Database("zye"))
		assert.Error(mt, err)
	})
}
