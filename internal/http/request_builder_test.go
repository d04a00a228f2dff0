package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/dto"
)

func newJSONContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBuildRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		c, _ := newJSONContext(`{"location_id":"loc_01","use_parcels":true,"parcels":[1,2]}`)

		req, err := BuildRequest[dto.CreateFulfillmentsRequest](c)

		require.NoError(t, err)
		assert.Equal(t, "loc_01", req.LocationID)
		assert.True(t, req.UseParcels)
		assert.Equal(t, []int{1, 2}, req.Parcels)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		c, _ := newJSONContext(`{bad json`)

		req, err := BuildRequest[dto.CreateFulfillmentsRequest](c)

		assert.Error(t, err)
		assert.Nil(t, req)
	})
}

func TestBuildRequestAndValidate(t *testing.T) {
	t.Run("validation failure", func(t *testing.T) {
		c, _ := newJSONContext(`{"location_id":"loc_01","quantities":{"item_01":-1}}`)

		req, err := BuildRequestAndValidate[dto.CreateFulfillmentsRequest](c)

		assert.ErrorIs(t, err, dto.ErrNegativeQuantity)
		assert.Nil(t, req)
	})

	t.Run("validation success", func(t *testing.T) {
		c, _ := newJSONContext(`{"location_id":"loc_01","use_parcels":true}`)

		req, err := BuildRequestAndValidate[dto.CreateFulfillmentsRequest](c)

		require.NoError(t, err)
		assert.Equal(t, "loc_01", req.LocationID)
	})
}

func TestUnmarshalFromBytes(t *testing.T) {
	req, err := UnmarshalFromBytes[dto.CreateFulfillmentsRequest]([]byte(`{"location_id":"loc_01"}`))

	require.NoError(t, err)
	assert.Equal(t, "loc_01", req.LocationID)
}

func TestUnmarshalFromReader(t *testing.T) {
	req, err := UnmarshalFromReader[dto.CreateFulfillmentsRequest](strings.NewReader(`{"location_id":"loc_01"}`))

	require.NoError(t, err)
	assert.Equal(t, "loc_01", req.LocationID)
}

func TestResponseBuilder_Success(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewResponseBuilder(c).SuccessOK(map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.Timestamp)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "world", data["hello"])
}

func TestResponseBuilder_Error(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewResponseBuilder(c).Error(http.StatusNotFound, "Order not found", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, "Order not found", resp.Message)
}

func TestResponseBuilder_ErrorWithDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewResponseBuilder(c).ErrorWithDetail(http.StatusBadRequest, "Invalid request",
		"location_id", "a stock location is required", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.Equal(t, "a stock location is required", resp.Details["location_id"])
}

func TestMarshalToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := MarshalToWriter(&buf, map[string]int{"parcels": 2})

	require.NoError(t, err)
	assert.JSONEq(t, `{"parcels":2}`, buf.String())
}
