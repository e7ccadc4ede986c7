package util

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func TestHandleSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleSuccess(c, 201, "created", map[string]string{"id": "abc"})

	if rec.Code != 201 {
		t.Fatalf("want status 201, got %d", rec.Code)
	}

	var body SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Status != 201 || body.Message != "created" {
		t.Errorf("unexpected envelope: %+v", body)
	}
	if body.Data == nil {
		t.Error("expected data in envelope")
	}
	if body.Meta != nil {
		t.Errorf("expected no meta, got %v", body.Meta)
	}
}

func TestHandleSuccessMetaCarriesMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleSuccessMeta(c, 207, "partial", nil, map[string]int{"created": 2})

	var body SuccessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Meta == nil {
		t.Error("expected meta in envelope")
	}
}

func TestHandleErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleError(c, 404, errors.New("cart not found"))

	if rec.Code != 404 {
		t.Fatalf("want status 404, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Status != 404 || body.Error != "cart not found" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}
