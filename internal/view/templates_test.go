package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/orderform/internal/shared"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderStatusWritesFlash(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = engine.RenderStatus(rr, http.StatusUnprocessableEntity, "partials/flash.html", TemplateData{
		Flash: &shared.FlashMessage{Kind: shared.FlashError, Message: "企業名を入力してください。"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "企業名を入力してください。")
	assert.Contains(t, rr.Body.String(), "flash-error")
}

func TestSuccessFlashDoesNotAlert(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = engine.RenderStatus(rr, http.StatusOK, "partials/flash.html", TemplateData{
		Flash: &shared.FlashMessage{Kind: shared.FlashSuccess, Message: "入力内容をリセットしました。"},
	})
	require.NoError(t, err)

	body := rr.Body.String()
	assert.Contains(t, body, `class="flash flash-success" role="status"`)
	assert.NotContains(t, body, "data-alert")
}

func TestRenderUnknownTemplateLeavesResponseUntouched(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = engine.RenderStatus(rr, http.StatusOK, "pages/missing.html", TemplateData{})
	require.Error(t, err)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Type"))
}

func TestNilEngineRender(t *testing.T) {
	var engine *Engine
	err := engine.RenderStatus(httptest.NewRecorder(), http.StatusOK, "pages/orderform.html", TemplateData{})
	assert.Error(t, err)
}
