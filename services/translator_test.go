package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodzy/foodzy-app/utils"
)

func fakeLibreTranslate(t *testing.T, translated, detected string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/translate":
			json.NewEncoder(w).Encode(map[string]string{"translatedText": translated})
		case "/detect":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"language": detected, "confidence": 92.0},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestTranslateHappyPath(t *testing.T) {
	utils.InitLogger()
	server := fakeLibreTranslate(t, "Hola", "es")
	defer server.Close()

	tr := NewTranslator().WithBaseURL(server.URL)
	assert.Equal(t, "Hola", tr.Translate("Hello", "en", "es"))
}

func TestTranslateSameLanguageSkipsNetwork(t *testing.T) {
	utils.InitLogger()
	tr := NewTranslator().WithBaseURL("http://127.0.0.1:1")
	assert.Equal(t, "Hello", tr.Translate("Hello", "en", "en"))
	assert.Equal(t, "", tr.Translate("", "en", "es"))
}

func TestTranslateFallsBackToInputOnFailure(t *testing.T) {
	utils.InitLogger()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	tr := NewTranslator().WithBaseURL(server.URL)
	assert.Equal(t, "Hello", tr.Translate("Hello", "en", "es"))

	// Unreachable endpoint degrades the same way.
	tr = NewTranslator().WithBaseURL("http://127.0.0.1:1")
	assert.Equal(t, "Hello", tr.Translate("Hello", "en", "es"))
}

func TestDetectSupportedLanguage(t *testing.T) {
	utils.InitLogger()
	server := fakeLibreTranslate(t, "", "hi")
	defer server.Close()

	tr := NewTranslator().WithBaseURL(server.URL)
	assert.Equal(t, "hi", tr.Detect("नमस्ते"))
}

func TestDetectUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	utils.InitLogger()
	server := fakeLibreTranslate(t, "", "de")
	defer server.Close()

	tr := NewTranslator().WithBaseURL(server.URL)
	assert.Equal(t, "en", tr.Detect("Guten Tag"))

	tr = NewTranslator().WithBaseURL("http://127.0.0.1:1")
	assert.Equal(t, "en", tr.Detect("anything"))
}
