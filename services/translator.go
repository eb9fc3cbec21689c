package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/foodzy/foodzy-app/utils"
)

// SupportedLanguages maps language codes to their native display names.
var SupportedLanguages = map[string]string{
	"en": "English",
	"ar": "العربية",
	"hi": "हिन्दी",
	"es": "Español",
	"fr": "Français",
}

// Translator wraps a LibreTranslate-compatible endpoint. Every failure
// degrades to a deterministic local fallback: Translate returns the input
// text, Detect returns "en".
type Translator struct {
	baseURL string
	client  *http.Client
}

func NewTranslator() *Translator {
	baseURL := os.Getenv("LIBRETRANSLATE_URL")
	if baseURL == "" {
		baseURL = "https://libretranslate.com"
	}
	return &Translator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Translator) Translate(text, source, target string) string {
	if source == target || text == "" {
		return text
	}

	payload, err := json.Marshal(map[string]string{
		"q":      text,
		"source": source,
		"target": target,
		"format": "text",
	})
	if err != nil {
		return text
	}

	resp, err := t.client.Post(t.baseURL+"/translate", "application/json", bytes.NewReader(payload))
	if err != nil {
		utils.ErrorLogger.Printf("Translation request failed: %v", err)
		return text
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		utils.ErrorLogger.Printf("Translation API error %d: %s", resp.StatusCode, string(body))
		return text
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &result); err != nil || result.TranslatedText == "" {
		return text
	}
	return result.TranslatedText
}

// Detect returns the detected language code when it is one of the supported
// languages, otherwise "en".
func (t *Translator) Detect(text string) string {
	payload, err := json.Marshal(map[string]string{"q": text})
	if err != nil {
		return "en"
	}

	resp, err := t.client.Post(t.baseURL+"/detect", "application/json", bytes.NewReader(payload))
	if err != nil {
		utils.ErrorLogger.Printf("Language detection failed: %v", err)
		return "en"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "en"
	}

	var result []struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || len(result) == 0 {
		return "en"
	}

	if _, ok := SupportedLanguages[result[0].Language]; ok {
		return result[0].Language
	}
	return "en"
}

// WithBaseURL overrides the endpoint, used by tests.
func (t *Translator) WithBaseURL(url string) *Translator {
	t.baseURL = url
	return t
}
